package models

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/vishwasvr/guhae-rental-property-app/utils"
)

// Address is the structured address attached to properties and profiles.
// The shape is stable on read: every sub-field is present even when empty.
type Address struct {
	Street  string `json:"street" dynamodbav:"street"`
	City    string `json:"city" dynamodbav:"city"`
	County  string `json:"county" dynamodbav:"county"`
	State   string `json:"state" dynamodbav:"state"`
	Zip     string `json:"zip" dynamodbav:"zip"`
	Country string `json:"country" dynamodbav:"country"`
}

// Property defines a property record. JSON tags are the wire schema,
// dynamodbav tags the storage schema; the key fields never appear in API
// responses.
type Property struct {
	PK     string `json:"-" dynamodbav:"pk"`
	SK     string `json:"-" dynamodbav:"sk"`
	GSI1PK string `json:"-" dynamodbav:"gsi1pk,omitempty"`

	ID           string   `json:"id" dynamodbav:"id"`
	OwnerID      string   `json:"ownerId" dynamodbav:"owner_id"`
	Title        string   `json:"title" dynamodbav:"title"`
	Description  string   `json:"description" dynamodbav:"description"`
	PropertyType string   `json:"propertyType" dynamodbav:"property_type"`
	Price        float64  `json:"price" dynamodbav:"price"`
	Bedrooms     int      `json:"bedrooms" dynamodbav:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms" dynamodbav:"bathrooms"`
	SquareFeet   float64  `json:"squareFeet" dynamodbav:"square_feet"`
	GarageType   string   `json:"garageType" dynamodbav:"garage_type"`
	GarageSpaces int      `json:"garageSpaces" dynamodbav:"garage_spaces"`
	Address      Address  `json:"address" dynamodbav:"address"`
	Status       string   `json:"status" dynamodbav:"status"`
	Images       []string `json:"images" dynamodbav:"images,omitempty"`
	CreatedAt    string   `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt    string   `json:"updatedAt" dynamodbav:"updated_at"`
}

// PropertyCreateRequest is the wire payload accepted by the create handler.
type PropertyCreateRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	PropertyType string  `json:"propertyType"`
	Price        float64 `json:"price"`
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    float64 `json:"bathrooms"`
	SquareFeet   float64 `json:"squareFeet"`
	GarageType   string  `json:"garageType"`
	GarageSpaces int     `json:"garageSpaces"`
	Address      Address `json:"address"`
	Status       string  `json:"status"`
}

// propertyFieldMap translates wire field names to storage attribute names for
// update requests. Unknown wire fields are dropped; key fields, the owner and
// the creation timestamp are not updatable.
var propertyFieldMap = map[string]string{
	"title":        "title",
	"description":  "description",
	"propertyType": "property_type",
	"price":        "price",
	"bedrooms":     "bedrooms",
	"bathrooms":    "bathrooms",
	"squareFeet":   "square_feet",
	"garageType":   "garage_type",
	"garageSpaces": "garage_spaces",
	"address":      "address",
	"status":       "status",
	"images":       "images",
}

// PropertyUpdateAttributes converts a wire update payload into storage
// attribute changes.
func PropertyUpdateAttributes(wire map[string]interface{}) map[string]interface{} {
	return translateFields(wire, propertyFieldMap)
}

// FormatProperty converts a stored item into its wire representation. A
// malformed item degrades to a minimal record (id plus best-effort title)
// instead of failing; formatting never produces an error.
func FormatProperty(item map[string]types.AttributeValue) Property {
	var p Property
	if err := attributevalue.UnmarshalMap(item, &p); err != nil {
		p = Property{
			ID:    utils.ExtractString(item, "id"),
			Title: utils.ExtractString(item, "title"),
		}
	}
	p.PK, p.SK, p.GSI1PK = "", "", ""
	if p.Images == nil {
		p.Images = []string{}
	}
	return p
}

func translateFields(wire map[string]interface{}, fieldMap map[string]string) map[string]interface{} {
	changes := make(map[string]interface{}, len(wire))
	for name, value := range wire {
		if attr, ok := fieldMap[name]; ok {
			changes[attr] = value
		}
	}
	return changes
}

package models

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/vishwasvr/guhae-rental-property-app/utils"
)

// Finance is the single finance sub-record of a property, stored under the
// property's partition key with the FINANCE sort key.
type Finance struct {
	PK string `json:"-" dynamodbav:"pk"`
	SK string `json:"-" dynamodbav:"sk"`

	PropertyID      string  `json:"propertyId" dynamodbav:"property_id"`
	OwnershipType   string  `json:"ownershipType" dynamodbav:"ownership_type"`
	OwnershipStatus string  `json:"ownershipStatus" dynamodbav:"ownership_status"`
	PurchasePrice   float64 `json:"purchasePrice" dynamodbav:"purchase_price"`
	PurchaseDate    string  `json:"purchaseDate" dynamodbav:"purchase_date"`
	DownPayment     float64 `json:"downPayment" dynamodbav:"down_payment"`
	ClosingCosts    float64 `json:"closingCosts" dynamodbav:"closing_costs"`
	Buyer           string  `json:"buyer" dynamodbav:"buyer"`
	Seller          string  `json:"seller" dynamodbav:"seller"`
	CreatedAt       string  `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt       string  `json:"updatedAt" dynamodbav:"updated_at"`
}

var financeFieldMap = map[string]string{
	"ownershipType":   "ownership_type",
	"ownershipStatus": "ownership_status",
	"purchasePrice":   "purchase_price",
	"purchaseDate":    "purchase_date",
	"downPayment":     "down_payment",
	"closingCosts":    "closing_costs",
	"buyer":           "buyer",
	"seller":          "seller",
}

// FinanceUpdateAttributes converts a wire finance payload into storage
// attribute changes.
func FinanceUpdateAttributes(wire map[string]interface{}) map[string]interface{} {
	return translateFields(wire, financeFieldMap)
}

// FormatFinance converts a stored finance item into its wire representation,
// degrading to the property id alone on a malformed item.
func FormatFinance(item map[string]types.AttributeValue) Finance {
	var f Finance
	if err := attributevalue.UnmarshalMap(item, &f); err != nil {
		f = Finance{PropertyID: utils.ExtractString(item, "property_id")}
	}
	f.PK, f.SK = "", ""
	return f
}

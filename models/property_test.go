package models

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyStorageRoundTrip(t *testing.T) {
	original := Property{
		PK:           PropertyPK("p1"),
		SK:           SortKeyMetadata,
		GSI1PK:       OwnerGSI1PK("user-1"),
		ID:           "p1",
		OwnerID:      "user-1",
		Title:        "Unit A",
		Description:  "Two-bed walk-up",
		PropertyType: "residential",
		Price:        1250.50,
		Bedrooms:     2,
		Bathrooms:    1.5,
		SquareFeet:   840,
		GarageType:   "detached",
		GarageSpaces: 1,
		Address: Address{
			Street:  "12 Elm St",
			City:    "Springfield",
			County:  "Greene",
			State:   "MO",
			Zip:     "65801",
			Country: "US",
		},
		Status:    PropertyStatusActive,
		Images:    []string{"properties/p1/a.jpg"},
		CreatedAt: "2026-01-02T03:04:05Z",
		UpdatedAt: "2026-01-02T03:04:05Z",
	}

	item, err := attributevalue.MarshalMap(original)
	require.NoError(t, err)

	// Monetary values are stored as exact decimal number strings.
	price, ok := item["price"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "1250.5", price.Value)

	var restored Property
	require.NoError(t, attributevalue.UnmarshalMap(item, &restored))
	assert.Equal(t, original, restored)
}

func TestFormatPropertyStripsKeysAndDefaultsShape(t *testing.T) {
	item, err := attributevalue.MarshalMap(Property{
		PK:      PropertyPK("p1"),
		SK:      SortKeyMetadata,
		GSI1PK:  OwnerGSI1PK("user-1"),
		ID:      "p1",
		OwnerID: "user-1",
		Title:   "Unit A",
	})
	require.NoError(t, err)

	formatted := FormatProperty(item)
	assert.NotNil(t, formatted.Images)
	assert.Empty(t, formatted.Images)

	encoded, err := json.Marshal(formatted)
	require.NoError(t, err)

	var wire map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &wire))
	assert.NotContains(t, wire, "pk")
	assert.NotContains(t, wire, "sk")
	assert.NotContains(t, wire, "gsi1pk")
	assert.Contains(t, wire, "images")

	// The address object always has its full shape.
	address, ok := wire["address"].(map[string]interface{})
	require.True(t, ok)
	for _, field := range []string{"street", "city", "county", "state", "zip", "country"} {
		assert.Contains(t, address, field)
	}
}

func TestFormatPropertyDegradesOnMalformedItem(t *testing.T) {
	item := map[string]types.AttributeValue{
		"id":    &types.AttributeValueMemberS{Value: "p1"},
		"title": &types.AttributeValueMemberS{Value: "Unit A"},
		// A string where a number belongs makes unmarshaling fail.
		"price": &types.AttributeValueMemberS{Value: "not-a-number"},
	}

	formatted := FormatProperty(item)
	assert.Equal(t, "p1", formatted.ID)
	assert.Equal(t, "Unit A", formatted.Title)
	assert.NotNil(t, formatted.Images)
}

func TestPropertyUpdateAttributesDropsUnknownAndProtectedFields(t *testing.T) {
	changes := PropertyUpdateAttributes(map[string]interface{}{
		"title":      "Unit B",
		"squareFeet": 900.0,
		"ownerId":    "intruder",
		"id":         "forged",
		"createdAt":  "1999-01-01T00:00:00Z",
		"unknown":    "dropped",
	})

	assert.Equal(t, map[string]interface{}{
		"title":       "Unit B",
		"square_feet": 900.0,
	}, changes)
}

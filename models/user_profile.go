package models

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/vishwasvr/guhae-rental-property-app/utils"
)

// UserProfile defines a user account record, stored as USER#{id}/PROFILE
// with an EMAIL# entry on GSI1 for login lookup. The password hash never
// leaves storage.
type UserProfile struct {
	PK     string `json:"-" dynamodbav:"pk"`
	SK     string `json:"-" dynamodbav:"sk"`
	GSI1PK string `json:"-" dynamodbav:"gsi1pk,omitempty"`

	ID           string  `json:"userId" dynamodbav:"user_id"`
	Email        string  `json:"email" dynamodbav:"email"`
	PasswordHash string  `json:"-" dynamodbav:"password_hash"`
	FirstName    string  `json:"firstName" dynamodbav:"first_name"`
	LastName     string  `json:"lastName" dynamodbav:"last_name"`
	Phone        string  `json:"phone" dynamodbav:"phone"`
	DateOfBirth  string  `json:"dateOfBirth" dynamodbav:"date_of_birth"`
	Address      Address `json:"address" dynamodbav:"address"`
	Company      string  `json:"company" dynamodbav:"company"`
	Status       string  `json:"status" dynamodbav:"status"`
	CreatedAt    string  `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt    string  `json:"updatedAt" dynamodbav:"updated_at"`
}

var profileFieldMap = map[string]string{
	"firstName":   "first_name",
	"lastName":    "last_name",
	"phone":       "phone",
	"dateOfBirth": "date_of_birth",
	"address":     "address",
	"company":     "company",
}

// ProfileUpdateAttributes converts a wire profile payload into storage
// attribute changes. Email, status and credentials are not updatable here.
func ProfileUpdateAttributes(wire map[string]interface{}) map[string]interface{} {
	return translateFields(wire, profileFieldMap)
}

// FormatUserProfile converts a stored profile item into its wire
// representation.
func FormatUserProfile(item map[string]types.AttributeValue) UserProfile {
	var u UserProfile
	if err := attributevalue.UnmarshalMap(item, &u); err != nil {
		u = UserProfile{
			ID:    utils.ExtractString(item, "user_id"),
			Email: utils.ExtractString(item, "email"),
		}
	}
	u.PK, u.SK, u.GSI1PK = "", "", ""
	u.PasswordHash = ""
	return u
}

package utils

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExtractString safely extracts a string attribute from a DynamoDB item
func ExtractString(item map[string]types.AttributeValue, field string) string {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}

// ExtractStringList extracts a list of strings from a DynamoDB attribute,
// skipping non-string members
func ExtractStringList(item map[string]types.AttributeValue, field string) []string {
	result := []string{}
	if attr, ok := item[field]; ok {
		if list, ok := attr.(*types.AttributeValueMemberL); ok {
			for _, member := range list.Value {
				if v, ok := member.(*types.AttributeValueMemberS); ok {
					result = append(result, v.Value)
				}
			}
		}
	}
	return result
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishwasvr/guhae-rental-property-app/services/dynamock"
)

func newTestDynamo(client *dynamock.MemClient) *DynamoService {
	return &DynamoService{Client: client, TableName: "guhae-test"}
}

func seedItem(client *dynamock.MemClient, pk, sk string, extra map[string]string) {
	item := map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: pk},
		"sk": &types.AttributeValueMemberS{Value: sk},
	}
	for k, v := range extra {
		item[k] = &types.AttributeValueMemberS{Value: v}
	}
	client.Seed(item)
}

func TestGetItemNotFound(t *testing.T) {
	ds := newTestDynamo(dynamock.New())

	_, err := ds.GetItem(context.Background(), "PROPERTY#missing", "METADATA")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestGetItemUnavailable(t *testing.T) {
	client := dynamock.New()
	client.FailGet = errors.New("connection refused")
	ds := newTestDynamo(client)

	_, err := ds.GetItem(context.Background(), "PROPERTY#p1", "METADATA")
	require.Error(t, err)
	assert.Equal(t, KindUnavailable, KindOf(err))
}

func TestUpdateItemAliasesReservedWords(t *testing.T) {
	client := dynamock.New()
	seedItem(client, "PROPERTY#p1", "METADATA", map[string]string{"status": "active"})
	ds := newTestDynamo(client)

	updated, err := ds.UpdateItem(context.Background(), "PROPERTY#p1", "METADATA", map[string]interface{}{
		"status": "vacant",
		"title":  "Unit B",
	})
	require.NoError(t, err)

	// Attribute names must be written through placeholders so reserved
	// words like "status" never appear raw in the expression.
	input := client.LastUpdateInput
	require.NotNil(t, input)
	assert.NotContains(t, *input.UpdateExpression, "status")
	aliased := false
	for _, name := range input.ExpressionAttributeNames {
		if name == "status" {
			aliased = true
		}
	}
	assert.True(t, aliased, "expected an alias for the status attribute")

	status, ok := updated["status"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "vacant", status.Value)
}

func TestUpdateItemRejectsEmptyChanges(t *testing.T) {
	ds := newTestDynamo(dynamock.New())

	_, err := ds.UpdateItem(context.Background(), "PROPERTY#p1", "METADATA", map[string]interface{}{})
	require.Error(t, err)
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestQueryByPartitionWithPrefix(t *testing.T) {
	client := dynamock.New()
	seedItem(client, "PROPERTY#p1", "METADATA", nil)
	seedItem(client, "PROPERTY#p1", "FINANCE", nil)
	seedItem(client, "PROPERTY#p1", "LOAN#l1", nil)
	seedItem(client, "PROPERTY#p1", "LOAN#l2", nil)
	seedItem(client, "PROPERTY#p2", "LOAN#l3", nil)
	ds := newTestDynamo(client)

	items, err := ds.QueryByPartition(context.Background(), "PROPERTY#p1", "LOAN#", 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestPing(t *testing.T) {
	client := dynamock.New()
	ds := newTestDynamo(client)
	assert.NoError(t, ds.Ping(context.Background()))

	client.FailScan = errors.New("timeout")
	err := ds.Ping(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindUnavailable, KindOf(err))
}

package services

import (
	"context"
	"log"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the service.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoService wraps the composite-key (pk, sk) table. All records live in
// one table; callers address them through this adapter and never build
// storage-query syntax themselves.
type DynamoService struct {
	Client    DynamoDBAPI
	TableName string
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient(region string) *dynamodb.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func itemKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: pk},
		"sk": &types.AttributeValueMemberS{Value: sk},
	}
}

// GetItem retrieves a single item by its composite key.
func (ds *DynamoService) GetItem(ctx context.Context, pk, sk string) (map[string]types.AttributeValue, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &ds.TableName,
		Key:       itemKey(pk, sk),
	})
	if err != nil {
		return nil, NewUnavailable("store unavailable", err)
	}
	if output.Item == nil {
		return nil, NewNotFound("item not found")
	}
	return output.Item, nil
}

// PutItem marshals and writes a full item.
func (ds *DynamoService) PutItem(ctx context.Context, item interface{}) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return NewUnavailable("failed to marshal item", err)
	}
	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &ds.TableName,
		Item:      marshaled,
	})
	if err != nil {
		return NewUnavailable("store unavailable", err)
	}
	return nil
}

// UpdateItem applies a structured set of attribute changes and returns the
// post-update item. The expression builder generates name placeholders for
// every attribute, so names colliding with engine reserved words ("status",
// "state", "type") are always written through an alias.
func (ds *DynamoService) UpdateItem(ctx context.Context, pk, sk string, changes map[string]interface{}) (map[string]types.AttributeValue, error) {
	if len(changes) == 0 {
		return nil, NewInvalidInput("no attributes to update")
	}

	names := make([]string, 0, len(changes))
	for name := range changes {
		names = append(names, name)
	}
	sort.Strings(names)

	var update expression.UpdateBuilder
	for _, name := range names {
		update = update.Set(expression.Name(name), expression.Value(changes[name]))
	}

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return nil, NewUnavailable("failed to build update expression", err)
	}

	output, err := ds.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 &ds.TableName,
		Key:                       itemKey(pk, sk),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, NewUnavailable("store unavailable", err)
	}
	return output.Attributes, nil
}

// DeleteItem removes an item by its composite key. Deleting a missing item is
// not an error; callers check existence first when they need to report 404.
func (ds *DynamoService) DeleteItem(ctx context.Context, pk, sk string) error {
	_, err := ds.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &ds.TableName,
		Key:       itemKey(pk, sk),
	})
	if err != nil {
		return NewUnavailable("store unavailable", err)
	}
	return nil
}

// QueryByPartition returns the items of one partition, optionally narrowed to
// a sort-key prefix.
func (ds *DynamoService) QueryByPartition(ctx context.Context, pk, skPrefix string, limit int32) ([]map[string]types.AttributeValue, error) {
	keyCondition := "pk = :pk"
	values := map[string]types.AttributeValue{
		":pk": &types.AttributeValueMemberS{Value: pk},
	}
	if skPrefix != "" {
		keyCondition += " AND begins_with(sk, :skPrefix)"
		values[":skPrefix"] = &types.AttributeValueMemberS{Value: skPrefix}
	}

	input := &dynamodb.QueryInput{
		TableName:                 &ds.TableName,
		KeyConditionExpression:    &keyCondition,
		ExpressionAttributeValues: values,
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	output, err := ds.Client.Query(ctx, input)
	if err != nil {
		return nil, NewUnavailable("store unavailable", err)
	}
	return output.Items, nil
}

// QueryByIndex returns the items whose gsi1pk equals indexKey on the named
// secondary index.
func (ds *DynamoService) QueryByIndex(ctx context.Context, indexName, indexKey string, limit int32) ([]map[string]types.AttributeValue, error) {
	keyCondition := "gsi1pk = :gsi1pk"
	input := &dynamodb.QueryInput{
		TableName:              &ds.TableName,
		IndexName:              &indexName,
		KeyConditionExpression: &keyCondition,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gsi1pk": &types.AttributeValueMemberS{Value: indexKey},
		},
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	output, err := ds.Client.Query(ctx, input)
	if err != nil {
		return nil, NewUnavailable("store unavailable", err)
	}
	return output.Items, nil
}

// ScanByKeyPrefix scans the table for items whose partition key begins with
// prefix. O(table size); only used when an index path is unavailable.
func (ds *DynamoService) ScanByKeyPrefix(ctx context.Context, prefix string, limit int32) ([]map[string]types.AttributeValue, error) {
	filter := expression.Name("pk").BeginsWith(prefix)
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, NewUnavailable("failed to build scan filter", err)
	}

	input := &dynamodb.ScanInput{
		TableName:                 &ds.TableName,
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	output, err := ds.Client.Scan(ctx, input)
	if err != nil {
		return nil, NewUnavailable("store unavailable", err)
	}
	return output.Items, nil
}

// Ping probes table connectivity with a single-item scan.
func (ds *DynamoService) Ping(ctx context.Context) error {
	_, err := ds.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &ds.TableName,
		Limit:     aws.Int32(1),
	})
	if err != nil {
		return NewUnavailable("store unavailable", err)
	}
	return nil
}

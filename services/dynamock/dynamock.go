// Package dynamock provides an in-memory DynamoDB client for tests. It
// implements the subset of the client API the service layer uses, with
// per-operation failure injection and call counting.
package dynamock

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MemClient is an in-memory composite-key table.
type MemClient struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue

	// Failure injection: when set, the matching operation returns the error.
	FailGet    error
	FailPut    error
	FailUpdate error
	FailDelete error
	FailQuery  error
	FailScan   error
	// FailIndexQuery fails only queries that target a secondary index.
	FailIndexQuery error

	// Calls counts invocations per operation name.
	Calls map[string]int

	// LastUpdateInput records the most recent UpdateItem call.
	LastUpdateInput *dynamodb.UpdateItemInput
}

func New() *MemClient {
	return &MemClient{
		items: make(map[string]map[string]types.AttributeValue),
		Calls: make(map[string]int),
	}
}

func stringValue(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func storageKey(item map[string]types.AttributeValue) string {
	return stringValue(item["pk"]) + "|" + stringValue(item["sk"])
}

// Seed inserts an item directly, bypassing counters.
func (c *MemClient) Seed(item map[string]types.AttributeValue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[storageKey(item)] = copyItem(item)
}

// TotalCalls returns the number of store operations performed.
func (c *MemClient) TotalCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, n := range c.Calls {
		total += n
	}
	return total
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	dup := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		dup[k] = v
	}
	return dup
}

func (c *MemClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls["GetItem"]++
	if c.FailGet != nil {
		return nil, c.FailGet
	}
	item, ok := c.items[storageKey(params.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (c *MemClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls["PutItem"]++
	if c.FailPut != nil {
		return nil, c.FailPut
	}
	c.items[storageKey(params.Item)] = copyItem(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (c *MemClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls["DeleteItem"]++
	if c.FailDelete != nil {
		return nil, c.FailDelete
	}
	delete(c.items, storageKey(params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

// UpdateItem applies a builder-generated SET expression by resolving the
// name and value placeholders, then returns the merged item.
func (c *MemClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls["UpdateItem"]++
	c.LastUpdateInput = params
	if c.FailUpdate != nil {
		return nil, c.FailUpdate
	}

	key := storageKey(params.Key)
	item, ok := c.items[key]
	if !ok {
		item = copyItem(params.Key)
	}

	expr := strings.TrimSpace(*params.UpdateExpression)
	expr = strings.TrimPrefix(expr, "SET ")
	for _, assignment := range strings.Split(expr, ", ") {
		parts := strings.SplitN(assignment, " = ", 2)
		if len(parts) != 2 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		if resolved, ok := params.ExpressionAttributeNames[name]; ok {
			name = resolved
		}
		if value, ok := params.ExpressionAttributeValues[strings.TrimSpace(parts[1])]; ok {
			item[name] = value
		}
	}
	c.items[key] = item
	return &dynamodb.UpdateItemOutput{Attributes: copyItem(item)}, nil
}

// Query serves both partition queries (pk, optional sk prefix) and GSI1
// queries (gsi1pk) by inspecting the bound expression values.
func (c *MemClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls["Query"]++
	if c.FailQuery != nil {
		return nil, c.FailQuery
	}
	if params.IndexName != nil && c.FailIndexQuery != nil {
		return nil, c.FailIndexQuery
	}

	var matches []map[string]types.AttributeValue
	if params.IndexName != nil {
		want := stringValue(params.ExpressionAttributeValues[":gsi1pk"])
		for _, item := range c.items {
			if stringValue(item["gsi1pk"]) == want {
				matches = append(matches, copyItem(item))
			}
		}
	} else {
		wantPK := stringValue(params.ExpressionAttributeValues[":pk"])
		skPrefix := ""
		if av, ok := params.ExpressionAttributeValues[":skPrefix"]; ok {
			skPrefix = stringValue(av)
		}
		for _, item := range c.items {
			if stringValue(item["pk"]) != wantPK {
				continue
			}
			if skPrefix != "" && !strings.HasPrefix(stringValue(item["sk"]), skPrefix) {
				continue
			}
			matches = append(matches, copyItem(item))
		}
	}
	return &dynamodb.QueryOutput{Items: matches, Count: int32(len(matches))}, nil
}

// Scan returns every item; filter expressions are not evaluated, matching
// callers that filter client-side.
func (c *MemClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls["Scan"]++
	if c.FailScan != nil {
		return nil, c.FailScan
	}

	var items []map[string]types.AttributeValue
	for _, item := range c.items {
		items = append(items, copyItem(item))
	}
	return &dynamodb.ScanOutput{Items: items, Count: int32(len(items))}, nil
}

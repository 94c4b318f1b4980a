package table

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeClient is an in-memory Client covering the slice of DynamoDB
// behavior the accessors rely on: keyed storage per table, conditional
// put failure when a condition expression is present and the key exists,
// and equality queries driven by the expression attribute maps.
type fakeClient struct {
	mu     sync.Mutex
	keys   map[string][2]string // table -> [hashKey, rangeKey]
	tables map[string]map[string]map[string]types.AttributeValue
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		keys:   make(map[string][2]string),
		tables: make(map[string]map[string]map[string]types.AttributeValue),
	}
}

func (f *fakeClient) addTable(name, hashKey, rangeKey string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys[name] = [2]string{hashKey, rangeKey}
	f.tables[name] = make(map[string]map[string]types.AttributeValue)
}

func avString(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return "S:" + v.Value
	case *types.AttributeValueMemberN:
		return "N:" + v.Value
	case *types.AttributeValueMemberBOOL:
		return fmt.Sprintf("BOOL:%t", v.Value)
	case *types.AttributeValueMemberNULL:
		return "NULL"
	default:
		return fmt.Sprintf("%#v", av)
	}
}

func (f *fakeClient) itemKey(table string, attrs map[string]types.AttributeValue) string {
	keys := f.keys[table]
	key := avString(attrs[keys[0]])
	if keys[1] != "" {
		key += "|" + avString(attrs[keys[1]])
	}
	return key
}

func (f *fakeClient) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := *params.TableName
	key := f.itemKey(table, params.Item)
	if params.ConditionExpression != nil {
		if _, exists := f.tables[table][key]; exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.tables[table][key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeClient) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := *params.TableName
	item, ok := f.tables[table][f.itemKey(table, params.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeClient) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := *params.TableName
	delete(f.tables[table], f.itemKey(table, params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeClient) Scan(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var items []map[string]types.AttributeValue
	for _, item := range f.tables[*params.TableName] {
		items = append(items, item)
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

// Query supports the single-equality key conditions the accessors build:
// one substituted name and one substituted value.
func (f *fakeClient) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var field string
	for _, name := range params.ExpressionAttributeNames {
		field = name
	}
	var want types.AttributeValue
	for _, value := range params.ExpressionAttributeValues {
		want = value
	}

	var items []map[string]types.AttributeValue
	for _, item := range f.tables[*params.TableName] {
		got, ok := item[field]
		if !ok || avString(got) != avString(want) {
			continue
		}
		items = append(items, item)
		if params.Limit != nil && int32(len(items)) >= *params.Limit {
			break
		}
	}
	return &dynamodb.QueryOutput{Items: items}, nil
}

package ddb

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamoDB keeps items per table in memory and records the last input of
// each call. UpdateItem understands SET clauses of the form "#n = :v".
type fakeDynamoDB struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
	err    error

	lastPut    *dynamodb.PutItemInput
	lastUpdate *dynamodb.UpdateItemInput
	lastDelete *dynamodb.DeleteItemInput
}

func newFakeDynamoDB(tables ...string) *fakeDynamoDB {
	f := &fakeDynamoDB{tables: make(map[string]map[string]map[string]types.AttributeValue)}
	for _, table := range tables {
		f.tables[table] = make(map[string]map[string]types.AttributeValue)
	}
	return f
}

func (f *fakeDynamoDB) table(name *string) (map[string]map[string]types.AttributeValue, error) {
	if f.err != nil {
		return nil, f.err
	}
	items, ok := f.tables[aws.ToString(name)]
	if !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("Requested resource not found")}
	}
	return items, nil
}

func keyOf(key map[string]types.AttributeValue) string {
	if s, ok := key["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamoDB) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPut = params

	items, err := f.table(params.TableName)
	if err != nil {
		return nil, err
	}
	items[keyOf(params.Item)] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.table(params.TableName)
	if err != nil {
		return nil, err
	}
	return &dynamodb.GetItemOutput{Item: items[keyOf(params.Key)]}, nil
}

func (f *fakeDynamoDB) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastUpdate = params

	items, err := f.table(params.TableName)
	if err != nil {
		return nil, err
	}

	id := keyOf(params.Key)
	item, ok := items[id]
	if !ok {
		item = map[string]types.AttributeValue{"id": params.Key["id"]}
	}

	updated := make(map[string]types.AttributeValue)
	clauses := strings.TrimPrefix(strings.TrimSpace(aws.ToString(params.UpdateExpression)), "SET ")
	for _, clause := range strings.Split(clauses, ",") {
		parts := strings.SplitN(clause, "=", 2)
		if len(parts) != 2 {
			continue
		}
		name := params.ExpressionAttributeNames[strings.TrimSpace(parts[0])]
		value := params.ExpressionAttributeValues[strings.TrimSpace(parts[1])]
		item[name] = value
		updated[name] = value
	}
	items[id] = item

	return &dynamodb.UpdateItemOutput{Attributes: updated}, nil
}

func (f *fakeDynamoDB) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastDelete = params

	items, err := f.table(params.TableName)
	if err != nil {
		return nil, err
	}
	delete(items, keyOf(params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamoDB) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.table(params.TableName); err != nil {
		return nil, err
	}
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{TableName: params.TableName},
	}, nil
}

package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"forever_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI covering the expression subset this
// server issues: keyed gets/puts/deletes, attribute_exists /
// attribute_not_exists guards, SET and ADD update expressions, full scans
// and single-attribute equality queries.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
	keys   map[string][]string
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		tables: map[string]map[string]map[string]types.AttributeValue{},
		keys: map[string][]string{
			models.BiodataTable:   {"contactEmail"},
			models.UsersTable:     {"email"},
			models.FavoritesTable: {"userEmail", "biodataId"},
			models.StoriesTable:   {"storyId"},
			models.PaymentsTable:  {"paymentId"},
			models.CountersTable:  {"counterName"},
		},
	}
}

func attrString(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	}
	return ""
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	if item == nil {
		return nil
	}
	dup := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		dup[k] = v
	}
	return dup
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	if f.tables[name] == nil {
		f.tables[name] = map[string]map[string]types.AttributeValue{}
	}
	return f.tables[name]
}

func (f *fakeDynamo) keyOf(tableName string, item map[string]types.AttributeValue) string {
	parts := make([]string, 0, 2)
	for _, attr := range f.keys[tableName] {
		parts = append(parts, attrString(item[attr]))
	}
	return strings.Join(parts, "|")
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tableName := aws.ToString(params.TableName)
	item := f.table(tableName)[f.keyOf(tableName, params.Key)]
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tableName := aws.ToString(params.TableName)
	key := f.keyOf(tableName, params.Item)

	if params.ConditionExpression != nil {
		if _, exists := f.table(tableName)[key]; exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}

	f.table(tableName)[key] = copyItem(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tableName := aws.ToString(params.TableName)
	key := f.keyOf(tableName, params.Key)
	item, exists := f.table(tableName)[key]

	condition := aws.ToString(params.ConditionExpression)
	if strings.HasPrefix(condition, "attribute_exists") && !exists {
		return nil, &types.ConditionalCheckFailedException{}
	}
	if strings.HasPrefix(condition, "attribute_not_exists") && exists {
		return nil, &types.ConditionalCheckFailedException{}
	}

	if !exists {
		item = copyItem(params.Key)
	} else {
		item = copyItem(item)
	}

	expression := aws.ToString(params.UpdateExpression)
	switch {
	case strings.HasPrefix(expression, "SET"):
		for _, clause := range strings.Split(strings.TrimPrefix(expression, "SET"), ",") {
			sides := strings.SplitN(clause, "=", 2)
			name := strings.TrimSpace(sides[0])
			placeholder := strings.TrimSpace(sides[1])
			item[params.ExpressionAttributeNames[name]] = params.ExpressionAttributeValues[placeholder]
		}
	case strings.HasPrefix(expression, "ADD"):
		fields := strings.Fields(strings.TrimPrefix(expression, "ADD"))
		attr := params.ExpressionAttributeNames[fields[0]]
		delta, _ := strconv.Atoi(attrString(params.ExpressionAttributeValues[fields[1]]))
		current := 0
		if existing, ok := item[attr]; ok {
			current, _ = strconv.Atoi(attrString(existing))
		}
		item[attr] = &types.AttributeValueMemberN{Value: strconv.Itoa(current + delta)}
	}

	f.table(tableName)[key] = item
	return &dynamodb.UpdateItemOutput{Attributes: copyItem(item)}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tableName := aws.ToString(params.TableName)
	delete(f.table(tableName), f.keyOf(tableName, params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := f.table(aws.ToString(params.TableName))

	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]map[string]types.AttributeValue, 0, len(items))
	for _, k := range keys {
		out = append(out, copyItem(items[k]))
	}
	return &dynamodb.ScanOutput{Items: out}, nil
}

func (f *fakeDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Key conditions here are always a single "attr = :placeholder".
	sides := strings.SplitN(aws.ToString(params.KeyConditionExpression), "=", 2)
	attr := strings.TrimSpace(sides[0])
	want := attrString(params.ExpressionAttributeValues[strings.TrimSpace(sides[1])])

	items := f.table(aws.ToString(params.TableName))
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []map[string]types.AttributeValue
	for _, k := range keys {
		if attrString(items[k][attr]) == want {
			out = append(out, copyItem(items[k]))
		}
		if params.Limit != nil && len(out) == int(*params.Limit) {
			break
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

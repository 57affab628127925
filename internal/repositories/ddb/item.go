// Package ddb stores items in a DynamoDB table keyed by the "id" attribute.
package ddb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"

	"items-api/internal/models"
	"items-api/internal/repositories"
)

// ItemRepository implements repositories.ItemRepository on DynamoDB
type ItemRepository struct {
	api    DynamoDBAPI
	table  string
	logger *logrus.Logger
}

var _ repositories.ItemRepository = (*ItemRepository)(nil)

// NewItemRepository creates a DynamoDB item repository over an existing client
func NewItemRepository(api DynamoDBAPI, table string, logger *logrus.Logger) *ItemRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &ItemRepository{
		api:    api,
		table:  table,
		logger: logger,
	}
}

// New builds the DynamoDB client from cfg and wraps it in an ItemRepository
func New(cfg *repositories.Config, logger *logrus.Logger) (repositories.ItemRepository, error) {
	client, err := NewClient(context.Background(), cfg.DynamoDB)
	if err != nil {
		return nil, repositories.ConnectionError(cfg.TableName, err)
	}
	return NewItemRepository(client, cfg.TableName, logger), nil
}

func itemKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// Put writes the item unconditionally
func (r *ItemRepository) Put(ctx context.Context, item *models.Item) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return repositories.NewRepositoryError("put", r.table, item.ID, fmt.Errorf("failed to marshal item: %w", err))
	}

	start := time.Now()
	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	})
	r.logCall("put", item.ID, time.Since(start), err)
	if err != nil {
		return r.wrap("put", item.ID, err)
	}

	return nil
}

// Get reads the item at id
func (r *ItemRepository) Get(ctx context.Context, id string) (repositories.Record, error) {
	start := time.Now()
	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       itemKey(id),
	})
	r.logCall("get", id, time.Since(start), err)
	if err != nil {
		return nil, r.wrap("get", id, err)
	}

	if len(out.Item) == 0 {
		return nil, repositories.NotFoundError(r.table, id)
	}

	var record repositories.Record
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, repositories.NewRepositoryError("get", r.table, id, fmt.Errorf("failed to unmarshal item: %w", err))
	}

	return record, nil
}

// UpdateName sets name on the item at id and returns the UPDATED_NEW attributes
func (r *ItemRepository) UpdateName(ctx context.Context, id, name string) (repositories.Record, error) {
	update := expression.Set(expression.Name("name"), expression.Value(name))
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return nil, repositories.NewRepositoryError("update", r.table, id, fmt.Errorf("failed to build update expression: %w", err))
	}

	start := time.Now()
	out, err := r.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       itemKey(id),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	r.logCall("update", id, time.Since(start), err)
	if err != nil {
		return nil, r.wrap("update", id, err)
	}

	record := repositories.Record{}
	if err := attributevalue.UnmarshalMap(out.Attributes, &record); err != nil {
		return nil, repositories.NewRepositoryError("update", r.table, id, fmt.Errorf("failed to unmarshal attributes: %w", err))
	}

	return record, nil
}

// Delete removes the item at id; DynamoDB treats an absent key as success
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	start := time.Now()
	_, err := r.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       itemKey(id),
	})
	r.logCall("delete", id, time.Since(start), err)
	if err != nil {
		return r.wrap("delete", id, err)
	}

	return nil
}

// Ping describes the table to confirm it exists and is reachable
func (r *ItemRepository) Ping(ctx context.Context) error {
	_, err := r.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return r.wrap("ping", "", err)
	}
	return nil
}

// Close is a no-op; the SDK client holds no resources that need releasing
func (r *ItemRepository) Close() error {
	return nil
}

// wrap classifies SDK errors and attaches operation context
func (r *ItemRepository) wrap(op, id string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDeniedException", "UnrecognizedClientException", "InvalidSignatureException":
			err = fmt.Errorf("%w: %w", repositories.ErrPermission, err)
		}
	} else if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %w", repositories.ErrConnection, err)
	}

	return repositories.NewRepositoryError(op, r.table, id, err)
}

func (r *ItemRepository) logCall(op, id string, duration time.Duration, err error) {
	fields := logrus.Fields{
		"operation": op,
		"table":     r.table,
		"item_id":   id,
		"duration":  duration,
	}

	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			fields["error_code"] = apiErr.ErrorCode()
			fields["error_fault"] = apiErr.ErrorFault().String()
		}
		fields["error"] = err.Error()
		r.logger.WithFields(fields).Error("DynamoDB call failed")
		return
	}

	r.logger.WithFields(fields).Debug("DynamoDB call completed")
}

package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Ian12467/library-circulation/pkg/models"
	"github.com/Ian12467/library-circulation/pkg/storage"
)

const workItemsIndex = "work_id-index"

// CreateItem records a newly acquired copy in DynamoDB.
func (s *Store) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	item.UpdatedAt = time.Now()

	itemAV, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.ItemsTableName),
		Item:                itemAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"), // Prevent overwriting existing items.
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("item %s already exists: %w", item.ID, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create item in DynamoDB: %w", err)
	}

	return item, nil
}

// GetItem retrieves an item from DynamoDB by its ID.
func (s *Store) GetItem(ctx context.Context, itemID string) (*models.Item, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": itemID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.ItemsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get item from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("item %s: %w", itemID, storage.ErrNotFound)
	}

	var item models.Item
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}

	return &item, nil
}

// ListItemsByWork retrieves all copies of a work, ascending by item ID.
func (s *Store) ListItemsByWork(ctx context.Context, workID string) ([]models.Item, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.ItemsTableName),
		IndexName:              aws.String(workItemsIndex),
		KeyConditionExpression: aws.String("work_id = :workID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":workID": &types.AttributeValueMemberS{Value: workID},
		},
		ScanIndexForward: aws.Bool(true), // Ascending item ID: deterministic claim order.
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for work %s: %w", workID, err)
	}

	var items []models.Item
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal items: %w", err)
	}

	return items, nil
}

// TryTransition atomically moves an item between lifecycle states. The
// conditional update only succeeds while the item's current status is in the
// expected set, which is what serializes concurrent checkouts, reservation
// claims, and lifecycle operations on the same copy.
func (s *Store) TryTransition(ctx context.Context, itemID string, from []models.ItemStatus, to models.ItemStatus) error {
	if len(from) == 0 {
		return fmt.Errorf("empty expected status set for item %s", itemID)
	}

	values := map[string]types.AttributeValue{
		":to": &types.AttributeValueMemberS{Value: string(to)},
	}
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal transition timestamp: %w", err)
	}
	values[":now"] = nowAV

	condition := "#status IN ("
	for i, status := range from {
		placeholder := fmt.Sprintf(":from%d", i)
		if i > 0 {
			condition += ", "
		}
		condition += placeholder
		values[placeholder] = &types.AttributeValueMemberS{Value: string(status)}
	}
	condition += ")"

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.ItemsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: itemID},
		},
		UpdateExpression:          aws.String("SET #status = :to, updated_at = :now"),
		ConditionExpression:       aws.String(condition),
		ExpressionAttributeNames:  map[string]string{"#status": "status"},
		ExpressionAttributeValues: values,
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// Distinguish a lost race from a missing item.
			if _, getErr := s.GetItem(ctx, itemID); getErr != nil {
				return getErr
			}
			return fmt.Errorf("item %s not in expected state: %w", itemID, storage.ErrConflict)
		}
		return fmt.Errorf("failed to transition item %s: %w", itemID, err)
	}

	return nil
}

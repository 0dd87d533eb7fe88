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
	"github.com/google/uuid"

	"github.com/Ian12467/library-circulation/pkg/models"
	"github.com/Ian12467/library-circulation/pkg/storage"
)

const (
	workReservationsIndex   = "work_id-requested_at-index"
	pendingReservationIndex = "pending-expires_at-index"
)

// CreateReservation inserts a new pending reservation.
func (s *Store) CreateReservation(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	reservation.ID = uuid.New().String()
	reservation.Status = models.ReservationPending
	reservation.Pending = models.ReservationPendingAttr

	reservationAV, err := attributevalue.MarshalMap(reservation)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reservation: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.ReservationsTableName),
		Item:                reservationAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err = s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create reservation in DynamoDB: %w", err)
	}

	return reservation, nil
}

// GetReservation retrieves a reservation from DynamoDB by its ID.
func (s *Store) GetReservation(ctx context.Context, reservationID string) (*models.Reservation, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": reservationID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reservation ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.ReservationsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, storage.ErrNotFound)
	}

	var reservation models.Reservation
	if err := attributevalue.UnmarshalMap(result.Item, &reservation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reservation: %w", err)
	}

	return &reservation, nil
}

// FindPendingByWork retrieves the oldest pending reservation for a work.
func (s *Store) FindPendingByWork(ctx context.Context, workID string) (*models.Reservation, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.ReservationsTableName),
		IndexName:              aws.String(workReservationsIndex),
		KeyConditionExpression: aws.String("work_id = :workID"),
		FilterExpression:       aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":workID":  &types.AttributeValueMemberS{Value: workID},
			":pending": &types.AttributeValueMemberS{Value: string(models.ReservationPending)},
		},
		ScanIndexForward: aws.Bool(true), // Oldest request first.
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations for work %s: %w", workID, err)
	}

	if len(result.Items) == 0 {
		return nil, fmt.Errorf("no pending reservation for work %s: %w", workID, storage.ErrNotFound)
	}

	var reservation models.Reservation
	if err := attributevalue.UnmarshalMap(result.Items[0], &reservation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reservation: %w", err)
	}

	return &reservation, nil
}

// ClaimReservation fulfills the reservation and sets the item aside in one
// transaction. Fulfillment without a claimed copy cannot happen: if either leg
// fails, neither status changes.
func (s *Store) ClaimReservation(ctx context.Context, reservationID, itemID string) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal claim timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Fulfill the reservation, recording the claimed item.
				Update: &types.Update{
					TableName: aws.String(s.ReservationsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: reservationID},
					},
					UpdateExpression:    aws.String("SET #status = :fulfilled, item_id = :itemID REMOVE pending"),
					ConditionExpression: aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":fulfilled": &types.AttributeValueMemberS{Value: string(models.ReservationFulfilled)},
						":pending":   &types.AttributeValueMemberS{Value: string(models.ReservationPending)},
						":itemID":    &types.AttributeValueMemberS{Value: itemID},
					},
				},
			},
			{
				// Operation 2: Claim the copy.
				Update: &types.Update{
					TableName: aws.String(s.ItemsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: itemID},
					},
					UpdateExpression:    aws.String("SET #status = :reserved, updated_at = :now"),
					ConditionExpression: aws.String("#status = :available"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":reserved":  &types.AttributeValueMemberS{Value: string(models.ItemReserved)},
						":available": &types.AttributeValueMemberS{Value: string(models.ItemAvailable)},
						":now":       nowAV,
					},
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			switch {
			case conditionalCheckFailed(tce.CancellationReasons, 0):
				return fmt.Errorf("reservation %s: %w", reservationID, storage.ErrReservationNotPending)
			case conditionalCheckFailed(tce.CancellationReasons, 1):
				return fmt.Errorf("item %s claimed concurrently: %w", itemID, storage.ErrConflict)
			}
		}
		return fmt.Errorf("failed to execute reservation claim transaction: %w", err)
	}

	return nil
}

// CancelReservation moves a pending reservation to Cancelled.
func (s *Store) CancelReservation(ctx context.Context, reservationID string) error {
	return s.closePendingReservation(ctx, reservationID, models.ReservationCancelled)
}

// ExpireReservation moves a pending reservation to Expired.
func (s *Store) ExpireReservation(ctx context.Context, reservationID string) error {
	return s.closePendingReservation(ctx, reservationID, models.ReservationExpired)
}

func (s *Store) closePendingReservation(ctx context.Context, reservationID string, to models.ReservationStatus) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.ReservationsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: reservationID},
		},
		UpdateExpression:    aws.String("SET #status = :to REMOVE pending"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to":      &types.AttributeValueMemberS{Value: string(to)},
			":pending": &types.AttributeValueMemberS{Value: string(models.ReservationPending)},
		},
	}

	_, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("reservation %s: %w", reservationID, storage.ErrReservationNotPending)
		}
		return fmt.Errorf("failed to update reservation %s: %w", reservationID, err)
	}

	return nil
}

// ListExpiredPending retrieves pending reservations whose expiry date passed.
func (s *Store) ListExpiredPending(ctx context.Context, before time.Time) ([]models.Reservation, error) {
	cutoff, err := before.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.ReservationsTableName),
		IndexName:              aws.String(pendingReservationIndex),
		KeyConditionExpression: aws.String("pending = :pending AND expires_at < :cutoff"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: models.ReservationPendingAttr},
			":cutoff":  &types.AttributeValueMemberS{Value: string(cutoff)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for expired reservations: %w", err)
	}

	var reservations []models.Reservation
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &reservations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reservations: %w", err)
	}

	return reservations, nil
}

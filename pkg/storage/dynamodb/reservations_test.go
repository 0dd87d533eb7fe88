package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ian12467/library-circulation/pkg/models"
	"github.com/Ian12467/library-circulation/pkg/storage"
	"github.com/Ian12467/library-circulation/pkg/storage/dynamodb/mocks"
)

func TestCreateReservation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ReservationsTableName: "reservations"}

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			return *input.ConditionExpression == "attribute_not_exists(id)"
		})).Return(&dynamodb.PutItemOutput{}, nil)

		reservation, err := store.CreateReservation(context.Background(), &models.Reservation{
			WorkID:   "work-1",
			MemberID: "member-1",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, reservation.ID)
		assert.Equal(t, models.ReservationPending, reservation.Status)
		assert.Equal(t, models.ReservationPendingAttr, reservation.Pending)
		mockClient.AssertExpectations(t)
	})
}

func TestFindPendingByWork(t *testing.T) {
	t.Run("Oldest First", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ReservationsTableName: "reservations"}

		oldest, _ := attributevalue.MarshalMap(&models.Reservation{ID: "res-1", WorkID: "work-1", Status: models.ReservationPending})
		newer, _ := attributevalue.MarshalMap(&models.Reservation{ID: "res-2", WorkID: "work-1", Status: models.ReservationPending})
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return *input.IndexName == workReservationsIndex && *input.ScanIndexForward
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{oldest, newer}}, nil)

		reservation, err := store.FindPendingByWork(context.Background(), "work-1")

		require.NoError(t, err)
		assert.Equal(t, "res-1", reservation.ID)
		mockClient.AssertExpectations(t)
	})

	t.Run("None Pending", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ReservationsTableName: "reservations"}

		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{}, nil)

		_, err := store.FindPendingByWork(context.Background(), "work-1")

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestClaimReservation(t *testing.T) {
	reservationID := uuid.New().String()

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ReservationsTableName: "reservations", ItemsTableName: "items"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			if len(input.TransactItems) != 2 {
				return false
			}
			reservationUpdate := input.TransactItems[0].Update
			itemUpdate := input.TransactItems[1].Update
			return reservationUpdate != nil && *reservationUpdate.ConditionExpression == "#status = :pending" &&
				itemUpdate != nil && *itemUpdate.ConditionExpression == "#status = :available"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.ClaimReservation(context.Background(), reservationID, "item-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Reservation Not Pending", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ReservationsTableName: "reservations", ItemsTableName: "items"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledWithReason(0, 2))

		err := store.ClaimReservation(context.Background(), reservationID, "item-1")

		assert.ErrorIs(t, err, storage.ErrReservationNotPending)
		mockClient.AssertExpectations(t)
	})

	t.Run("Item Claimed Concurrently", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ReservationsTableName: "reservations", ItemsTableName: "items"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledWithReason(1, 2))

		err := store.ClaimReservation(context.Background(), reservationID, "item-1")

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertExpectations(t)
	})
}

func TestCancelReservation(t *testing.T) {
	reservationID := uuid.New().String()

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ReservationsTableName: "reservations"}

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return *input.ConditionExpression == "#status = :pending" &&
				input.ExpressionAttributeValues[":to"].(*types.AttributeValueMemberS).Value == string(models.ReservationCancelled)
		})).Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.CancelReservation(context.Background(), reservationID)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Fulfilled", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ReservationsTableName: "reservations"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		err := store.CancelReservation(context.Background(), reservationID)

		assert.ErrorIs(t, err, storage.ErrReservationNotPending)
		mockClient.AssertExpectations(t)
	})
}

func TestListExpiredPending(t *testing.T) {
	t.Run("Queries Sparse Expiry Index", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, ReservationsTableName: "reservations"}

		reservationAV, _ := attributevalue.MarshalMap(&models.Reservation{ID: "res-1", Status: models.ReservationPending, Pending: models.ReservationPendingAttr})
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return *input.IndexName == pendingReservationIndex
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{reservationAV}}, nil)

		reservations, err := store.ListExpiredPending(context.Background(), time.Now().UTC())

		assert.NoError(t, err)
		assert.Len(t, reservations, 1)
		mockClient.AssertExpectations(t)
	})
}

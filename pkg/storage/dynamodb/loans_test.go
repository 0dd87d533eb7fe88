package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
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

func canceledWithReason(failedIndex, total int) *types.TransactionCanceledException {
	reasons := make([]types.CancellationReason, total)
	for i := range reasons {
		code := "None"
		if i == failedIndex {
			code = "ConditionalCheckFailed"
		}
		reasons[i].Code = aws.String(code)
	}
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}

func TestOpenLoan(t *testing.T) {
	newLoan := func() *models.Loan {
		return &models.Loan{
			ItemID:   "item-1",
			MemberID: "member-1",
			LoanedAt: time.Now().UTC(),
			DueDate:  time.Now().UTC().AddDate(0, 0, 14),
		}
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, LoansTableName: "loans", ItemsTableName: "items"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			if len(input.TransactItems) != 2 {
				return false
			}
			put := input.TransactItems[0].Put
			update := input.TransactItems[1].Update
			return put != nil && *put.ConditionExpression == "attribute_not_exists(id)" &&
				update != nil && *update.ConditionExpression == "#status = :loaned AND attribute_not_exists(open_loan_id)"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		loan, err := store.OpenLoan(context.Background(), newLoan())

		require.NoError(t, err)
		assert.NotEmpty(t, loan.ID)
		assert.Equal(t, models.LoanOpenAttr, loan.Open)
		mockClient.AssertExpectations(t)
	})

	t.Run("Item Already Has Open Loan", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, LoansTableName: "loans", ItemsTableName: "items"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledWithReason(1, 2))

		_, err := store.OpenLoan(context.Background(), newLoan())

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("Transaction Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, LoansTableName: "loans", ItemsTableName: "items"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transaction failed"))

		_, err := store.OpenLoan(context.Background(), newLoan())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute loan creation transaction")
		mockClient.AssertExpectations(t)
	})
}

func TestCloseLoan(t *testing.T) {
	loanID := uuid.New().String()
	returnedAt := time.Now().UTC()
	fine := &models.Fine{LoanID: loanID, MemberID: "member-1", AmountCents: 150, DaysOverdue: 3, Status: models.FinePending, Source: models.FineSourceReturn}

	t.Run("Success Without Fine", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, LoansTableName: "loans", ItemsTableName: "items", FinesTableName: "fines"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			return len(input.TransactItems) == 2
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.CloseLoan(context.Background(), loanID, "item-1", returnedAt, nil)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Success With Fine", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, LoansTableName: "loans", ItemsTableName: "items", FinesTableName: "fines"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			if len(input.TransactItems) != 3 {
				return false
			}
			put := input.TransactItems[2].Put
			return put != nil && *put.ConditionExpression == "attribute_not_exists(loan_id)"
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.CloseLoan(context.Background(), loanID, "item-1", returnedAt, fine)

		assert.NoError(t, err)
		assert.NotEmpty(t, fine.ID)
		assert.Equal(t, models.FinesFeedPK, fine.GSI1PK)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Closed", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, LoansTableName: "loans", ItemsTableName: "items"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledWithReason(0, 2))

		err := store.CloseLoan(context.Background(), loanID, "item-1", returnedAt, nil)

		assert.ErrorIs(t, err, storage.ErrLoanAlreadyClosed)
		mockClient.AssertExpectations(t)
	})

	t.Run("Item Not Held By Loan", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, LoansTableName: "loans", ItemsTableName: "items"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledWithReason(1, 2))

		err := store.CloseLoan(context.Background(), loanID, "item-1", returnedAt, nil)

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("Duplicate Fine", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, LoansTableName: "loans", ItemsTableName: "items", FinesTableName: "fines"}

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledWithReason(2, 3))

		err := store.CloseLoan(context.Background(), loanID, "item-1", returnedAt, fine)

		assert.ErrorIs(t, err, storage.ErrDuplicateFine)
		mockClient.AssertExpectations(t)
	})
}

func TestRenewLoan(t *testing.T) {
	loanID := uuid.New().String()
	newDue := time.Now().UTC().AddDate(0, 0, 21)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, LoansTableName: "loans"}

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return *input.ConditionExpression == "attribute_not_exists(returned_at) AND renewals = :expected" &&
				input.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value == "1"
		})).Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.RenewLoan(context.Background(), loanID, newDue, 1)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Returned", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, LoansTableName: "loans"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})
		returnedAt := time.Now().UTC()
		loanAV, _ := attributevalue.MarshalMap(&models.Loan{ID: loanID, ReturnedAt: &returnedAt})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: loanAV}, nil)

		err := store.RenewLoan(context.Background(), loanID, newDue, 0)

		assert.ErrorIs(t, err, storage.ErrLoanAlreadyClosed)
		mockClient.AssertExpectations(t)
	})

	t.Run("Renewed Concurrently", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, LoansTableName: "loans"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})
		loanAV, _ := attributevalue.MarshalMap(&models.Loan{ID: loanID, Renewals: 1, Open: models.LoanOpenAttr})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: loanAV}, nil)

		err := store.RenewLoan(context.Background(), loanID, newDue, 0)

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertExpectations(t)
	})
}

func TestGetOpenLoanByItem(t *testing.T) {
	loanID := uuid.New().String()

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, LoansTableName: "loans", ItemsTableName: "items"}

		itemAV, _ := attributevalue.MarshalMap(&models.Item{ID: "item-1", Status: models.ItemLoaned, OpenLoanID: &loanID})
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.GetItemInput) bool {
			return *input.TableName == "items"
		})).Return(&dynamodb.GetItemOutput{Item: itemAV}, nil)

		loanAV, _ := attributevalue.MarshalMap(&models.Loan{ID: loanID, ItemID: "item-1", Open: models.LoanOpenAttr})
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.GetItemInput) bool {
			return *input.TableName == "loans"
		})).Return(&dynamodb.GetItemOutput{Item: loanAV}, nil)

		loan, err := store.GetOpenLoanByItem(context.Background(), "item-1")

		require.NoError(t, err)
		assert.Equal(t, loanID, loan.ID)
		mockClient.AssertExpectations(t)
	})

	t.Run("No Open Loan", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, LoansTableName: "loans", ItemsTableName: "items"}

		itemAV, _ := attributevalue.MarshalMap(&models.Item{ID: "item-1", Status: models.ItemAvailable})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: itemAV}, nil)

		_, err := store.GetOpenLoanByItem(context.Background(), "item-1")

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestListOverdueOpenLoans(t *testing.T) {
	t.Run("Queries Sparse Index", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, LoansTableName: "loans"}

		loanAV, _ := attributevalue.MarshalMap(&models.Loan{ID: "loan-1", Open: models.LoanOpenAttr})
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return *input.IndexName == openLoansIndex &&
				input.ExpressionAttributeValues[":open"].(*types.AttributeValueMemberS).Value == models.LoanOpenAttr
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{loanAV}}, nil)

		loans, err := store.ListOverdueOpenLoans(context.Background(), time.Now().UTC())

		assert.NoError(t, err)
		assert.Len(t, loans, 1)
		mockClient.AssertExpectations(t)
	})
}

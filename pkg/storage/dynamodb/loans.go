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
	openLoansIndex   = "open-due_date-index"
	memberLoansIndex = "member_id-index"
)

// conditionalCheckFailed reports whether the cancellation reason at index i is
// a failed condition check.
func conditionalCheckFailed(reasons []types.CancellationReason, i int) bool {
	if i >= len(reasons) || reasons[i].Code == nil {
		return false
	}
	return *reasons[i].Code == "ConditionalCheckFailed"
}

// OpenLoan atomically inserts the loan record and binds it to the item as its
// single open loan. The item must already be Loaned (the registry transition
// happens first) and must not carry another open loan.
func (s *Store) OpenLoan(ctx context.Context, loan *models.Loan) (*models.Loan, error) {
	loan.ID = uuid.New().String()
	loan.Open = models.LoanOpenAttr

	loanAV, err := attributevalue.MarshalMap(loan)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal loan: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Create the loan record.
				Put: &types.Put{
					TableName:           aws.String(s.LoansTableName),
					Item:                loanAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				// Operation 2: Bind the loan to the item. The item must still be
				// Loaned with no open loan; this is the at-most-one-open-loan guard.
				Update: &types.Update{
					TableName: aws.String(s.ItemsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: loan.ItemID},
					},
					UpdateExpression:    aws.String("SET open_loan_id = :loanID"),
					ConditionExpression: aws.String("#status = :loaned AND attribute_not_exists(open_loan_id)"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":loanID": &types.AttributeValueMemberS{Value: loan.ID},
						":loaned": &types.AttributeValueMemberS{Value: string(models.ItemLoaned)},
					},
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && (conditionalCheckFailed(tce.CancellationReasons, 0) || conditionalCheckFailed(tce.CancellationReasons, 1)) {
			return nil, fmt.Errorf("item %s lost to a concurrent loan: %w", loan.ItemID, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to execute loan creation transaction: %w", err)
	}

	return loan, nil
}

// CloseLoan sets the loan's return timestamp, releases the item back to
// Available, and inserts the overdue fine when one applies, all in a single
// transaction.
func (s *Store) CloseLoan(ctx context.Context, loanID, itemID string, returnedAt time.Time, fine *models.Fine) error {
	returnedAV, err := attributevalue.Marshal(returnedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal return timestamp: %w", err)
	}

	transactItems := []types.TransactWriteItem{
		{
			// Operation 1: Close the loan. Fails on double return.
			Update: &types.Update{
				TableName: aws.String(s.LoansTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: loanID},
				},
				UpdateExpression:    aws.String("SET returned_at = :returnedAt REMOVE #open"),
				ConditionExpression: aws.String("attribute_exists(id) AND attribute_not_exists(returned_at)"),
				ExpressionAttributeNames: map[string]string{
					"#open": "open",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":returnedAt": returnedAV,
				},
			},
		},
		{
			// Operation 2: Release the item. The open_loan_id condition ties the
			// release to this specific loan.
			Update: &types.Update{
				TableName: aws.String(s.ItemsTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: itemID},
				},
				UpdateExpression:    aws.String("SET #status = :available, updated_at = :returnedAt REMOVE open_loan_id"),
				ConditionExpression: aws.String("open_loan_id = :loanID"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":available":  &types.AttributeValueMemberS{Value: string(models.ItemAvailable)},
					":returnedAt": returnedAV,
					":loanID":     &types.AttributeValueMemberS{Value: loanID},
				},
			},
		},
	}

	if fine != nil {
		if fine.ID == "" {
			fine.ID = uuid.New().String()
		}
		fine.GSI1PK = models.FinesFeedPK
		fineAV, err := attributevalue.MarshalMap(fine)
		if err != nil {
			return fmt.Errorf("failed to marshal fine: %w", err)
		}
		transactItems = append(transactItems, types.TransactWriteItem{
			// Operation 3: Assess the overdue fine, at most once per loan.
			Put: &types.Put{
				TableName:           aws.String(s.FinesTableName),
				Item:                fineAV,
				ConditionExpression: aws.String("attribute_not_exists(loan_id)"),
			},
		})
	}

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: transactItems})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			switch {
			case conditionalCheckFailed(tce.CancellationReasons, 0):
				return fmt.Errorf("loan %s: %w", loanID, storage.ErrLoanAlreadyClosed)
			case conditionalCheckFailed(tce.CancellationReasons, 1):
				return fmt.Errorf("item %s not held by loan %s: %w", itemID, loanID, storage.ErrConflict)
			case conditionalCheckFailed(tce.CancellationReasons, 2):
				return fmt.Errorf("loan %s: %w", loanID, storage.ErrDuplicateFine)
			}
		}
		return fmt.Errorf("failed to execute return transaction: %w", err)
	}

	return nil
}

// RenewLoan extends the due date from the current due date, conditioned on the
// loan still being open and its renewal count being unchanged since the caller
// read it.
func (s *Store) RenewLoan(ctx context.Context, loanID string, newDueDate time.Time, expectedRenewals int) error {
	dueAV, err := attributevalue.Marshal(newDueDate)
	if err != nil {
		return fmt.Errorf("failed to marshal due date: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.LoansTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: loanID},
		},
		UpdateExpression:    aws.String("SET due_date = :due, renewals = renewals + :inc"),
		ConditionExpression: aws.String("attribute_not_exists(returned_at) AND renewals = :expected"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":due":      dueAV,
			":inc":      &types.AttributeValueMemberN{Value: "1"},
			":expected": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedRenewals)},
		},
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			loan, getErr := s.GetLoan(ctx, loanID)
			if getErr != nil {
				return getErr
			}
			if loan.ReturnedAt != nil {
				return fmt.Errorf("loan %s: %w", loanID, storage.ErrLoanAlreadyClosed)
			}
			return fmt.Errorf("loan %s renewed concurrently: %w", loanID, storage.ErrConflict)
		}
		return fmt.Errorf("failed to renew loan %s: %w", loanID, err)
	}

	return nil
}

// GetLoan retrieves a loan from DynamoDB by its ID.
func (s *Store) GetLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": loanID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal loan ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.LoansTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get loan from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("loan %s: %w", loanID, storage.ErrNotFound)
	}

	var loan models.Loan
	if err := attributevalue.UnmarshalMap(result.Item, &loan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal loan: %w", err)
	}

	return &loan, nil
}

// GetOpenLoanByItem resolves the unique open loan for an item through the
// item's open-loan pointer.
func (s *Store) GetOpenLoanByItem(ctx context.Context, itemID string) (*models.Loan, error) {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.OpenLoanID == nil {
		return nil, fmt.Errorf("item %s has no open loan: %w", itemID, storage.ErrNotFound)
	}

	return s.GetLoan(ctx, *item.OpenLoanID)
}

// ListLoansByMember retrieves all loans for a member.
func (s *Store) ListLoansByMember(ctx context.Context, memberID string) ([]models.Loan, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.LoansTableName),
		IndexName:              aws.String(memberLoansIndex),
		KeyConditionExpression: aws.String("member_id = :memberID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":memberID": &types.AttributeValueMemberS{Value: memberID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans for member %s: %w", memberID, err)
	}

	var loans []models.Loan
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &loans); err != nil {
		return nil, fmt.Errorf("failed to unmarshal loans: %w", err)
	}

	return loans, nil
}

// ListOverdueOpenLoans retrieves loans that are still open and were due before
// the cutoff, via the sparse open-loans index. Closed loans drop out of the
// index when the return transaction removes the open marker.
func (s *Store) ListOverdueOpenLoans(ctx context.Context, before time.Time) ([]models.Loan, error) {
	cutoff, err := before.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.LoansTableName),
		IndexName:              aws.String(openLoansIndex),
		KeyConditionExpression: aws.String("#open = :open AND due_date < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#open": "open",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":open":   &types.AttributeValueMemberS{Value: models.LoanOpenAttr},
			":cutoff": &types.AttributeValueMemberS{Value: string(cutoff)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for overdue loans: %w", err)
	}

	var loans []models.Loan
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &loans); err != nil {
		return nil, fmt.Errorf("failed to unmarshal overdue loans: %w", err)
	}

	return loans, nil
}

package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/Ian12467/library-circulation/pkg/models"
	"github.com/Ian12467/library-circulation/pkg/storage"
)

const (
	memberFinesIndex = "member_id-index"
	finesFeedIndex   = "gsi1pk-assessed_at-index"
)

// CreateFine assesses a fine for a loan. The fines table is keyed by loan id,
// so a loan that already has a fine, from a previous sweep or from the return
// path, is never double-charged.
func (s *Store) CreateFine(ctx context.Context, fine *models.Fine) (*models.Fine, error) {
	if fine.ID == "" {
		fine.ID = uuid.New().String()
	}
	fine.GSI1PK = models.FinesFeedPK

	fineAV, err := attributevalue.MarshalMap(fine)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fine: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.FinesTableName),
		Item:                fineAV,
		ConditionExpression: aws.String("attribute_not_exists(loan_id)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("loan %s: %w", fine.LoanID, storage.ErrDuplicateFine)
		}
		return nil, fmt.Errorf("failed to create fine in DynamoDB: %w", err)
	}

	return fine, nil
}

// GetFineByLoan retrieves the fine referencing a loan.
func (s *Store) GetFineByLoan(ctx context.Context, loanID string) (*models.Fine, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"loan_id": loanID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal loan ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.FinesTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get fine from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("fine for loan %s: %w", loanID, storage.ErrNotFound)
	}

	var fine models.Fine
	if err := attributevalue.UnmarshalMap(result.Item, &fine); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fine: %w", err)
	}

	return &fine, nil
}

// SumPendingFines returns the total pending amount a member owes, in cents.
func (s *Store) SumPendingFines(ctx context.Context, memberID string) (int64, error) {
	fines, err := s.listMemberFines(ctx, memberID, true)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, fine := range fines {
		total += fine.AmountCents
	}
	return total, nil
}

// ListFinesByMember retrieves all fines for a member.
func (s *Store) ListFinesByMember(ctx context.Context, memberID string) ([]models.Fine, error) {
	return s.listMemberFines(ctx, memberID, false)
}

func (s *Store) listMemberFines(ctx context.Context, memberID string, pendingOnly bool) ([]models.Fine, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.FinesTableName),
		IndexName:              aws.String(memberFinesIndex),
		KeyConditionExpression: aws.String("member_id = :memberID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":memberID": &types.AttributeValueMemberS{Value: memberID},
		},
	}
	if pendingOnly {
		input.FilterExpression = aws.String("#status = :pending")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues[":pending"] = &types.AttributeValueMemberS{Value: string(models.FinePending)}
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query fines for member %s: %w", memberID, err)
	}

	var fines []models.Fine
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &fines); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fines: %w", err)
	}

	return fines, nil
}

// ListFines retrieves the most recently assessed fines for reporting.
func (s *Store) ListFines(ctx context.Context, limit int32) ([]models.Fine, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.FinesTableName),
		IndexName:              aws.String(finesFeedIndex),
		KeyConditionExpression: aws.String("gsi1pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: models.FinesFeedPK},
		},
		ScanIndexForward: aws.Bool(false), // Sort by assessment time in descending order
		Limit:            &limit,
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for fines: %w", err)
	}

	var fines []models.Fine
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &fines); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fines: %w", err)
	}

	return fines, nil
}

package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/Ian12467/library-circulation/pkg/models"
	"github.com/Ian12467/library-circulation/pkg/storage"
)

// GetMember retrieves a member's eligibility record. The members table is
// owned by the catalog system; the engine only ever reads it.
func (s *Store) GetMember(ctx context.Context, memberID string) (*models.Member, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": memberID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal member ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.MembersTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get member from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
	}

	var member models.Member
	if err := attributevalue.UnmarshalMap(result.Item, &member); err != nil {
		return nil, fmt.Errorf("failed to unmarshal member: %w", err)
	}

	return &member, nil
}

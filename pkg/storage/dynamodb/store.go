package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/Ian12467/library-circulation/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client the store uses.
// Kept as an interface so tests can mock the client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client                DynamoDBAPI
	ItemsTableName        string
	LoansTableName        string
	FinesTableName        string
	ReservationsTableName string
	MembersTableName      string
}

// New creates a new Store.
func New(client DynamoDBAPI, itemsTable, loansTable, finesTable, reservationsTable, membersTable string) *Store {
	return &Store{
		Client:                client,
		ItemsTableName:        itemsTable,
		LoansTableName:        loansTable,
		FinesTableName:        finesTable,
		ReservationsTableName: reservationsTable,
		MembersTableName:      membersTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

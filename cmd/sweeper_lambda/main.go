package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"

	"github.com/Ian12467/library-circulation/pkg/audit"
	"github.com/Ian12467/library-circulation/pkg/clock"
	"github.com/Ian12467/library-circulation/pkg/config"
	"github.com/Ian12467/library-circulation/pkg/fines"
	"github.com/Ian12467/library-circulation/pkg/notify"
	dydbstore "github.com/Ian12467/library-circulation/pkg/storage/dynamodb"
	"github.com/Ian12467/library-circulation/pkg/sweeper"
)

var sweep *sweeper.Sweeper

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)
	itemsTable := os.Getenv("DYNAMODB_ITEMS_TABLE_NAME")
	loansTable := os.Getenv("DYNAMODB_LOANS_TABLE_NAME")
	finesTable := os.Getenv("DYNAMODB_FINES_TABLE_NAME")
	reservationsTable := os.Getenv("DYNAMODB_RESERVATIONS_TABLE_NAME")
	membersTable := os.Getenv("DYNAMODB_MEMBERS_TABLE_NAME")

	store := dydbstore.New(dbClient, itemsTable, loansTable, finesTable, reservationsTable, membersTable)

	sqsClient := sqs.NewFromConfig(awsCfg)
	var recorder audit.Recorder = audit.NoOpRecorder{}
	if queueURL := os.Getenv("AUDIT_QUEUE_URL"); queueURL != "" {
		recorder = audit.NewSQSRecorder(sqsClient, queueURL)
	}
	var publisher notify.Publisher = &notify.NoOpPublisher{}
	if queueURL := os.Getenv("NOTIFICATIONS_QUEUE_URL"); queueURL != "" {
		publisher = notify.NewSQSPublisher(sqsClient, queueURL)
	}

	cfg := config.Load()
	sweep = sweeper.New(store, fines.NewCalculator(cfg.DailyFineRateCents), clock.System{}, recorder, publisher, cfg.SweepInterval())
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting overdue sweep...")

	assessed, err := sweep.Sweep(ctx)
	if err != nil {
		log.Printf("ERROR: overdue sweep failed: %v", err)
		return err
	}

	log.Printf("Overdue sweep finished, %d fines assessed", assessed)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}

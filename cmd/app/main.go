package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/Ian12467/library-circulation/pkg/audit"
	"github.com/Ian12467/library-circulation/pkg/circulation"
	"github.com/Ian12467/library-circulation/pkg/clock"
	"github.com/Ian12467/library-circulation/pkg/config"
	"github.com/Ian12467/library-circulation/pkg/fines"
	fineshandler "github.com/Ian12467/library-circulation/pkg/handlers/fines"
	"github.com/Ian12467/library-circulation/pkg/handlers/items"
	"github.com/Ian12467/library-circulation/pkg/handlers/loans"
	"github.com/Ian12467/library-circulation/pkg/handlers/reservations"
	"github.com/Ian12467/library-circulation/pkg/middleware"
	"github.com/Ian12467/library-circulation/pkg/notify"
	"github.com/Ian12467/library-circulation/pkg/sweeper"
	dydbstore "github.com/Ian12467/library-circulation/pkg/storage/dynamodb"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

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

	if itemsTable == "" || loansTable == "" || finesTable == "" || reservationsTable == "" || membersTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store := dydbstore.New(dbClient, itemsTable, loansTable, finesTable, reservationsTable, membersTable)

	// Audit and notification sinks are optional; without queue URLs the
	// engine runs with no-op implementations.
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
	calc := fines.NewCalculator(cfg.DailyFineRateCents)
	clk := clock.System{}
	engine := circulation.New(store, calc, clk, recorder, publisher, cfg)

	// Background overdue sweep in-process; deployments that prefer the
	// scheduled lambda can set SWEEP_DISABLED.
	if os.Getenv("SWEEP_DISABLED") == "" {
		sweep := sweeper.New(store, calc, clk, recorder, publisher, cfg.SweepInterval())
		go sweep.Run(context.Background())
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.NewStructuredLogger(logger))
	router.Use(chimiddleware.Recoverer)

	loansHandler := loans.NewLoansHandler(engine, store, cfg)
	itemsHandler := items.NewItemsHandler(engine, store)
	reservationsHandler := reservations.NewReservationsHandler(engine, store)
	finesHandler := fineshandler.NewFinesHandler(store)

	router.Post("/loans", loansHandler.Checkout)
	router.Get("/loans/{loanId}", loansHandler.GetLoan)
	router.Post("/loans/{loanId}/renew", loansHandler.Renew)
	router.Get("/members/{memberId}/loans", loansHandler.ListMemberLoans)
	router.Get("/members/{memberId}/fines", finesHandler.ListMemberFines)
	router.Get("/fines", finesHandler.ListFines)

	router.Post("/items", itemsHandler.RegisterItem)
	router.Get("/items/{itemId}", itemsHandler.GetItem)
	router.Post("/items/{itemId}/return", loansHandler.Return)
	router.Post("/items/{itemId}/lost", itemsHandler.MarkLost)
	router.Post("/items/{itemId}/maintenance", itemsHandler.StartMaintenance)
	router.Post("/items/{itemId}/maintenance/complete", itemsHandler.FinishMaintenance)

	router.Post("/reservations", reservationsHandler.CreateReservation)
	router.Get("/reservations/{reservationId}", reservationsHandler.GetReservation)
	router.Post("/reservations/{reservationId}/fulfill", reservationsHandler.FulfillReservation)
	router.Post("/reservations/{reservationId}/cancel", reservationsHandler.CancelReservation)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/Ian12467/library-circulation/pkg/notify"
)

// HandleRequest drains the notifications queue and delivers each message.
// Delivery here is a structured log line; a real deployment would fan out to
// email or push providers keyed on the message type.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, record := range sqsEvent.Records {
		log.Printf("Processing message %s", record.MessageId)

		var message notify.Message
		if err := json.Unmarshal([]byte(record.Body), &message); err != nil {
			log.Printf("ERROR: failed to unmarshal notification from SQS message %s: %v", record.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		switch message.Type {
		case notify.MessageTypeHoldReady:
			log.Printf("Notifying member %s that a held copy is ready for pickup", message.MemberID)
		case notify.MessageTypeFineAssessed:
			log.Printf("Notifying member %s of a newly assessed fine", message.MemberID)
		default:
			log.Printf("WARN: unknown notification type %q for member %s", message.Type, message.MemberID)
		}
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}

package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSAPI is the subset of the SQS client the recorder needs.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSRecorder ships audit facts to an SQS queue acting as the append-only sink.
type SQSRecorder struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSRecorder creates a new SQSRecorder.
func NewSQSRecorder(client SQSAPI, queueURL string) *SQSRecorder {
	return &SQSRecorder{Client: client, QueueURL: queueURL}
}

// Make sure we conform to the interface
var _ Recorder = (*SQSRecorder)(nil)

// Record sends the fact to the audit queue.
func (r *SQSRecorder) Record(ctx context.Context, fact Fact) error {
	body, err := json.Marshal(fact)
	if err != nil {
		return fmt.Errorf("failed to marshal audit fact: %w", err)
	}

	_, err = r.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(r.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send audit fact to SQS: %w", err)
	}

	return nil
}

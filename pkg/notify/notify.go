package notify

import "context"

// MessageType defines the type of a member notification.
type MessageType string

const (
	// MessageTypeHoldReady tells a member a reserved copy has been set aside.
	MessageTypeHoldReady MessageType = "holdReady"
	// MessageTypeFineAssessed tells a member a fine was charged to their account.
	MessageTypeFineAssessed MessageType = "fineAssessed"
)

// Message represents a generic member notification.
type Message struct {
	Type     MessageType `json:"type"`
	MemberID string      `json:"member_id"`
	Payload  interface{} `json:"payload"`
}

// HoldReadyPayload is the payload for a holdReady message.
type HoldReadyPayload struct {
	ReservationID string `json:"reservation_id"`
	WorkID        string `json:"work_id"`
	ItemID        string `json:"item_id"`
}

// FineAssessedPayload is the payload for a fineAssessed message.
type FineAssessedPayload struct {
	LoanID      string `json:"loan_id"`
	AmountCents int64  `json:"amount_cents"`
	DaysOverdue int    `json:"days_overdue"`
}

// Publisher delivers notifications to members.
type Publisher interface {
	Publish(ctx context.Context, message Message) error
}

// NoOpPublisher is a publisher that does nothing.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, message Message) error {
	return nil
}

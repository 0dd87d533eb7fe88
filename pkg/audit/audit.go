package audit

import (
	"context"
	"time"
)

// Action types emitted by the engine.
const (
	ActionCheckout             = "CHECKOUT"
	ActionReturn               = "RETURN"
	ActionRenewal              = "RENEWAL"
	ActionFineAssessed         = "FINE_ASSESSED"
	ActionStatusTransition     = "STATUS_TRANSITION"
	ActionItemRegistered       = "ITEM_REGISTERED"
	ActionReservationCreated   = "RESERVATION_CREATED"
	ActionReservationFulfilled = "RESERVATION_FULFILLED"
	ActionReservationCancelled = "RESERVATION_CANCELLED"
	ActionReservationExpired   = "RESERVATION_EXPIRED"
)

// Fact is one append-only audit record. Durable storage and formatting of the
// log belong to the consumer on the far side of the sink.
type Fact struct {
	ActionType  string    `json:"action_type"`
	EntityTable string    `json:"entity_table"`
	EntityID    string    `json:"entity_id"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

// Recorder delivers audit facts to an external append-only sink.
type Recorder interface {
	Record(ctx context.Context, fact Fact) error
}

// NoOpRecorder discards facts. Used in tests and when no sink is configured.
type NoOpRecorder struct{}

func (NoOpRecorder) Record(ctx context.Context, fact Fact) error { return nil }

package models

import (
	"time"
)

// ItemStatus defines the lifecycle states of a physical item copy.
type ItemStatus string

const (
	ItemAvailable   ItemStatus = "AVAILABLE"
	ItemLoaned      ItemStatus = "LOANED"
	ItemReserved    ItemStatus = "RESERVED"
	ItemLost        ItemStatus = "LOST"
	ItemMaintenance ItemStatus = "MAINTENANCE"
)

// Item represents one physical copy of a catalog work.
// Status is only ever written through the item registry's transition contract.
type Item struct {
	ID            string     `dynamodbav:"id"`
	WorkID        string     `dynamodbav:"work_id"`
	Barcode       string     `dynamodbav:"barcode"`
	ShelfLocation string     `dynamodbav:"shelf_location"`
	Status        ItemStatus `dynamodbav:"status"`
	Condition     string     `dynamodbav:"condition,omitempty"`
	AcquiredAt    time.Time  `dynamodbav:"acquired_at"`
	OpenLoanID    *string    `dynamodbav:"open_loan_id,omitempty"`
	UpdatedAt     time.Time  `dynamodbav:"updated_at"`
}

// LoanOpenAttr is the sparse-index marker present on a loan while it is open.
// It is removed when the loan closes, dropping the loan out of the overdue index.
const LoanOpenAttr = "OPEN"

// Loan represents one borrowing episode of an item by a member.
type Loan struct {
	ID         string     `dynamodbav:"id"`
	ItemID     string     `dynamodbav:"item_id"`
	MemberID   string     `dynamodbav:"member_id"`
	LoanedAt   time.Time  `dynamodbav:"loaned_at"`
	DueDate    time.Time  `dynamodbav:"due_date"`
	ReturnedAt *time.Time `dynamodbav:"returned_at,omitempty"`
	Renewals   int        `dynamodbav:"renewals"`
	Open       string     `dynamodbav:"open,omitempty"`
}

// FineStatus defines the possible states of a fine.
type FineStatus string

const (
	FinePending FineStatus = "PENDING"
	FinePaid    FineStatus = "PAID"
	FineWaived  FineStatus = "WAIVED"
)

// FineSource records which path assessed the fine.
type FineSource string

const (
	FineSourceReturn FineSource = "RETURN"
	FineSourceSweep  FineSource = "SWEEP"
)

// Fine is a monetary penalty for one loan's overdue return. The fines table is
// keyed by loan id, which is what makes automated assessment idempotent: the
// return path and the overdue sweep can both attempt the insert and at most one
// wins.
type Fine struct {
	LoanID          string     `dynamodbav:"loan_id"`
	ID              string     `dynamodbav:"fine_id"`
	MemberID        string     `dynamodbav:"member_id"`
	AmountCents     int64      `dynamodbav:"amount_cents"`
	DaysOverdue     int        `dynamodbav:"days_overdue"`
	AssessedAt      time.Time  `dynamodbav:"assessed_at"`
	Status          FineStatus `dynamodbav:"status"`
	Source          FineSource `dynamodbav:"source"`
	PaidAt          *time.Time `dynamodbav:"paid_at,omitempty"`
	PaidAmountCents *int64     `dynamodbav:"paid_amount_cents,omitempty"`
	GSI1PK          string     `dynamodbav:"gsi1pk"`
}

// FinesFeedPK is the partition value for the reporting feed index over fines.
const FinesFeedPK = "FINES"

// ReservationStatus defines the states of a reservation. Transitions are
// monotone forward except Pending -> Cancelled; Fulfilled, Cancelled and
// Expired are terminal.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationFulfilled ReservationStatus = "FULFILLED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationExpired   ReservationStatus = "EXPIRED"
)

// ReservationPendingAttr marks a pending reservation for the sparse expiry index.
const ReservationPendingAttr = "PENDING"

// Reservation is a member's standing request for any copy of a work.
// ItemID is set when fulfillment claims a specific copy.
type Reservation struct {
	ID          string            `dynamodbav:"id"`
	WorkID      string            `dynamodbav:"work_id"`
	MemberID    string            `dynamodbav:"member_id"`
	RequestedAt time.Time         `dynamodbav:"requested_at"`
	ExpiresAt   time.Time         `dynamodbav:"expires_at"`
	Status      ReservationStatus `dynamodbav:"status"`
	ItemID      *string           `dynamodbav:"item_id,omitempty"`
	Pending     string            `dynamodbav:"pending,omitempty"`
}

// MemberStatus defines membership eligibility states.
type MemberStatus string

const (
	MemberActive    MemberStatus = "ACTIVE"
	MemberSuspended MemberStatus = "SUSPENDED"
	MemberExpired   MemberStatus = "EXPIRED"
)

// Member is the read-only view of a member the engine needs for eligibility.
// The member store belongs to the catalog system; the engine never writes it.
type Member struct {
	ID     string       `dynamodbav:"id"`
	Name   string       `dynamodbav:"name"`
	Status MemberStatus `dynamodbav:"status"`
}

// Package api defines the request and response types of the HTTP surface.
package api

import "time"

// NewLoan is the request body for checking an item out to a member.
// LoanDays falls back to the configured default loan period when omitted.
type NewLoan struct {
	ItemID   string `json:"item_id"`
	MemberID string `json:"member_id"`
	LoanDays int    `json:"loan_days,omitempty"`
}

// Loan is one borrowing episode of an item.
type Loan struct {
	ID         string     `json:"id"`
	ItemID     string     `json:"item_id"`
	MemberID   string     `json:"member_id"`
	LoanedAt   time.Time  `json:"loaned_at"`
	DueDate    time.Time  `json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	Renewals   int        `json:"renewals"`
}

// ReturnSummary reports the outcome of a return.
type ReturnSummary struct {
	LoanID          string    `json:"loan_id"`
	ItemID          string    `json:"item_id"`
	ReturnedAt      time.Time `json:"returned_at"`
	FineAssessed    bool      `json:"fine_assessed"`
	FineAmountCents int64     `json:"fine_amount_cents"`
}

// RenewLoan is the request body for renewing a loan. AdditionalDays falls back
// to the configured default loan period when omitted.
type RenewLoan struct {
	AdditionalDays int `json:"additional_days,omitempty"`
}

// NewReservation is the request body for reserving a work.
type NewReservation struct {
	WorkID   string `json:"work_id"`
	MemberID string `json:"member_id"`
}

// Reservation is a member's standing request for any copy of a work.
type Reservation struct {
	ID          string    `json:"id"`
	WorkID      string    `json:"work_id"`
	MemberID    string    `json:"member_id"`
	RequestedAt time.Time `json:"requested_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Status      string    `json:"status"`
	ItemID      *string   `json:"item_id,omitempty"`
}

// NewItem is the request body for registering a newly acquired copy.
type NewItem struct {
	WorkID        string `json:"work_id"`
	Barcode       string `json:"barcode"`
	ShelfLocation string `json:"shelf_location,omitempty"`
	Condition     string `json:"condition,omitempty"`
}

// Item is one physical copy of a catalog work.
type Item struct {
	ID            string    `json:"id"`
	WorkID        string    `json:"work_id"`
	Barcode       string    `json:"barcode"`
	ShelfLocation string    `json:"shelf_location,omitempty"`
	Status        string    `json:"status"`
	Condition     string    `json:"condition,omitempty"`
	AcquiredAt    time.Time `json:"acquired_at"`
}

// Fine is a monetary penalty for an overdue loan.
type Fine struct {
	ID          string     `json:"id"`
	LoanID      string     `json:"loan_id"`
	MemberID    string     `json:"member_id"`
	AmountCents int64      `json:"amount_cents"`
	DaysOverdue int        `json:"days_overdue"`
	AssessedAt  time.Time  `json:"assessed_at"`
	Status      string     `json:"status"`
	Source      string     `json:"source"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

// Error is the uniform error response body.
type Error struct {
	Message string `json:"message"`
}

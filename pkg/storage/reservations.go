package storage

import (
	"context"
	"time"

	"github.com/Ian12467/library-circulation/pkg/models"
)

// ReservationStore owns reservation status transitions. It only ever mutates
// item state through the same conditional-write discipline as the registry.
type ReservationStore interface {
	// CreateReservation inserts a new pending reservation.
	CreateReservation(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error)

	// GetReservation retrieves a reservation by its ID.
	GetReservation(ctx context.Context, reservationID string) (*models.Reservation, error)

	// FindPendingByWork retrieves the oldest pending reservation for a work,
	// or ErrNotFound when there is none.
	FindPendingByWork(ctx context.Context, workID string) (*models.Reservation, error)

	// ClaimReservation atomically fulfills the reservation and claims the item:
	// reservation Pending -> Fulfilled and item Available -> Reserved in one
	// transaction. Returns ErrReservationNotPending when the reservation moved
	// on, ErrConflict when the item was claimed concurrently.
	ClaimReservation(ctx context.Context, reservationID, itemID string) error

	// CancelReservation moves a pending reservation to Cancelled.
	// Returns ErrReservationNotPending when it is no longer pending.
	CancelReservation(ctx context.Context, reservationID string) error
}

// ReservationExpirer defines the sweep-side interface for expiring
// reservations that were never fulfilled.
type ReservationExpirer interface {
	// ListExpiredPending retrieves pending reservations whose expiry date is
	// before the cutoff.
	ListExpiredPending(ctx context.Context, before time.Time) ([]models.Reservation, error)

	// ExpireReservation moves a pending reservation to Expired.
	// Returns ErrReservationNotPending when it is no longer pending.
	ExpireReservation(ctx context.Context, reservationID string) error
}

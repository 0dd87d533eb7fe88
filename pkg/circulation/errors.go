package circulation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates the caller supplied a malformed or empty identifier.
	ErrInvalidInput = errors.New("invalid input")

	// ErrItemUnavailable indicates the item is not in a state that permits the operation.
	ErrItemUnavailable = errors.New("item is not available")

	// ErrMemberInactive indicates the member's registration is suspended or expired.
	ErrMemberInactive = errors.New("member is not active")

	// ErrNoActiveLoan indicates no open loan exists for the item or loan in question.
	ErrNoActiveLoan = errors.New("no active loan")

	// ErrRenewalLimitReached indicates the loan has exhausted its renewals.
	ErrRenewalLimitReached = errors.New("renewal limit reached")

	// ErrNoItemAvailable indicates no lendable copy exists for the requested work.
	ErrNoItemAvailable = errors.New("no item available for work")

	// ErrReservationNotPending indicates the reservation has already been
	// fulfilled, cancelled, or expired.
	ErrReservationNotPending = errors.New("reservation is not pending")
)

// OutstandingFinesError blocks checkout while the member owes pending fines.
type OutstandingFinesError struct {
	AmountCents int64
}

func (e *OutstandingFinesError) Error() string {
	return fmt.Sprintf("member has outstanding fines totaling %d cents", e.AmountCents)
}

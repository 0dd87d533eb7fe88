package storage

import "errors"

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a conditional state transition loses a race:
// the entity's current state no longer matches what the caller expected.
var ErrConflict = errors.New("state transition conflict")

// ErrDuplicateFine is returned when a fine already references the loan.
// The fines table is keyed by loan id, so the automated paths can never
// double-charge a loan.
var ErrDuplicateFine = errors.New("fine already assessed for loan")

// ErrLoanAlreadyClosed is returned when closing or renewing a loan that has a
// return timestamp set.
var ErrLoanAlreadyClosed = errors.New("loan already closed")

// ErrReservationNotPending is returned when a reservation transition requires
// the reservation to still be pending and it is not.
var ErrReservationNotPending = errors.New("reservation is not pending")

package storage

import (
	"context"

	"github.com/Ian12467/library-circulation/pkg/models"
)

// FineWriter defines the interface for assessing fines.
type FineWriter interface {
	// CreateFine inserts a fine for a loan. At most one automated fine can
	// exist per loan; a second insert fails with ErrDuplicateFine.
	CreateFine(ctx context.Context, fine *models.Fine) (*models.Fine, error)
}

// FineReader defines the interface for reading fine data.
type FineReader interface {
	// GetFineByLoan retrieves the fine referencing a loan, or ErrNotFound.
	GetFineByLoan(ctx context.Context, loanID string) (*models.Fine, error)

	// SumPendingFines returns the total pending amount, in cents, a member owes.
	SumPendingFines(ctx context.Context, memberID string) (int64, error)

	// ListFinesByMember retrieves all fines for a member.
	ListFinesByMember(ctx context.Context, memberID string) ([]models.Fine, error)

	// ListFines retrieves the most recently assessed fines, for reporting.
	ListFines(ctx context.Context, limit int32) ([]models.Fine, error)
}

// FineStore combines the writer and reader interfaces.
type FineStore interface {
	FineWriter
	FineReader
}

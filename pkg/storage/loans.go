package storage

import (
	"context"
	"time"

	"github.com/Ian12467/library-circulation/pkg/models"
)

// LoanReader defines the interface for reading loan data.
type LoanReader interface {
	// GetLoan retrieves a loan by its ID.
	GetLoan(ctx context.Context, loanID string) (*models.Loan, error)

	// GetOpenLoanByItem retrieves the unique open loan for an item, or
	// ErrNotFound when the item has none.
	GetOpenLoanByItem(ctx context.Context, itemID string) (*models.Loan, error)

	// ListLoansByMember retrieves all loans for a member.
	ListLoansByMember(ctx context.Context, memberID string) ([]models.Loan, error)

	// ListOverdueOpenLoans retrieves loans that are still open and were due
	// strictly before the cutoff. Candidates for the overdue sweep.
	ListOverdueOpenLoans(ctx context.Context, before time.Time) ([]models.Loan, error)
}

// LoanManager defines the privileged interface for mutating loans. Every
// mutation here is atomic with the matching item-state change.
type LoanManager interface {
	// OpenLoan inserts the loan and binds it to the item as its single open
	// loan, conditioned on the item being Loaned with no open loan yet.
	// Returns ErrConflict when the item already carries an open loan.
	OpenLoan(ctx context.Context, loan *models.Loan) (*models.Loan, error)

	// CloseLoan sets the loan's return timestamp, releases the item back to
	// Available, and, when fine is non-nil, inserts the fine in the same
	// transaction. Returns ErrLoanAlreadyClosed on double return and
	// ErrDuplicateFine when the loan has already been fined.
	CloseLoan(ctx context.Context, loanID, itemID string, returnedAt time.Time, fine *models.Fine) error

	// RenewLoan extends the due date, conditioned on the loan being open and
	// its renewal count still being expectedRenewals. Returns ErrConflict on a
	// lost race, ErrLoanAlreadyClosed when the loan was returned meanwhile.
	RenewLoan(ctx context.Context, loanID string, newDueDate time.Time, expectedRenewals int) error
}

// LoanStore combines the reader and manager interfaces.
type LoanStore interface {
	LoanReader
	LoanManager
}

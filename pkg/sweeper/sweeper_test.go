package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ian12467/library-circulation/pkg/audit"
	"github.com/Ian12467/library-circulation/pkg/clock"
	"github.com/Ian12467/library-circulation/pkg/fines"
	"github.com/Ian12467/library-circulation/pkg/models"
	"github.com/Ian12467/library-circulation/pkg/notify"
	"github.com/Ian12467/library-circulation/pkg/storage"
	"github.com/Ian12467/library-circulation/pkg/storage/mocks"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestSweeper(store *mocks.SweepStore) *Sweeper {
	return New(store, fines.NewCalculator(50), clock.Fixed{T: testNow}, audit.NoOpRecorder{}, &notify.NoOpPublisher{}, 24*time.Hour)
}

func overdueLoan(id string, daysLate int) models.Loan {
	return models.Loan{
		ID:       id,
		ItemID:   "item-" + id,
		MemberID: "member-1",
		DueDate:  testNow.AddDate(0, 0, -daysLate),
		Open:     models.LoanOpenAttr,
	}
}

func expectNoExpiredReservations(store *mocks.SweepStore) {
	store.On("ListExpiredPending", mock.Anything, testNow).Return([]models.Reservation{}, nil)
}

func TestSweep_AssessesFinesOnOverdueLoans(t *testing.T) {
	store := mocks.NewSweepStore(t)
	sweeper := newTestSweeper(store)

	store.On("ListOverdueOpenLoans", mock.Anything, fines.StartOfDay(testNow)).
		Return([]models.Loan{overdueLoan("loan-1", 3), overdueLoan("loan-2", 10)}, nil)
	store.On("CreateFine", mock.Anything, mock.MatchedBy(func(fine *models.Fine) bool {
		return fine.LoanID == "loan-1" && fine.AmountCents == 150 && fine.DaysOverdue == 3 && fine.Source == models.FineSourceSweep
	})).Return(func(ctx context.Context, fine *models.Fine) (*models.Fine, error) { return fine, nil })
	store.On("CreateFine", mock.Anything, mock.MatchedBy(func(fine *models.Fine) bool {
		return fine.LoanID == "loan-2" && fine.AmountCents == 500 && fine.DaysOverdue == 10
	})).Return(func(ctx context.Context, fine *models.Fine) (*models.Fine, error) { return fine, nil })
	expectNoExpiredReservations(store)

	assessed, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, assessed)
}

func TestSweep_SkipsLoansAlreadyFined(t *testing.T) {
	store := mocks.NewSweepStore(t)
	sweeper := newTestSweeper(store)

	store.On("ListOverdueOpenLoans", mock.Anything, fines.StartOfDay(testNow)).
		Return([]models.Loan{overdueLoan("loan-1", 3), overdueLoan("loan-2", 4)}, nil)
	store.On("CreateFine", mock.Anything, mock.MatchedBy(func(fine *models.Fine) bool {
		return fine.LoanID == "loan-1"
	})).Return(nil, storage.ErrDuplicateFine)
	store.On("CreateFine", mock.Anything, mock.MatchedBy(func(fine *models.Fine) bool {
		return fine.LoanID == "loan-2"
	})).Return(func(ctx context.Context, fine *models.Fine) (*models.Fine, error) { return fine, nil })
	expectNoExpiredReservations(store)

	assessed, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, assessed)
}

func TestSweep_ContinuesPastStorageErrors(t *testing.T) {
	store := mocks.NewSweepStore(t)
	sweeper := newTestSweeper(store)

	store.On("ListOverdueOpenLoans", mock.Anything, fines.StartOfDay(testNow)).
		Return([]models.Loan{overdueLoan("loan-1", 3), overdueLoan("loan-2", 4)}, nil)
	store.On("CreateFine", mock.Anything, mock.MatchedBy(func(fine *models.Fine) bool {
		return fine.LoanID == "loan-1"
	})).Return(nil, errors.New("throttled"))
	store.On("CreateFine", mock.Anything, mock.MatchedBy(func(fine *models.Fine) bool {
		return fine.LoanID == "loan-2"
	})).Return(func(ctx context.Context, fine *models.Fine) (*models.Fine, error) { return fine, nil })
	expectNoExpiredReservations(store)

	assessed, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, assessed)
}

func TestSweep_StopsOnCancelledContext(t *testing.T) {
	store := mocks.NewSweepStore(t)
	sweeper := newTestSweeper(store)

	ctx, cancel := context.WithCancel(context.Background())
	store.On("ListOverdueOpenLoans", mock.Anything, fines.StartOfDay(testNow)).
		Return(func(ctx context.Context, before time.Time) ([]models.Loan, error) {
			cancel()
			return []models.Loan{overdueLoan("loan-1", 3)}, nil
		})

	assessed, err := sweeper.Sweep(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, assessed)
	store.AssertNotCalled(t, "CreateFine", mock.Anything, mock.Anything)
}

func TestSweep_ExpiresLapsedReservations(t *testing.T) {
	store := mocks.NewSweepStore(t)
	sweeper := newTestSweeper(store)

	store.On("ListOverdueOpenLoans", mock.Anything, fines.StartOfDay(testNow)).Return([]models.Loan{}, nil)
	store.On("ListExpiredPending", mock.Anything, testNow).Return([]models.Reservation{
		{ID: "res-1", MemberID: "member-1", ExpiresAt: testNow.AddDate(0, 0, -1), Status: models.ReservationPending},
		{ID: "res-2", MemberID: "member-2", ExpiresAt: testNow.AddDate(0, 0, -2), Status: models.ReservationPending},
	}, nil)
	store.On("ExpireReservation", mock.Anything, "res-1").Return(nil)
	// res-2 was fulfilled between the listing and the expiry write.
	store.On("ExpireReservation", mock.Anything, "res-2").Return(storage.ErrReservationNotPending)

	_, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
}

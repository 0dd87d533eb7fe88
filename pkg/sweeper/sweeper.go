package sweeper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ian12467/library-circulation/pkg/audit"
	"github.com/Ian12467/library-circulation/pkg/clock"
	"github.com/Ian12467/library-circulation/pkg/fines"
	"github.com/Ian12467/library-circulation/pkg/models"
	"github.com/Ian12467/library-circulation/pkg/notify"
	"github.com/Ian12467/library-circulation/pkg/storage"
)

// Sweeper periodically assesses fines on overdue open loans and expires stale
// reservations. Fines are keyed by loan id in storage, so re-running a sweep
// over the same loans is harmless: the second insert loses and is skipped.
type Sweeper struct {
	store     storage.SweepStore
	calc      fines.Calculator
	clock     clock.Clock
	recorder  audit.Recorder
	publisher notify.Publisher
	interval  time.Duration
}

// New constructs a Sweeper that runs every interval.
func New(store storage.SweepStore, calc fines.Calculator, clk clock.Clock, recorder audit.Recorder, publisher notify.Publisher, interval time.Duration) *Sweeper {
	return &Sweeper{
		store:     store,
		calc:      calc,
		clock:     clk,
		recorder:  recorder,
		publisher: publisher,
		interval:  interval,
	}
}

// Run executes a sweep immediately and then on every interval tick until the
// context is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		assessed, err := s.Sweep(ctx)
		if err != nil {
			slog.Error("overdue sweep failed", "error", err)
		} else {
			slog.Info("overdue sweep complete", "fines_assessed", assessed)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Sweep assesses a fine for every open loan whose due date is before today
// (UTC), then expires pending reservations whose hold window has lapsed. It
// returns the number of fines assessed. A loan that already carries a fine,
// from the return path or a previous sweep, is skipped.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	now := s.clock.Now()
	cutoff := fines.StartOfDay(now)

	loans, err := s.store.ListOverdueOpenLoans(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list overdue loans: %w", err)
	}

	assessed := 0
	for i := range loans {
		if err := ctx.Err(); err != nil {
			return assessed, err
		}
		loan := &loans[i]

		days := fines.DaysOverdue(now, loan.DueDate)
		if days <= 0 {
			continue
		}

		fine := &models.Fine{
			LoanID:      loan.ID,
			MemberID:    loan.MemberID,
			AmountCents: s.calc.Amount(days),
			DaysOverdue: days,
			AssessedAt:  now,
			Status:      models.FinePending,
			Source:      models.FineSourceSweep,
		}
		fine, err := s.store.CreateFine(ctx, fine)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateFine) {
				continue
			}
			slog.Error("failed to assess fine", "loan_id", loan.ID, "error", err)
			continue
		}
		assessed++

		s.publish(ctx, notify.Message{
			Type:     notify.MessageTypeFineAssessed,
			MemberID: loan.MemberID,
			Payload: notify.FineAssessedPayload{
				LoanID:      loan.ID,
				AmountCents: fine.AmountCents,
				DaysOverdue: fine.DaysOverdue,
			},
		})
		s.record(ctx, audit.ActionFineAssessed, "fines", loan.ID,
			fmt.Sprintf("fine of %d cents assessed by sweep, %d days overdue", fine.AmountCents, fine.DaysOverdue))
	}

	if err := s.expireReservations(ctx, now); err != nil {
		return assessed, err
	}
	return assessed, nil
}

// expireReservations closes out pending reservations whose hold window ended
// before now. One that was fulfilled or cancelled since the listing is skipped.
func (s *Sweeper) expireReservations(ctx context.Context, now time.Time) error {
	reservations, err := s.store.ListExpiredPending(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to list expired reservations: %w", err)
	}

	for i := range reservations {
		if err := ctx.Err(); err != nil {
			return err
		}
		reservation := &reservations[i]

		err := s.store.ExpireReservation(ctx, reservation.ID)
		if err != nil {
			if errors.Is(err, storage.ErrReservationNotPending) {
				continue
			}
			slog.Error("failed to expire reservation", "reservation_id", reservation.ID, "error", err)
			continue
		}
		s.record(ctx, audit.ActionReservationExpired, "reservations", reservation.ID,
			fmt.Sprintf("hold for member %s expired at %s", reservation.MemberID, reservation.ExpiresAt.Format(time.RFC3339)))
	}
	return nil
}

func (s *Sweeper) record(ctx context.Context, action, table, entityID, description string) {
	fact := audit.Fact{
		ActionType:  action,
		EntityTable: table,
		EntityID:    entityID,
		Timestamp:   s.clock.Now(),
		Description: description,
	}
	if err := s.recorder.Record(ctx, fact); err != nil {
		slog.Error("CRITICAL: failed to record audit fact", "action", action, "entity_id", entityID, "error", err)
	}
}

func (s *Sweeper) publish(ctx context.Context, message notify.Message) {
	if err := s.publisher.Publish(ctx, message); err != nil {
		slog.Error("CRITICAL: failed to publish notification", "type", message.Type, "member_id", message.MemberID, "error", err)
	}
}

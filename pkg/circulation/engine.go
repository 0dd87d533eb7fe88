package circulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ian12467/library-circulation/pkg/audit"
	"github.com/Ian12467/library-circulation/pkg/clock"
	"github.com/Ian12467/library-circulation/pkg/config"
	"github.com/Ian12467/library-circulation/pkg/fines"
	"github.com/Ian12467/library-circulation/pkg/models"
	"github.com/Ian12467/library-circulation/pkg/notify"
	"github.com/Ian12467/library-circulation/pkg/storage"
)

// transitionRetries bounds optimistic retries when a concurrent writer moves
// the same loan or item between our read and our conditional write.
const transitionRetries = 3

// Engine implements the circulation workflows: checkout, return, renewal,
// reservations and item lifecycle changes. All state lives in storage; the
// engine composes conditional writes so that concurrent requests for the same
// item resolve to exactly one winner.
type Engine struct {
	store     storage.ApiStore
	calc      fines.Calculator
	clock     clock.Clock
	recorder  audit.Recorder
	publisher notify.Publisher
	cfg       config.Config
}

// New constructs an Engine on top of the given store.
func New(store storage.ApiStore, calc fines.Calculator, clk clock.Clock, recorder audit.Recorder, publisher notify.Publisher, cfg config.Config) *Engine {
	return &Engine{
		store:     store,
		calc:      calc,
		clock:     clk,
		recorder:  recorder,
		publisher: publisher,
		cfg:       cfg,
	}
}

// ReturnSummary reports the outcome of a return, including any fine assessed
// while closing the loan.
type ReturnSummary struct {
	LoanID          string
	ItemID          string
	ReturnedAt      time.Time
	FineAssessed    bool
	FineAmountCents int64
}

// Checkout lends an item to a member. The item is claimed first via a
// conditional status transition, so two concurrent checkouts of the same copy
// cannot both succeed; eligibility failures after the claim roll the item back
// to available.
func (e *Engine) Checkout(ctx context.Context, itemID, memberID string, loanDays int) (*models.Loan, error) {
	if itemID == "" || memberID == "" {
		return nil, fmt.Errorf("item id and member id are required: %w", ErrInvalidInput)
	}
	if loanDays <= 0 {
		return nil, fmt.Errorf("loan days must be positive: %w", ErrInvalidInput)
	}

	err := e.store.TryTransition(ctx, itemID, []models.ItemStatus{models.ItemAvailable}, models.ItemLoaned)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("item %s: %w", itemID, ErrItemUnavailable)
		}
		return nil, err
	}

	loan, err := e.openLoanFor(ctx, itemID, memberID, loanDays)
	if err != nil {
		e.rollbackClaim(ctx, itemID)
		return nil, err
	}

	e.record(ctx, audit.ActionCheckout, "loans", loan.ID,
		fmt.Sprintf("item %s loaned to member %s until %s", itemID, memberID, loan.DueDate.Format(time.RFC3339)))
	return loan, nil
}

// openLoanFor runs the post-claim half of a checkout: member eligibility,
// outstanding fines, then the loan insert.
func (e *Engine) openLoanFor(ctx context.Context, itemID, memberID string, loanDays int) (*models.Loan, error) {
	member, err := e.store.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member.Status != models.MemberActive {
		return nil, fmt.Errorf("member %s is %s: %w", memberID, member.Status, ErrMemberInactive)
	}

	owed, err := e.store.SumPendingFines(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if owed > 0 {
		return nil, &OutstandingFinesError{AmountCents: owed}
	}

	now := e.clock.Now()
	loan := &models.Loan{
		ItemID:   itemID,
		MemberID: memberID,
		LoanedAt: now,
		DueDate:  now.AddDate(0, 0, loanDays),
		Open:     models.LoanOpenAttr,
	}
	return e.store.OpenLoan(ctx, loan)
}

// rollbackClaim returns a freshly claimed item to available after a checkout
// failed downstream of the claim. The item is stranded in LOANED with no loan
// record if this fails, so the failure is logged loudly.
func (e *Engine) rollbackClaim(ctx context.Context, itemID string) {
	err := e.store.TryTransition(ctx, itemID, []models.ItemStatus{models.ItemLoaned}, models.ItemAvailable)
	if err != nil {
		slog.Error("CRITICAL: failed to roll back item claim after aborted checkout", "item_id", itemID, "error", err)
	}
}

// Return closes the open loan on an item, assessing a fine when the return is
// past due. A fine already assessed by the overdue sweep is reported rather
// than duplicated. After the loan closes, the copy is offered to the oldest
// pending reservation for its work.
func (e *Engine) Return(ctx context.Context, itemID string) (*ReturnSummary, error) {
	if itemID == "" {
		return nil, fmt.Errorf("item id is required: %w", ErrInvalidInput)
	}

	loan, err := e.store.GetOpenLoanByItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("item %s: %w", itemID, ErrNoActiveLoan)
		}
		return nil, err
	}

	now := e.clock.Now()
	days := fines.DaysOverdue(now, loan.DueDate)

	var fine *models.Fine
	if days > 0 {
		fine = &models.Fine{
			LoanID:      loan.ID,
			MemberID:    loan.MemberID,
			AmountCents: e.calc.Amount(days),
			DaysOverdue: days,
			AssessedAt:  now,
			Status:      models.FinePending,
			Source:      models.FineSourceReturn,
		}
	}

	err = e.store.CloseLoan(ctx, loan.ID, itemID, now, fine)
	if errors.Is(err, storage.ErrDuplicateFine) {
		// The sweep assessed this loan's fine already. Close without one and
		// report the existing fine in the summary.
		if err = e.store.CloseLoan(ctx, loan.ID, itemID, now, nil); err == nil {
			fine, err = e.store.GetFineByLoan(ctx, loan.ID)
		}
	}
	if err != nil {
		if errors.Is(err, storage.ErrLoanAlreadyClosed) {
			return nil, fmt.Errorf("loan %s: %w", loan.ID, ErrNoActiveLoan)
		}
		return nil, err
	}

	summary := &ReturnSummary{
		LoanID:     loan.ID,
		ItemID:     itemID,
		ReturnedAt: now,
	}
	if fine != nil {
		summary.FineAssessed = true
		summary.FineAmountCents = fine.AmountCents
		if fine.Source == models.FineSourceReturn {
			e.publish(ctx, notify.Message{
				Type:     notify.MessageTypeFineAssessed,
				MemberID: loan.MemberID,
				Payload: notify.FineAssessedPayload{
					LoanID:      loan.ID,
					AmountCents: fine.AmountCents,
					DaysOverdue: fine.DaysOverdue,
				},
			})
			e.record(ctx, audit.ActionFineAssessed, "fines", loan.ID,
				fmt.Sprintf("fine of %d cents assessed on return, %d days overdue", fine.AmountCents, fine.DaysOverdue))
		}
	}

	e.record(ctx, audit.ActionReturn, "loans", loan.ID,
		fmt.Sprintf("item %s returned by member %s", itemID, loan.MemberID))

	e.handOff(ctx, itemID)
	return summary, nil
}

// handOff offers a just-returned copy to the oldest pending reservation for
// its work. Best effort: a lost race with another returned copy or a canceled
// reservation leaves the item available, which is the correct fallback.
func (e *Engine) handOff(ctx context.Context, itemID string) {
	item, err := e.store.GetItem(ctx, itemID)
	if err != nil {
		slog.Warn("failed to load item for reservation hand-off", "item_id", itemID, "error", err)
		return
	}

	reservation, err := e.store.FindPendingByWork(ctx, item.WorkID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Warn("failed to look up pending reservations", "work_id", item.WorkID, "error", err)
		}
		return
	}

	err = e.store.ClaimReservation(ctx, reservation.ID, itemID)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) || errors.Is(err, storage.ErrReservationNotPending) {
			return
		}
		slog.Warn("failed to claim reservation during hand-off", "reservation_id", reservation.ID, "error", err)
		return
	}

	e.publish(ctx, notify.Message{
		Type:     notify.MessageTypeHoldReady,
		MemberID: reservation.MemberID,
		Payload: notify.HoldReadyPayload{
			ReservationID: reservation.ID,
			WorkID:        item.WorkID,
			ItemID:        itemID,
		},
	})
	e.record(ctx, audit.ActionReservationFulfilled, "reservations", reservation.ID,
		fmt.Sprintf("item %s held for member %s", itemID, reservation.MemberID))
}

// Renew extends an open loan's due date by additionalDays. The underlying
// update is conditioned on the renewal count read here, so two concurrent
// renewals cannot both extend; the loser re-reads and retries against the
// renewal limit.
func (e *Engine) Renew(ctx context.Context, loanID string, additionalDays int) (*models.Loan, error) {
	if loanID == "" {
		return nil, fmt.Errorf("loan id is required: %w", ErrInvalidInput)
	}
	if additionalDays <= 0 {
		return nil, fmt.Errorf("additional days must be positive: %w", ErrInvalidInput)
	}

	for attempt := 0; attempt < transitionRetries; attempt++ {
		loan, err := e.store.GetLoan(ctx, loanID)
		if err != nil {
			return nil, err
		}
		if loan.ReturnedAt != nil {
			return nil, fmt.Errorf("loan %s: %w", loanID, ErrNoActiveLoan)
		}
		if loan.Renewals >= e.cfg.MaxRenewals {
			return nil, fmt.Errorf("loan %s has %d renewals: %w", loanID, loan.Renewals, ErrRenewalLimitReached)
		}

		newDue := loan.DueDate.AddDate(0, 0, additionalDays)
		err = e.store.RenewLoan(ctx, loanID, newDue, loan.Renewals)
		if err == nil {
			loan.DueDate = newDue
			loan.Renewals++
			e.record(ctx, audit.ActionRenewal, "loans", loanID,
				fmt.Sprintf("due date extended to %s, renewal %d of %d", newDue.Format(time.RFC3339), loan.Renewals, e.cfg.MaxRenewals))
			return loan, nil
		}
		if errors.Is(err, storage.ErrLoanAlreadyClosed) {
			return nil, fmt.Errorf("loan %s: %w", loanID, ErrNoActiveLoan)
		}
		if !errors.Is(err, storage.ErrConflict) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("loan %s kept changing under renewal: %w", loanID, storage.ErrConflict)
}

// Reserve creates a pending reservation for any copy of a work.
func (e *Engine) Reserve(ctx context.Context, workID, memberID string) (*models.Reservation, error) {
	if workID == "" || memberID == "" {
		return nil, fmt.Errorf("work id and member id are required: %w", ErrInvalidInput)
	}

	member, err := e.store.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member.Status != models.MemberActive {
		return nil, fmt.Errorf("member %s is %s: %w", memberID, member.Status, ErrMemberInactive)
	}

	now := e.clock.Now()
	reservation := &models.Reservation{
		WorkID:      workID,
		MemberID:    memberID,
		RequestedAt: now,
		ExpiresAt:   now.AddDate(0, 0, e.cfg.ReservationHoldDays),
		Status:      models.ReservationPending,
		Pending:     models.ReservationPendingAttr,
	}
	reservation, err = e.store.CreateReservation(ctx, reservation)
	if err != nil {
		return nil, err
	}

	e.record(ctx, audit.ActionReservationCreated, "reservations", reservation.ID,
		fmt.Sprintf("member %s reserved work %s", memberID, workID))
	return reservation, nil
}

// FulfillReservation attaches an available copy of the reserved work to a
// pending reservation. Candidate copies are tried in id order; a copy claimed
// concurrently by another request is skipped.
func (e *Engine) FulfillReservation(ctx context.Context, reservationID string) (*models.Reservation, error) {
	if reservationID == "" {
		return nil, fmt.Errorf("reservation id is required: %w", ErrInvalidInput)
	}

	reservation, err := e.store.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status != models.ReservationPending {
		return nil, fmt.Errorf("reservation %s is %s: %w", reservationID, reservation.Status, ErrReservationNotPending)
	}

	items, err := e.store.ListItemsByWork(ctx, reservation.WorkID)
	if err != nil {
		return nil, err
	}

	for i := range items {
		item := &items[i]
		if item.Status != models.ItemAvailable {
			continue
		}
		err = e.store.ClaimReservation(ctx, reservationID, item.ID)
		if errors.Is(err, storage.ErrConflict) {
			continue // copy claimed out from under us, try the next one
		}
		if errors.Is(err, storage.ErrReservationNotPending) {
			return nil, fmt.Errorf("reservation %s: %w", reservationID, ErrReservationNotPending)
		}
		if err != nil {
			return nil, err
		}

		reservation.Status = models.ReservationFulfilled
		reservation.ItemID = &item.ID
		reservation.Pending = ""

		e.publish(ctx, notify.Message{
			Type:     notify.MessageTypeHoldReady,
			MemberID: reservation.MemberID,
			Payload: notify.HoldReadyPayload{
				ReservationID: reservationID,
				WorkID:        reservation.WorkID,
				ItemID:        item.ID,
			},
		})
		e.record(ctx, audit.ActionReservationFulfilled, "reservations", reservationID,
			fmt.Sprintf("item %s held for member %s", item.ID, reservation.MemberID))
		return reservation, nil
	}

	return nil, fmt.Errorf("work %s: %w", reservation.WorkID, ErrNoItemAvailable)
}

// CancelReservation cancels a pending reservation.
func (e *Engine) CancelReservation(ctx context.Context, reservationID string) error {
	if reservationID == "" {
		return fmt.Errorf("reservation id is required: %w", ErrInvalidInput)
	}

	err := e.store.CancelReservation(ctx, reservationID)
	if err != nil {
		if errors.Is(err, storage.ErrReservationNotPending) {
			return fmt.Errorf("reservation %s: %w", reservationID, ErrReservationNotPending)
		}
		return err
	}

	e.record(ctx, audit.ActionReservationCancelled, "reservations", reservationID, "reservation cancelled by member")
	return nil
}

// RegisterItem adds a newly acquired copy to the registry as available.
func (e *Engine) RegisterItem(ctx context.Context, workID, barcode, shelfLocation, condition string) (*models.Item, error) {
	if workID == "" || barcode == "" {
		return nil, fmt.Errorf("work id and barcode are required: %w", ErrInvalidInput)
	}

	now := e.clock.Now()
	item := &models.Item{
		ID:            uuid.New().String(),
		WorkID:        workID,
		Barcode:       barcode,
		ShelfLocation: shelfLocation,
		Condition:     condition,
		Status:        models.ItemAvailable,
		AcquiredAt:    now,
		UpdatedAt:     now,
	}
	item, err := e.store.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}

	e.record(ctx, audit.ActionItemRegistered, "items", item.ID,
		fmt.Sprintf("copy of work %s registered with barcode %s", workID, barcode))
	return item, nil
}

// MarkLost records that a copy can no longer be produced. An item on loan can
// be reported lost; the loan stays open until the member settles it through a
// return, so lost does not clear open_loan_id.
func (e *Engine) MarkLost(ctx context.Context, itemID string) error {
	from := []models.ItemStatus{models.ItemAvailable, models.ItemLoaned, models.ItemReserved}
	return e.transitionItem(ctx, itemID, from, models.ItemLost)
}

// StartMaintenance pulls an available copy from circulation for repair.
func (e *Engine) StartMaintenance(ctx context.Context, itemID string) error {
	return e.transitionItem(ctx, itemID, []models.ItemStatus{models.ItemAvailable}, models.ItemMaintenance)
}

// FinishMaintenance returns a repaired copy to circulation.
func (e *Engine) FinishMaintenance(ctx context.Context, itemID string) error {
	return e.transitionItem(ctx, itemID, []models.ItemStatus{models.ItemMaintenance}, models.ItemAvailable)
}

func (e *Engine) transitionItem(ctx context.Context, itemID string, from []models.ItemStatus, to models.ItemStatus) error {
	if itemID == "" {
		return fmt.Errorf("item id is required: %w", ErrInvalidInput)
	}

	err := e.store.TryTransition(ctx, itemID, from, to)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return fmt.Errorf("item %s cannot move to %s: %w", itemID, to, ErrItemUnavailable)
		}
		return err
	}

	e.record(ctx, audit.ActionStatusTransition, "items", itemID,
		fmt.Sprintf("item moved to %s", to))
	return nil
}

// record delivers an audit fact without failing the enclosing operation.
func (e *Engine) record(ctx context.Context, action, table, entityID, description string) {
	fact := audit.Fact{
		ActionType:  action,
		EntityTable: table,
		EntityID:    entityID,
		Timestamp:   e.clock.Now(),
		Description: description,
	}
	if err := e.recorder.Record(ctx, fact); err != nil {
		slog.Error("CRITICAL: failed to record audit fact", "action", action, "entity_id", entityID, "error", err)
	}
}

// publish delivers a member notification without failing the enclosing operation.
func (e *Engine) publish(ctx context.Context, message notify.Message) {
	if err := e.publisher.Publish(ctx, message); err != nil {
		slog.Error("CRITICAL: failed to publish notification", "type", message.Type, "member_id", message.MemberID, "error", err)
	}
}

// Package mapping converts between domain models and API types.
package mapping

import (
	"github.com/Ian12467/library-circulation/pkg/api"
	"github.com/Ian12467/library-circulation/pkg/circulation"
	"github.com/Ian12467/library-circulation/pkg/models"
)

// ToApiLoan converts a domain Loan to an API Loan.
func ToApiLoan(loan *models.Loan) *api.Loan {
	return &api.Loan{
		ID:         loan.ID,
		ItemID:     loan.ItemID,
		MemberID:   loan.MemberID,
		LoanedAt:   loan.LoanedAt,
		DueDate:    loan.DueDate,
		ReturnedAt: loan.ReturnedAt,
		Renewals:   loan.Renewals,
	}
}

// ToApiReturnSummary converts an engine ReturnSummary to its API type.
func ToApiReturnSummary(summary *circulation.ReturnSummary) *api.ReturnSummary {
	return &api.ReturnSummary{
		LoanID:          summary.LoanID,
		ItemID:          summary.ItemID,
		ReturnedAt:      summary.ReturnedAt,
		FineAssessed:    summary.FineAssessed,
		FineAmountCents: summary.FineAmountCents,
	}
}

// ToApiReservation converts a domain Reservation to an API Reservation.
func ToApiReservation(reservation *models.Reservation) *api.Reservation {
	return &api.Reservation{
		ID:          reservation.ID,
		WorkID:      reservation.WorkID,
		MemberID:    reservation.MemberID,
		RequestedAt: reservation.RequestedAt,
		ExpiresAt:   reservation.ExpiresAt,
		Status:      string(reservation.Status),
		ItemID:      reservation.ItemID,
	}
}

// ToApiItem converts a domain Item to an API Item.
func ToApiItem(item *models.Item) *api.Item {
	return &api.Item{
		ID:            item.ID,
		WorkID:        item.WorkID,
		Barcode:       item.Barcode,
		ShelfLocation: item.ShelfLocation,
		Status:        string(item.Status),
		Condition:     item.Condition,
		AcquiredAt:    item.AcquiredAt,
	}
}

// ToApiFine converts a domain Fine to an API Fine.
func ToApiFine(fine *models.Fine) *api.Fine {
	return &api.Fine{
		ID:          fine.ID,
		LoanID:      fine.LoanID,
		MemberID:    fine.MemberID,
		AmountCents: fine.AmountCents,
		DaysOverdue: fine.DaysOverdue,
		AssessedAt:  fine.AssessedAt,
		Status:      string(fine.Status),
		Source:      string(fine.Source),
		PaidAt:      fine.PaidAt,
	}
}

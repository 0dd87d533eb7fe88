// Package loans serves the checkout, return and renewal endpoints.
package loans

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ian12467/library-circulation/pkg/api"
	"github.com/Ian12467/library-circulation/pkg/circulation"
	"github.com/Ian12467/library-circulation/pkg/config"
	"github.com/Ian12467/library-circulation/pkg/handlers"
	"github.com/Ian12467/library-circulation/pkg/mapping"
	"github.com/Ian12467/library-circulation/pkg/storage"
)

// LoansHandler holds the dependencies for loan-related handlers.
type LoansHandler struct {
	Engine *circulation.Engine
	Store  storage.LoanReader
	Cfg    config.Config
}

// NewLoansHandler creates a new LoansHandler.
func NewLoansHandler(engine *circulation.Engine, store storage.LoanReader, cfg config.Config) *LoansHandler {
	return &LoansHandler{Engine: engine, Store: store, Cfg: cfg}
}

// Checkout lends an item to a member.
func (h *LoansHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var newLoan api.NewLoan
	if err := json.NewDecoder(r.Body).Decode(&newLoan); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	loanDays := newLoan.LoanDays
	if loanDays == 0 {
		loanDays = h.Cfg.DefaultLoanDays
	}

	loan, err := h.Engine.Checkout(r.Context(), newLoan.ItemID, newLoan.MemberID, loanDays)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, mapping.ToApiLoan(loan))
}

// Return closes the open loan on an item.
func (h *LoansHandler) Return(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	summary, err := h.Engine.Return(r.Context(), itemID)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, mapping.ToApiReturnSummary(summary))
}

// Renew extends a loan's due date.
func (h *LoansHandler) Renew(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "loanId")

	var req api.RenewLoan
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	additionalDays := req.AdditionalDays
	if additionalDays == 0 {
		additionalDays = h.Cfg.DefaultLoanDays
	}

	loan, err := h.Engine.Renew(r.Context(), loanID, additionalDays)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, mapping.ToApiLoan(loan))
}

// GetLoan retrieves a loan by its ID.
func (h *LoansHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "loanId")

	loan, err := h.Store.GetLoan(r.Context(), loanID)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, mapping.ToApiLoan(loan))
}

// ListMemberLoans retrieves a member's loan history.
func (h *LoansHandler) ListMemberLoans(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberId")

	loans, err := h.Store.ListLoansByMember(r.Context(), memberID)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	apiLoans := make([]*api.Loan, len(loans))
	for i := range loans {
		apiLoans[i] = mapping.ToApiLoan(&loans[i])
	}
	handlers.WriteJSON(w, http.StatusOK, apiLoans)
}

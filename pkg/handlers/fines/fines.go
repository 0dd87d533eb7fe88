// Package fines serves the fine reporting endpoints.
package fines

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Ian12467/library-circulation/pkg/api"
	"github.com/Ian12467/library-circulation/pkg/handlers"
	"github.com/Ian12467/library-circulation/pkg/mapping"
	"github.com/Ian12467/library-circulation/pkg/models"
	"github.com/Ian12467/library-circulation/pkg/storage"
)

// FinesHandler holds the dependencies for fine-related handlers.
type FinesHandler struct {
	Store storage.FineReader
}

// NewFinesHandler creates a new FinesHandler.
func NewFinesHandler(store storage.FineReader) *FinesHandler {
	return &FinesHandler{Store: store}
}

// ListMemberFines retrieves all fines assessed against a member.
func (h *FinesHandler) ListMemberFines(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberId")

	fines, err := h.Store.ListFinesByMember(r.Context(), memberID)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, toApiFines(fines))
}

// ListFines retrieves the most recently assessed fines.
func (h *FinesHandler) ListFines(w http.ResponseWriter, r *http.Request) {
	limit := int32(20)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = int32(parsed)
	}

	fines, err := h.Store.ListFines(r.Context(), limit)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, toApiFines(fines))
}

func toApiFines(fines []models.Fine) []*api.Fine {
	apiFines := make([]*api.Fine, len(fines))
	for i := range fines {
		apiFines[i] = mapping.ToApiFine(&fines[i])
	}
	return apiFines
}

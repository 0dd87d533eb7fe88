// Package handlers holds helpers shared by the per-resource HTTP handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Ian12467/library-circulation/pkg/api"
	"github.com/Ian12467/library-circulation/pkg/circulation"
	"github.com/Ian12467/library-circulation/pkg/storage"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// WriteError maps an engine or storage error to an HTTP status and writes the
// uniform error body. Unrecognized errors become a 500 with a generic message
// so internals do not leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	var finesErr *circulation.OutstandingFinesError
	switch {
	case errors.Is(err, circulation.ErrInvalidInput):
		writeErrorBody(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, circulation.ErrItemUnavailable),
		errors.Is(err, circulation.ErrRenewalLimitReached),
		errors.Is(err, circulation.ErrNoItemAvailable),
		errors.Is(err, circulation.ErrReservationNotPending),
		errors.Is(err, storage.ErrConflict):
		writeErrorBody(w, http.StatusConflict, err.Error())
	case errors.Is(err, circulation.ErrMemberInactive):
		writeErrorBody(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &finesErr):
		writeErrorBody(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("checkout blocked: member owes %d cents in pending fines", finesErr.AmountCents))
	case errors.Is(err, circulation.ErrNoActiveLoan), errors.Is(err, storage.ErrNotFound):
		writeErrorBody(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("request failed", "error", err)
		writeErrorBody(w, http.StatusInternalServerError, "internal error")
	}
}

func writeErrorBody(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, api.Error{Message: message})
}

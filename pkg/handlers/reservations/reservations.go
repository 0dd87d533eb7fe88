// Package reservations serves the reservation endpoints.
package reservations

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ian12467/library-circulation/pkg/api"
	"github.com/Ian12467/library-circulation/pkg/circulation"
	"github.com/Ian12467/library-circulation/pkg/handlers"
	"github.com/Ian12467/library-circulation/pkg/mapping"
	"github.com/Ian12467/library-circulation/pkg/storage"
)

// ReservationsHandler holds the dependencies for reservation-related handlers.
type ReservationsHandler struct {
	Engine *circulation.Engine
	Store  storage.ReservationStore
}

// NewReservationsHandler creates a new ReservationsHandler.
func NewReservationsHandler(engine *circulation.Engine, store storage.ReservationStore) *ReservationsHandler {
	return &ReservationsHandler{Engine: engine, Store: store}
}

// CreateReservation places a hold on any copy of a work.
func (h *ReservationsHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var newReservation api.NewReservation
	if err := json.NewDecoder(r.Body).Decode(&newReservation); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	reservation, err := h.Engine.Reserve(r.Context(), newReservation.WorkID, newReservation.MemberID)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, mapping.ToApiReservation(reservation))
}

// GetReservation retrieves a reservation by its ID.
func (h *ReservationsHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "reservationId")

	reservation, err := h.Store.GetReservation(r.Context(), reservationID)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, mapping.ToApiReservation(reservation))
}

// FulfillReservation attaches an available copy to a pending reservation.
func (h *ReservationsHandler) FulfillReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "reservationId")

	reservation, err := h.Engine.FulfillReservation(r.Context(), reservationID)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, mapping.ToApiReservation(reservation))
}

// CancelReservation cancels a pending reservation.
func (h *ReservationsHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "reservationId")

	if err := h.Engine.CancelReservation(r.Context(), reservationID); err != nil {
		handlers.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Package items serves the item registry endpoints.
package items

import (
	"context"
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

// ItemsHandler holds the dependencies for item-related handlers.
type ItemsHandler struct {
	Engine *circulation.Engine
	Store  storage.ItemRegistry
}

// NewItemsHandler creates a new ItemsHandler.
func NewItemsHandler(engine *circulation.Engine, store storage.ItemRegistry) *ItemsHandler {
	return &ItemsHandler{Engine: engine, Store: store}
}

// RegisterItem adds a newly acquired copy to the registry.
func (h *ItemsHandler) RegisterItem(w http.ResponseWriter, r *http.Request) {
	var newItem api.NewItem
	if err := json.NewDecoder(r.Body).Decode(&newItem); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	item, err := h.Engine.RegisterItem(r.Context(), newItem.WorkID, newItem.Barcode, newItem.ShelfLocation, newItem.Condition)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, mapping.ToApiItem(item))
}

// GetItem retrieves an item by its ID.
func (h *ItemsHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	item, err := h.Store.GetItem(r.Context(), itemID)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, mapping.ToApiItem(item))
}

// MarkLost records that a copy can no longer be produced.
func (h *ItemsHandler) MarkLost(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Engine.MarkLost)
}

// StartMaintenance pulls an available copy from circulation.
func (h *ItemsHandler) StartMaintenance(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Engine.StartMaintenance)
}

// FinishMaintenance returns a repaired copy to circulation.
func (h *ItemsHandler) FinishMaintenance(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Engine.FinishMaintenance)
}

func (h *ItemsHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, itemID string) error) {
	itemID := chi.URLParam(r, "itemId")

	if err := op(r.Context(), itemID); err != nil {
		handlers.WriteError(w, err)
		return
	}

	item, err := h.Store.GetItem(r.Context(), itemID)
	if err != nil {
		handlers.WriteError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, mapping.ToApiItem(item))
}

package items

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ian12467/library-circulation/pkg/api"
	"github.com/Ian12467/library-circulation/pkg/audit"
	"github.com/Ian12467/library-circulation/pkg/circulation"
	"github.com/Ian12467/library-circulation/pkg/clock"
	"github.com/Ian12467/library-circulation/pkg/config"
	"github.com/Ian12467/library-circulation/pkg/fines"
	"github.com/Ian12467/library-circulation/pkg/models"
	"github.com/Ian12467/library-circulation/pkg/notify"
	"github.com/Ian12467/library-circulation/pkg/storage"
	storage_mocks "github.com/Ian12467/library-circulation/pkg/storage/mocks"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestRouter(store *storage_mocks.ApiStore) *chi.Mux {
	cfg := config.Config{DailyFineRateCents: 50, MaxRenewals: 2, DefaultLoanDays: 14, ReservationHoldDays: 3}
	engine := circulation.New(store, fines.NewCalculator(cfg.DailyFineRateCents), clock.Fixed{T: testNow}, audit.NoOpRecorder{}, &notify.NoOpPublisher{}, cfg)
	handler := NewItemsHandler(engine, store)

	router := chi.NewRouter()
	router.Post("/items", handler.RegisterItem)
	router.Get("/items/{itemId}", handler.GetItem)
	router.Post("/items/{itemId}/lost", handler.MarkLost)
	router.Post("/items/{itemId}/maintenance", handler.StartMaintenance)
	router.Post("/items/{itemId}/maintenance/complete", handler.FinishMaintenance)
	return router
}

func TestRegisterItem_Success(t *testing.T) {
	store := new(storage_mocks.ApiStore)
	router := newTestRouter(store)

	store.On("CreateItem", mock.Anything, mock.AnythingOfType("*models.Item")).
		Return(func(ctx context.Context, item *models.Item) (*models.Item, error) {
			return item, nil
		})

	body, _ := json.Marshal(api.NewItem{WorkID: "work-1", Barcode: "B-0001", ShelfLocation: "A3"})
	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var item api.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &item))
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, string(models.ItemAvailable), item.Status)
}

func TestRegisterItem_MissingBarcode(t *testing.T) {
	store := new(storage_mocks.ApiStore)
	router := newTestRouter(store)

	body, _ := json.Marshal(api.NewItem{WorkID: "work-1"})
	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetItem_NotFound(t *testing.T) {
	store := new(storage_mocks.ApiStore)
	router := newTestRouter(store)

	store.On("GetItem", mock.Anything, "item-1").Return(nil, storage.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/items/item-1", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMarkLost_Success(t *testing.T) {
	store := new(storage_mocks.ApiStore)
	router := newTestRouter(store)

	store.On("TryTransition", mock.Anything, "item-1",
		[]models.ItemStatus{models.ItemAvailable, models.ItemLoaned, models.ItemReserved}, models.ItemLost).Return(nil)
	store.On("GetItem", mock.Anything, "item-1").
		Return(&models.Item{ID: "item-1", WorkID: "work-1", Status: models.ItemLost}, nil)

	req := httptest.NewRequest(http.MethodPost, "/items/item-1/lost", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var item api.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &item))
	assert.Equal(t, string(models.ItemLost), item.Status)
}

func TestStartMaintenance_ItemOnLoan(t *testing.T) {
	store := new(storage_mocks.ApiStore)
	router := newTestRouter(store)

	store.On("TryTransition", mock.Anything, "item-1",
		[]models.ItemStatus{models.ItemAvailable}, models.ItemMaintenance).Return(storage.ErrConflict)

	req := httptest.NewRequest(http.MethodPost, "/items/item-1/maintenance", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

package fines

import (
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
	"github.com/Ian12467/library-circulation/pkg/models"
	storage_mocks "github.com/Ian12467/library-circulation/pkg/storage/mocks"
)

func newTestRouter(store *storage_mocks.ApiStore) *chi.Mux {
	handler := NewFinesHandler(store)

	router := chi.NewRouter()
	router.Get("/fines", handler.ListFines)
	router.Get("/members/{memberId}/fines", handler.ListMemberFines)
	return router
}

func TestListMemberFines(t *testing.T) {
	store := new(storage_mocks.ApiStore)
	router := newTestRouter(store)

	assessedAt := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	store.On("ListFinesByMember", mock.Anything, "member-1").Return([]models.Fine{
		{ID: "fine-1", LoanID: "loan-1", MemberID: "member-1", AmountCents: 150, DaysOverdue: 3, AssessedAt: assessedAt, Status: models.FinePending, Source: models.FineSourceSweep},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/members/member-1/fines", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var fines []*api.Fine
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fines))
	require.Len(t, fines, 1)
	assert.Equal(t, int64(150), fines[0].AmountCents)
	assert.Equal(t, string(models.FineSourceSweep), fines[0].Source)
}

func TestListFines_DefaultLimit(t *testing.T) {
	store := new(storage_mocks.ApiStore)
	router := newTestRouter(store)

	store.On("ListFines", mock.Anything, int32(20)).Return([]models.Fine{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/fines", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	store.AssertExpectations(t)
}

func TestListFines_CustomLimit(t *testing.T) {
	store := new(storage_mocks.ApiStore)
	router := newTestRouter(store)

	store.On("ListFines", mock.Anything, int32(5)).Return([]models.Fine{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/fines?limit=5", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	store.AssertExpectations(t)
}

func TestListFines_InvalidLimit(t *testing.T) {
	store := new(storage_mocks.ApiStore)
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/fines?limit=zero", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	financeapp "github.com/pos/backend/internal/application/finance"
	"github.com/pos/backend/internal/domain/finance"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockBusinessDayRepository struct {
	days map[uuid.UUID]*finance.BusinessDay
}

func newMockBusinessDayRepository() *mockBusinessDayRepository {
	return &mockBusinessDayRepository{days: make(map[uuid.UUID]*finance.BusinessDay)}
}

func (m *mockBusinessDayRepository) FindByID(_ context.Context, id uuid.UUID) (*finance.BusinessDay, error) {
	if day, ok := m.days[id]; ok {
		return day, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockBusinessDayRepository) FindByStoreAndDate(_ context.Context, storeID uuid.UUID, date time.Time) (*finance.BusinessDay, error) {
	y, mo, d := date.Date()
	for _, day := range m.days {
		dy, dmo, dd := day.Date.Date()
		if day.StoreID == storeID && y == dy && mo == dmo && d == dd {
			return day, nil
		}
	}
	return nil, nil
}

func (m *mockBusinessDayRepository) Save(_ context.Context, day *finance.BusinessDay) error {
	m.days[day.ID] = day
	return nil
}

type businessDayFixture struct {
	router  *gin.Engine
	days    *mockBusinessDayRepository
	storeID uuid.UUID
}

func newBusinessDayFixture(t *testing.T) *businessDayFixture {
	t.Helper()

	days := newMockBusinessDayRepository()
	stores := newMockStoreRepository()

	store, err := inventory.NewStore("Main Store", "MAIN")
	require.NoError(t, err)
	require.NoError(t, stores.Save(context.Background(), store))

	service := financeapp.NewBusinessDayService(days, stores, zap.NewNop())
	h := NewBusinessDayHandler(service)

	router := gin.New()
	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	return &businessDayFixture{
		router:  router,
		days:    days,
		storeID: store.ID,
	}
}

func (f *businessDayFixture) openDay(t *testing.T, date string) uuid.UUID {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"store_id": f.storeID.String(),
		"date":     date,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/finance/business-days", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	id, err := uuid.Parse(data["id"].(string))
	require.NoError(t, err)
	return id
}

func TestBusinessDayOpen(t *testing.T) {
	f := newBusinessDayFixture(t)

	dayID := f.openDay(t, "2026-09-01")

	day, ok := f.days.days[dayID]
	require.True(t, ok)
	assert.True(t, day.IsOpen())
	assert.False(t, day.Locked)
}

func TestBusinessDayOpenTwiceConflicts(t *testing.T) {
	f := newBusinessDayFixture(t)
	f.openDay(t, "2026-09-01")

	body, _ := json.Marshal(map[string]string{
		"store_id": f.storeID.String(),
		"date":     "2026-09-01",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/finance/business-days", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
}

func TestBusinessDayOpenUnknownStore(t *testing.T) {
	f := newBusinessDayFixture(t)

	body, _ := json.Marshal(map[string]string{
		"store_id": uuid.NewString(),
		"date":     "2026-09-01",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/finance/business-days", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBusinessDayOpenBadDate(t *testing.T) {
	f := newBusinessDayFixture(t)

	body, _ := json.Marshal(map[string]string{
		"store_id": f.storeID.String(),
		"date":     "09/01/2026",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/finance/business-days", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBusinessDayCloseAndLock(t *testing.T) {
	f := newBusinessDayFixture(t)
	dayID := f.openDay(t, "2026-09-01")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/finance/business-days/"+dayID.String()+"/close", nil)
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, false, data["open"])

	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/v1/finance/business-days/"+dayID.String()+"/lock", nil)
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp.Data.(map[string]any)
	assert.Equal(t, true, data["locked"])
}

func TestBusinessDayCloseUnknownID(t *testing.T) {
	f := newBusinessDayFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/finance/business-days/"+uuid.NewString()+"/close", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBusinessDayGet(t *testing.T) {
	f := newBusinessDayFixture(t)
	f.openDay(t, "2026-09-01")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/finance/business-days?store_id="+f.storeID.String()+"&date=2026-09-01", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, true, data["open"])
}

func TestBusinessDayGetMissing(t *testing.T) {
	f := newBusinessDayFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/finance/business-days?store_id="+f.storeID.String()+"&date=2026-09-02", nil)
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

package finance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/finance"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockBusinessDayRepository is a mock implementation of finance.BusinessDayRepository
type MockBusinessDayRepository struct {
	mock.Mock
}

func (m *MockBusinessDayRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.BusinessDay, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.BusinessDay), args.Error(1)
}

func (m *MockBusinessDayRepository) FindByStoreAndDate(ctx context.Context, storeID uuid.UUID, date time.Time) (*finance.BusinessDay, error) {
	args := m.Called(ctx, storeID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.BusinessDay), args.Error(1)
}

func (m *MockBusinessDayRepository) Save(ctx context.Context, day *finance.BusinessDay) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}

// MockStoreRepository is a mock implementation of inventory.StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Store), args.Error(1)
}

func (m *MockStoreRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Store, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Store), args.Error(1)
}

func (m *MockStoreRepository) Save(ctx context.Context, store *inventory.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func newBusinessDayFixture(t *testing.T) (*BusinessDayService, *MockBusinessDayRepository, *inventory.Store) {
	t.Helper()
	store, err := inventory.NewStore("Downtown", "DT-01")
	require.NoError(t, err)

	dayRepo := new(MockBusinessDayRepository)
	storeRepo := new(MockStoreRepository)
	storeRepo.On("FindByID", mock.Anything, store.ID).Return(store, nil)

	return NewBusinessDayService(dayRepo, storeRepo, zap.NewNop()), dayRepo, store
}

func TestOpenBusinessDay(t *testing.T) {
	service, dayRepo, store := newBusinessDayFixture(t)
	date := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)

	dayRepo.On("FindByStoreAndDate", mock.Anything, store.ID, date).Return(nil, shared.ErrNotFound)
	dayRepo.On("Save", mock.Anything, mock.AnythingOfType("*finance.BusinessDay")).Return(nil)

	resp, err := service.Open(context.Background(), OpenBusinessDayRequest{StoreID: store.ID, Date: date})

	require.NoError(t, err)
	assert.True(t, resp.Open)
	// The date is stored truncated to midnight.
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), resp.Date)
}

func TestOpenBusinessDay_AlreadyExists(t *testing.T) {
	service, dayRepo, store := newBusinessDayFixture(t)
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	existing, err := finance.OpenBusinessDay(store.ID, date)
	require.NoError(t, err)
	dayRepo.On("FindByStoreAndDate", mock.Anything, store.ID, date).Return(existing, nil)

	_, err = service.Open(context.Background(), OpenBusinessDayRequest{StoreID: store.ID, Date: date})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "DAY_ALREADY_OPEN", domainErr.Code)
	dayRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCloseBusinessDay(t *testing.T) {
	service, dayRepo, store := newBusinessDayFixture(t)
	day, err := finance.OpenBusinessDay(store.ID, time.Now())
	require.NoError(t, err)

	dayRepo.On("FindByID", mock.Anything, day.ID).Return(day, nil)
	dayRepo.On("Save", mock.Anything, day).Return(nil)

	resp, err := service.Close(context.Background(), day.ID)

	require.NoError(t, err)
	assert.False(t, resp.Open)
	assert.NotNil(t, resp.ClosedAt)
}

func TestCloseBusinessDay_Twice(t *testing.T) {
	service, dayRepo, store := newBusinessDayFixture(t)
	day, err := finance.OpenBusinessDay(store.ID, time.Now())
	require.NoError(t, err)
	require.NoError(t, day.Close())

	dayRepo.On("FindByID", mock.Anything, day.ID).Return(day, nil)

	_, err = service.Close(context.Background(), day.ID)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestLockBusinessDay(t *testing.T) {
	service, dayRepo, store := newBusinessDayFixture(t)
	day, err := finance.OpenBusinessDay(store.ID, time.Now())
	require.NoError(t, err)

	dayRepo.On("FindByID", mock.Anything, day.ID).Return(day, nil)
	dayRepo.On("Save", mock.Anything, day).Return(nil)

	resp, err := service.Lock(context.Background(), day.ID)

	require.NoError(t, err)
	assert.True(t, resp.Locked)
	assert.False(t, resp.Open)
}

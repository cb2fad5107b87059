package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockStockRepository is a mock implementation of inventory.StockRepository
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Stock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) FindByItemAndStore(ctx context.Context, itemID, storeID uuid.UUID) (*inventory.Stock, error) {
	args := m.Called(ctx, itemID, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) FindByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]inventory.Stock, error) {
	args := m.Called(ctx, storeID, filter)
	return args.Get(0).([]inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) Save(ctx context.Context, stock *inventory.Stock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockStockRepository) GetOrCreate(ctx context.Context, itemID, storeID uuid.UUID) (*inventory.Stock, error) {
	args := m.Called(ctx, itemID, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Stock), args.Error(1)
}

// MockItemStockRepository is a mock implementation of inventory.ItemStockRepository
type MockItemStockRepository struct {
	mock.Mock
}

func (m *MockItemStockRepository) FindByStockID(ctx context.Context, stockID uuid.UUID) (*inventory.ItemStock, error) {
	args := m.Called(ctx, stockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.ItemStock), args.Error(1)
}

func (m *MockItemStockRepository) FindLevel(ctx context.Context, itemID, storeID uuid.UUID) (*inventory.StockLevel, error) {
	args := m.Called(ctx, itemID, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockLevel), args.Error(1)
}

func (m *MockItemStockRepository) FindLevelsByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]inventory.StockLevel, error) {
	args := m.Called(ctx, storeID, filter)
	return args.Get(0).([]inventory.StockLevel), args.Error(1)
}

func (m *MockItemStockRepository) FindBelowMinimum(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]inventory.StockLevel, error) {
	args := m.Called(ctx, storeID, filter)
	return args.Get(0).([]inventory.StockLevel), args.Error(1)
}

func (m *MockItemStockRepository) Save(ctx context.Context, itemStock *inventory.ItemStock) error {
	args := m.Called(ctx, itemStock)
	return args.Error(0)
}

func (m *MockItemStockRepository) DecrementQuantity(ctx context.Context, stockID uuid.UUID, quantity decimal.Decimal) (bool, error) {
	args := m.Called(ctx, stockID, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemStockRepository) IncrementQuantity(ctx context.Context, stockID uuid.UUID, quantity decimal.Decimal) error {
	args := m.Called(ctx, stockID, quantity)
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

func newStockServiceFixture(t *testing.T) (*StockService, *MockStockRepository, *MockItemStockRepository, *inventory.Store) {
	t.Helper()
	store, err := inventory.NewStore("Downtown", "DT-01")
	require.NoError(t, err)

	stockRepo := new(MockStockRepository)
	itemStockRepo := new(MockItemStockRepository)
	storeRepo := new(MockStoreRepository)
	storeRepo.On("FindByID", mock.Anything, store.ID).Return(store, nil)

	service := NewStockService(stockRepo, itemStockRepo, storeRepo, zap.NewNop())
	return service, stockRepo, itemStockRepo, store
}

func TestGetAvailability_ReportsLevel(t *testing.T) {
	service, stockRepo, itemStockRepo, store := newStockServiceFixture(t)

	itemID := uuid.New()
	stock, err := inventory.NewStock(itemID, store.ID)
	require.NoError(t, err)
	require.NoError(t, stock.SetThresholds(decimal.NewFromInt(5), decimal.NewFromInt(50)))

	level := &inventory.StockLevel{
		StockID:       stock.ID,
		ItemID:        itemID,
		StoreID:       store.ID,
		StockQuantity: decimal.NewFromInt(3),
		MinQuantity:   decimal.NewFromInt(5),
		MaxQuantity:   decimal.NewFromInt(50),
	}
	itemStockRepo.On("FindLevel", mock.Anything, itemID, store.ID).Return(level, nil)
	stockRepo.On("FindByID", mock.Anything, stock.ID).Return(stock, nil)

	resp, err := service.GetAvailability(context.Background(), itemID, store.ID)

	require.NoError(t, err)
	assert.True(t, resp.StockQuantity.Equal(decimal.NewFromInt(3)))
	assert.True(t, resp.BelowMinimum)
}

func TestGetAvailability_UnstockedItemReadsZero(t *testing.T) {
	service, _, itemStockRepo, store := newStockServiceFixture(t)

	itemID := uuid.New()
	itemStockRepo.On("FindLevel", mock.Anything, itemID, store.ID).Return(nil, nil)

	resp, err := service.GetAvailability(context.Background(), itemID, store.ID)

	require.NoError(t, err)
	assert.True(t, resp.StockQuantity.IsZero())
	assert.False(t, resp.BelowMinimum)
}

func TestSetThresholds_CreatesRowOnFirstUse(t *testing.T) {
	service, stockRepo, itemStockRepo, store := newStockServiceFixture(t)

	itemID := uuid.New()
	stock, err := inventory.NewStock(itemID, store.ID)
	require.NoError(t, err)

	stockRepo.On("GetOrCreate", mock.Anything, itemID, store.ID).Return(stock, nil)
	stockRepo.On("Save", mock.Anything, stock).Return(nil)
	itemStockRepo.On("FindLevel", mock.Anything, itemID, store.ID).Return(nil, nil)

	resp, err := service.SetThresholds(context.Background(), SetThresholdsRequest{
		ItemID:      itemID,
		StoreID:     store.ID,
		MinQuantity: decimal.NewFromInt(5),
		MaxQuantity: decimal.NewFromInt(50),
	})

	require.NoError(t, err)
	assert.True(t, resp.MinQuantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, stock.MinQuantity.Equal(decimal.NewFromInt(5)))
	stockRepo.AssertCalled(t, "Save", mock.Anything, stock)
}

func TestSetThresholds_MinAboveMaxRejected(t *testing.T) {
	service, stockRepo, _, store := newStockServiceFixture(t)

	itemID := uuid.New()
	stock, err := inventory.NewStock(itemID, store.ID)
	require.NoError(t, err)
	stockRepo.On("GetOrCreate", mock.Anything, itemID, store.ID).Return(stock, nil)

	_, err = service.SetThresholds(context.Background(), SetThresholdsRequest{
		ItemID:      itemID,
		StoreID:     store.ID,
		MinQuantity: decimal.NewFromInt(60),
		MaxQuantity: decimal.NewFromInt(50),
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
	stockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestListBelowMinimum(t *testing.T) {
	service, _, itemStockRepo, store := newStockServiceFixture(t)

	levels := []inventory.StockLevel{
		{StockID: uuid.New(), ItemID: uuid.New(), StoreID: store.ID, StockQuantity: decimal.NewFromInt(2), MinQuantity: decimal.NewFromInt(5)},
	}
	itemStockRepo.On("FindBelowMinimum", mock.Anything, store.ID, mock.Anything).Return(levels, nil)

	resp, err := service.ListBelowMinimum(context.Background(), StockListFilter{StoreID: store.ID})

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.True(t, resp[0].StockQuantity.Equal(decimal.NewFromInt(2)))
}

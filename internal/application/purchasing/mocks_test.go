package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/finance"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/purchasing"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockPurchaseOrderRepository is a mock implementation of purchasing.PurchaseOrderRepository
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchasing.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*purchasing.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchasing.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*purchasing.PurchaseOrder, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchasing.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]purchasing.PurchaseOrder, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]purchasing.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Create(ctx context.Context, order *purchasing.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Save(ctx context.Context, order *purchasing.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status purchasing.PurchaseOrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockGoodReceiptNoteRepository is a mock implementation of purchasing.GoodReceiptNoteRepository
type MockGoodReceiptNoteRepository struct {
	mock.Mock
}

func (m *MockGoodReceiptNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.GoodReceiptNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchasing.GoodReceiptNote), args.Error(1)
}

func (m *MockGoodReceiptNoteRepository) FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]purchasing.GoodReceiptNote, error) {
	args := m.Called(ctx, purchaseOrderID)
	return args.Get(0).([]purchasing.GoodReceiptNote), args.Error(1)
}

func (m *MockGoodReceiptNoteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]purchasing.GoodReceiptNote, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]purchasing.GoodReceiptNote), args.Error(1)
}

func (m *MockGoodReceiptNoteRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGoodReceiptNoteRepository) Create(ctx context.Context, note *purchasing.GoodReceiptNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

// MockVendorRepository is a mock implementation of purchasing.VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchasing.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]purchasing.Vendor, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]purchasing.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Save(ctx context.Context, vendor *purchasing.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

// MockItemCostRepository is a mock implementation of purchasing.ItemCostRepository
type MockItemCostRepository struct {
	mock.Mock
}

func (m *MockItemCostRepository) FindByKey(ctx context.Context, itemID, storeID uuid.UUID, unitID *uuid.UUID) (*purchasing.ItemCost, error) {
	args := m.Called(ctx, itemID, storeID, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchasing.ItemCost), args.Error(1)
}

func (m *MockItemCostRepository) Upsert(ctx context.Context, cost *purchasing.ItemCost) error {
	args := m.Called(ctx, cost)
	return args.Error(0)
}

// MockItemPriceRepository is a mock implementation of purchasing.ItemPriceRepository
type MockItemPriceRepository struct {
	mock.Mock
}

func (m *MockItemPriceRepository) FindByKey(ctx context.Context, itemID, storeID uuid.UUID, unitID *uuid.UUID) (*purchasing.ItemPrice, error) {
	args := m.Called(ctx, itemID, storeID, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchasing.ItemPrice), args.Error(1)
}

func (m *MockItemPriceRepository) Upsert(ctx context.Context, price *purchasing.ItemPrice) error {
	args := m.Called(ctx, price)
	return args.Error(0)
}

// MockAccountRepository is a mock implementation of finance.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByName(ctx context.Context, name string) (*finance.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Account, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]finance.Account), args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, account *finance.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// MockLedgerRepository is a mock implementation of finance.LedgerRepository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.LedgerEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.LedgerEntry, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]finance.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) Create(ctx context.Context, entry *finance.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockPurchaseTransactionRepository is a mock implementation of finance.PurchaseTransactionRepository
type MockPurchaseTransactionRepository struct {
	mock.Mock
}

func (m *MockPurchaseTransactionRepository) FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]finance.PurchaseTransaction, error) {
	args := m.Called(ctx, purchaseOrderID)
	return args.Get(0).([]finance.PurchaseTransaction), args.Error(1)
}

func (m *MockPurchaseTransactionRepository) Create(ctx context.Context, tx *finance.PurchaseTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

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

// MockItemRepository is a mock implementation of catalog.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByName(ctx context.Context, name string) (*catalog.Item, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Item, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Item, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

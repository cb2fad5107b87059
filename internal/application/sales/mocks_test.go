package sales

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of sales.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*sales.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *sales.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *sales.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteItemsByOrder(ctx context.Context, orderID uuid.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateItems(ctx context.Context, items []sales.OrderItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockOrderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	args := m.Called(ctx, orderNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ExistsByReceiptNumber(ctx context.Context, receiptNumber string) (bool, error) {
	args := m.Called(ctx, receiptNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) SavePayment(ctx context.Context, payment *sales.OrderPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockOrderRepository) DeletePaymentByOrder(ctx context.Context, orderID uuid.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveCustomerLink(ctx context.Context, link *sales.CustomerOrder) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteCustomerLinkByOrder(ctx context.Context, orderID uuid.UUID) error {
	args := m.Called(ctx, orderID)
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

// MockPaymentRepository is a mock implementation of sales.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Payment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *sales.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of sales.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *sales.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// fakeItemStockRepository is an in-memory quantity ledger that honors the
// conditional semantics of DecrementQuantity, so tests can exercise real
// subtract-if-enough behavior across multiple calls.
type fakeItemStockRepository struct {
	mu     sync.Mutex
	stocks map[uuid.UUID]*inventory.StockLevel // keyed by stock ID

	// conflictsRemaining makes the next N decrements fail with a transient
	// storage contention error before any state change.
	conflictsRemaining int
	// forceZeroAffected makes every decrement report no row affected.
	forceZeroAffected bool

	decrementCalls int
}

func newFakeItemStockRepository() *fakeItemStockRepository {
	return &fakeItemStockRepository{stocks: make(map[uuid.UUID]*inventory.StockLevel)}
}

func (f *fakeItemStockRepository) seed(itemID, storeID uuid.UUID, quantity decimal.Decimal) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	stockID := uuid.New()
	f.stocks[stockID] = &inventory.StockLevel{
		StockID:       stockID,
		ItemID:        itemID,
		StoreID:       storeID,
		StockQuantity: quantity,
	}
	return stockID
}

func (f *fakeItemStockRepository) quantity(stockID uuid.UUID) decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	if level, ok := f.stocks[stockID]; ok {
		return level.StockQuantity
	}
	return decimal.Zero
}

func (f *fakeItemStockRepository) FindByStockID(_ context.Context, stockID uuid.UUID) (*inventory.ItemStock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	level, ok := f.stocks[stockID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &inventory.ItemStock{StockID: stockID, StockQuantity: level.StockQuantity}, nil
}

func (f *fakeItemStockRepository) FindLevel(_ context.Context, itemID, storeID uuid.UUID) (*inventory.StockLevel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, level := range f.stocks {
		if level.ItemID == itemID && level.StoreID == storeID {
			copied := *level
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeItemStockRepository) FindLevelsByStore(_ context.Context, storeID uuid.UUID, _ shared.Filter) ([]inventory.StockLevel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	levels := make([]inventory.StockLevel, 0)
	for _, level := range f.stocks {
		if level.StoreID == storeID {
			levels = append(levels, *level)
		}
	}
	return levels, nil
}

func (f *fakeItemStockRepository) FindBelowMinimum(_ context.Context, _ uuid.UUID, _ shared.Filter) ([]inventory.StockLevel, error) {
	return nil, nil
}

func (f *fakeItemStockRepository) Save(_ context.Context, _ *inventory.ItemStock) error {
	return nil
}

func (f *fakeItemStockRepository) DecrementQuantity(_ context.Context, stockID uuid.UUID, quantity decimal.Decimal) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decrementCalls++
	if f.conflictsRemaining > 0 {
		f.conflictsRemaining--
		return false, shared.ErrTxConflict
	}
	if f.forceZeroAffected {
		return false, nil
	}
	level, ok := f.stocks[stockID]
	if !ok || level.StockQuantity.LessThan(quantity) {
		return false, nil
	}
	level.StockQuantity = level.StockQuantity.Sub(quantity)
	return true, nil
}

func (f *fakeItemStockRepository) IncrementQuantity(_ context.Context, stockID uuid.UUID, quantity decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if level, ok := f.stocks[stockID]; ok {
		level.StockQuantity = level.StockQuantity.Add(quantity)
	}
	return nil
}

var _ inventory.ItemStockRepository = (*fakeItemStockRepository)(nil)

// fakeSubmissionGuard is an in-memory SubmissionGuard
type fakeSubmissionGuard struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

func newFakeSubmissionGuard() *fakeSubmissionGuard {
	return &fakeSubmissionGuard{seen: make(map[string]time.Time)}
}

func (g *fakeSubmissionGuard) MarkSubmitted(_ context.Context, key string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if expiry, ok := g.seen[key]; ok && time.Now().Before(expiry) {
		return false, nil
	}
	g.seen[key] = time.Now().Add(ttl)
	return true, nil
}

func (g *fakeSubmissionGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.seen, key)
	return nil
}

func (g *fakeSubmissionGuard) Close() error { return nil }

var _ shared.SubmissionGuard = (*fakeSubmissionGuard)(nil)

package sales

import (
	"context"

	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/sales"
)

// TransactionScope provides transactional access to the repositories an
// order placement touches. All repository operations performed inside
// Execute are part of the same database transaction and commit or roll
// back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the sales and inventory
// repositories within a transaction. All repositories returned share the
// same underlying database transaction.
//
// Stock quantities are only ever changed through ItemStocks: the order
// write path never reads-then-writes a quantity, it issues the
// repository's atomic decrement so concurrent placements cannot oversell.
type TransactionalRepositories interface {
	// Orders returns the order repository scoped to the current transaction
	Orders() sales.OrderRepository
	// Stocks returns the stock threshold repository scoped to the current transaction
	Stocks() inventory.StockRepository
	// ItemStocks returns the quantity ledger repository scoped to the current transaction
	ItemStocks() inventory.ItemStockRepository
}

// NoOpTransactionScope runs the scoped function without a real transaction.
// Useful in tests where the repositories are mocks.
type NoOpTransactionScope struct {
	orderRepo     sales.OrderRepository
	stockRepo     inventory.StockRepository
	itemStockRepo inventory.ItemStockRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	orderRepo sales.OrderRepository,
	stockRepo inventory.StockRepository,
	itemStockRepo inventory.ItemStockRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:     orderRepo,
		stockRepo:     stockRepo,
		itemStockRepo: itemStockRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Orders returns the order repository.
func (s *NoOpTransactionScope) Orders() sales.OrderRepository {
	return s.orderRepo
}

// Stocks returns the stock threshold repository.
func (s *NoOpTransactionScope) Stocks() inventory.StockRepository {
	return s.stockRepo
}

// ItemStocks returns the quantity ledger repository.
func (s *NoOpTransactionScope) ItemStocks() inventory.ItemStockRepository {
	return s.itemStockRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

package persistence

import (
	"context"

	appsales "github.com/pos/backend/internal/application/sales"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/sales"
	"gorm.io/gorm"
)

// GormSalesTransactionScope implements the sales TransactionScope using GORM
// transactions. The order insert and every conditional stock decrement of a
// placement run in the same transaction and commit or roll back together.
type GormSalesTransactionScope struct {
	db *gorm.DB
}

// NewGormSalesTransactionScope creates a new GormSalesTransactionScope.
func NewGormSalesTransactionScope(db *gorm.DB) *GormSalesTransactionScope {
	return &GormSalesTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// Serialization failures surface as shared.ErrTxConflict via the repository
// error translation, letting the caller retry the whole body.
func (s *GormSalesTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return translateError(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSalesRepositories{tx: tx})
	}))
}

// gormSalesRepositories hands out repositories bound to one transaction.
type gormSalesRepositories struct {
	tx *gorm.DB
}

// Orders returns the order repository scoped to the current transaction.
func (r *gormSalesRepositories) Orders() sales.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// Stocks returns the stock threshold repository scoped to the current transaction.
func (r *gormSalesRepositories) Stocks() inventory.StockRepository {
	return NewGormStockRepository(r.tx)
}

// ItemStocks returns the quantity ledger repository scoped to the current transaction.
func (r *gormSalesRepositories) ItemStocks() inventory.ItemStockRepository {
	return NewGormItemStockRepository(r.tx)
}

// Ensure GormSalesTransactionScope implements the application interface
var _ appsales.TransactionScope = (*GormSalesTransactionScope)(nil)

var _ appsales.TransactionalRepositories = (*gormSalesRepositories)(nil)

package persistence

import (
	"context"

	apppurchasing "github.com/pos/backend/internal/application/purchasing"
	"github.com/pos/backend/internal/domain/finance"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/purchasing"
	"gorm.io/gorm"
)

// GormPurchasingTransactionScope implements the purchasing TransactionScope
// using GORM transactions. The GRN insert, the purchase order status flip,
// the ledger posting, and every stock and pricing write of a receipt run in
// one transaction and commit or roll back together.
type GormPurchasingTransactionScope struct {
	db *gorm.DB
}

// NewGormPurchasingTransactionScope creates a new GormPurchasingTransactionScope.
func NewGormPurchasingTransactionScope(db *gorm.DB) *GormPurchasingTransactionScope {
	return &GormPurchasingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormPurchasingTransactionScope) Execute(ctx context.Context, fn func(repos apppurchasing.TransactionalRepositories) error) error {
	return translateError(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormPurchasingRepositories{tx: tx})
	}))
}

// gormPurchasingRepositories hands out repositories bound to one transaction.
type gormPurchasingRepositories struct {
	tx *gorm.DB
}

// PurchaseOrders returns the purchase order repository scoped to the current transaction.
func (r *gormPurchasingRepositories) PurchaseOrders() purchasing.PurchaseOrderRepository {
	return NewGormPurchaseOrderRepository(r.tx)
}

// Notes returns the goods receipt note repository scoped to the current transaction.
func (r *gormPurchasingRepositories) Notes() purchasing.GoodReceiptNoteRepository {
	return NewGormGoodReceiptNoteRepository(r.tx)
}

// Stocks returns the stock threshold repository scoped to the current transaction.
func (r *gormPurchasingRepositories) Stocks() inventory.StockRepository {
	return NewGormStockRepository(r.tx)
}

// ItemStocks returns the quantity ledger repository scoped to the current transaction.
func (r *gormPurchasingRepositories) ItemStocks() inventory.ItemStockRepository {
	return NewGormItemStockRepository(r.tx)
}

// ItemCosts returns the rolling cost repository scoped to the current transaction.
func (r *gormPurchasingRepositories) ItemCosts() purchasing.ItemCostRepository {
	return NewGormItemCostRepository(r.tx)
}

// ItemPrices returns the rolling price repository scoped to the current transaction.
func (r *gormPurchasingRepositories) ItemPrices() purchasing.ItemPriceRepository {
	return NewGormItemPriceRepository(r.tx)
}

// Accounts returns the account repository scoped to the current transaction.
func (r *gormPurchasingRepositories) Accounts() finance.AccountRepository {
	return NewGormAccountRepository(r.tx)
}

// Ledger returns the ledger repository scoped to the current transaction.
func (r *gormPurchasingRepositories) Ledger() finance.LedgerRepository {
	return NewGormLedgerRepository(r.tx)
}

// PurchaseTransactions returns the purchase posting repository scoped to the current transaction.
func (r *gormPurchasingRepositories) PurchaseTransactions() finance.PurchaseTransactionRepository {
	return NewGormPurchaseTransactionRepository(r.tx)
}

// Ensure GormPurchasingTransactionScope implements the application interface
var _ apppurchasing.TransactionScope = (*GormPurchasingTransactionScope)(nil)

var _ apppurchasing.TransactionalRepositories = (*gormPurchasingRepositories)(nil)

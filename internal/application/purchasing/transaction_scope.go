package purchasing

import (
	"context"

	"github.com/pos/backend/internal/domain/finance"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/purchasing"
)

// TransactionScope provides transactional access to the repositories the
// receiving pipeline touches. All repository operations performed inside
// Execute commit or roll back atomically: a failure while posting the
// ledger undoes the GRN insert, the purchase order status flip, and every
// stock increment of the same receipt.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the purchasing, inventory,
// and finance repositories within a transaction.
type TransactionalRepositories interface {
	// PurchaseOrders returns the purchase order repository scoped to the current transaction
	PurchaseOrders() purchasing.PurchaseOrderRepository
	// Notes returns the goods receipt note repository scoped to the current transaction
	Notes() purchasing.GoodReceiptNoteRepository
	// Stocks returns the stock threshold repository scoped to the current transaction
	Stocks() inventory.StockRepository
	// ItemStocks returns the quantity ledger repository scoped to the current transaction
	ItemStocks() inventory.ItemStockRepository
	// ItemCosts returns the rolling cost repository scoped to the current transaction
	ItemCosts() purchasing.ItemCostRepository
	// ItemPrices returns the rolling price repository scoped to the current transaction
	ItemPrices() purchasing.ItemPriceRepository
	// Accounts returns the account repository scoped to the current transaction
	Accounts() finance.AccountRepository
	// Ledger returns the ledger repository scoped to the current transaction
	Ledger() finance.LedgerRepository
	// PurchaseTransactions returns the purchase posting repository scoped to the current transaction
	PurchaseTransactions() finance.PurchaseTransactionRepository
}

// NoOpTransactionScope runs the scoped function without a real transaction.
// Useful in tests where the repositories are mocks.
type NoOpTransactionScope struct {
	PurchaseOrderRepo purchasing.PurchaseOrderRepository
	NoteRepo          purchasing.GoodReceiptNoteRepository
	StockRepo         inventory.StockRepository
	ItemStockRepo     inventory.ItemStockRepository
	ItemCostRepo      purchasing.ItemCostRepository
	ItemPriceRepo     purchasing.ItemPriceRepository
	AccountRepo       finance.AccountRepository
	LedgerRepo        finance.LedgerRepository
	PurchaseTxRepo    finance.PurchaseTransactionRepository
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PurchaseOrders returns the purchase order repository.
func (s *NoOpTransactionScope) PurchaseOrders() purchasing.PurchaseOrderRepository {
	return s.PurchaseOrderRepo
}

// Notes returns the goods receipt note repository.
func (s *NoOpTransactionScope) Notes() purchasing.GoodReceiptNoteRepository {
	return s.NoteRepo
}

// Stocks returns the stock threshold repository.
func (s *NoOpTransactionScope) Stocks() inventory.StockRepository {
	return s.StockRepo
}

// ItemStocks returns the quantity ledger repository.
func (s *NoOpTransactionScope) ItemStocks() inventory.ItemStockRepository {
	return s.ItemStockRepo
}

// ItemCosts returns the rolling cost repository.
func (s *NoOpTransactionScope) ItemCosts() purchasing.ItemCostRepository {
	return s.ItemCostRepo
}

// ItemPrices returns the rolling price repository.
func (s *NoOpTransactionScope) ItemPrices() purchasing.ItemPriceRepository {
	return s.ItemPriceRepo
}

// Accounts returns the account repository.
func (s *NoOpTransactionScope) Accounts() finance.AccountRepository {
	return s.AccountRepo
}

// Ledger returns the ledger repository.
func (s *NoOpTransactionScope) Ledger() finance.LedgerRepository {
	return s.LedgerRepo
}

// PurchaseTransactions returns the purchase posting repository.
func (s *NoOpTransactionScope) PurchaseTransactions() finance.PurchaseTransactionRepository {
	return s.PurchaseTxRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// AccountRepository provides persistence for the chart of accounts
type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByName(ctx context.Context, name string) (*Account, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Account, error)
	Save(ctx context.Context, account *Account) error
}

// LedgerRepository provides persistence for ledger entries
type LedgerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LedgerEntry, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]LedgerEntry, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, entry *LedgerEntry) error
}

// PurchaseTransactionRepository provides persistence for purchase postings
type PurchaseTransactionRepository interface {
	FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]PurchaseTransaction, error)
	Create(ctx context.Context, tx *PurchaseTransaction) error
}

// BusinessDayRepository provides persistence for day open/close records
type BusinessDayRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BusinessDay, error)
	FindByStoreAndDate(ctx context.Context, storeID uuid.UUID, date time.Time) (*BusinessDay, error)
	Save(ctx context.Context, day *BusinessDay) error
}

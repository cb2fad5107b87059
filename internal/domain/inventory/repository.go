package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StockLevel is a read model joining a stock row with its quantity ledger
type StockLevel struct {
	StockID       uuid.UUID
	ItemID        uuid.UUID
	StoreID       uuid.UUID
	StockQuantity decimal.Decimal
	MinQuantity   decimal.Decimal
	MaxQuantity   decimal.Decimal
}

// StockRepository provides persistence for stock threshold rows
type StockRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Stock, error)
	FindByItemAndStore(ctx context.Context, itemID, storeID uuid.UUID) (*Stock, error)
	FindByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Stock, error)
	Save(ctx context.Context, stock *Stock) error
	GetOrCreate(ctx context.Context, itemID, storeID uuid.UUID) (*Stock, error)
}

// ItemStockRepository provides persistence for the quantity ledger.
//
// DecrementQuantity and IncrementQuantity are atomic storage-layer
// operations. DecrementQuantity issues a single conditional update
// (subtract N where current quantity >= N) and reports whether a row was
// affected; zero rows affected is the authoritative insufficient-stock
// signal regardless of any earlier pre-check.
type ItemStockRepository interface {
	FindByStockID(ctx context.Context, stockID uuid.UUID) (*ItemStock, error)
	FindLevel(ctx context.Context, itemID, storeID uuid.UUID) (*StockLevel, error)
	FindLevelsByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]StockLevel, error)
	FindBelowMinimum(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]StockLevel, error)
	Save(ctx context.Context, itemStock *ItemStock) error
	DecrementQuantity(ctx context.Context, stockID uuid.UUID, quantity decimal.Decimal) (bool, error)
	IncrementQuantity(ctx context.Context, stockID uuid.UUID, quantity decimal.Decimal) error
}

// StoreRepository provides persistence for stores
type StoreRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Store, error)
	Save(ctx context.Context, store *Store) error
}

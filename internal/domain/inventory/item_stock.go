package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ItemStock is the mutable quantity ledger row tied to a Stock row.
// The quantity is only ever changed through the repository's atomic
// conditional decrement / increment operations; in-memory mutation of
// StockQuantity followed by Save would reintroduce the lost-update race.
type ItemStock struct {
	shared.BaseAggregateRoot
	StockID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	StockQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	IsSynced      bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ItemStock) TableName() string {
	return "item_stocks"
}

// NewItemStock creates a quantity ledger row for a stock row
func NewItemStock(stockID uuid.UUID, quantity decimal.Decimal) (*ItemStock, error) {
	if stockID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock ID cannot be empty")
	}
	if quantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Initial quantity cannot be negative")
	}
	return &ItemStock{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		StockID:           stockID,
		StockQuantity:     quantity,
	}, nil
}

// CanFulfill reports whether the current quantity covers the requested one.
// This is a fast-path pre-check only; the conditional decrement at the
// storage layer is the authoritative availability check.
func (s *ItemStock) CanFulfill(quantity decimal.Decimal) bool {
	return s.StockQuantity.GreaterThanOrEqual(quantity)
}

// MarkSynced records that the row has been pushed to the external sync target
func (s *ItemStock) MarkSynced() {
	s.IsSynced = true
	s.UpdatedAt = time.Now()
}

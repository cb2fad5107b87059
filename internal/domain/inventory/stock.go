package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Stock is the (item, store) pairing that owns quantity thresholds.
// One row exists per item-store combination; the mutable quantity lives in
// the attached ItemStock ledger row.
type Stock struct {
	shared.BaseAggregateRoot
	ItemID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stocks_item_store,priority:1"`
	StoreID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stocks_item_store,priority:2"`
	MinQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	MaxQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`

	ItemStock *ItemStock `gorm:"foreignKey:StockID;references:ID"`
}

// TableName returns the table name for GORM
func (Stock) TableName() string {
	return "stocks"
}

// NewStock creates a new stock row for an item-store combination
func NewStock(itemID, storeID uuid.UUID) (*Stock, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	return &Stock{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ItemID:            itemID,
		StoreID:           storeID,
		MinQuantity:       decimal.Zero,
		MaxQuantity:       decimal.Zero,
	}, nil
}

// SetThresholds updates the min/max quantity thresholds
func (s *Stock) SetThresholds(minQty, maxQty decimal.Decimal) error {
	if minQty.IsNegative() || maxQty.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Thresholds cannot be negative")
	}
	if maxQty.GreaterThan(decimal.Zero) && minQty.GreaterThan(maxQty) {
		return shared.NewDomainError("INVALID_QUANTITY", "Minimum threshold cannot exceed maximum")
	}
	s.MinQuantity = minQty
	s.MaxQuantity = maxQty
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// IsBelowMinimum reports whether the given quantity is under the threshold
func (s *Stock) IsBelowMinimum(quantity decimal.Decimal) bool {
	return s.MinQuantity.GreaterThan(decimal.Zero) && quantity.LessThan(s.MinQuantity)
}

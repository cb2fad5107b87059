package purchasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ItemCost is the rolling latest purchase cost for (item, store, unit).
// Last write wins; there is no historical versioning beyond this single row.
type ItemCost struct {
	shared.BaseAggregateRoot
	ItemID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_item_costs_key,priority:1"`
	StoreID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_item_costs_key,priority:2"`
	UnitID   *uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_item_costs_key,priority:3"`
	UnitCost decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (ItemCost) TableName() string {
	return "item_costs"
}

// NewItemCost creates a rolling cost row
func NewItemCost(itemID, storeID uuid.UUID, unitID *uuid.UUID, unitCost decimal.Decimal) (*ItemCost, error) {
	if itemID == uuid.Nil || storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_KEY", "Item and store IDs cannot be empty")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}
	return &ItemCost{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ItemID:            itemID,
		StoreID:           storeID,
		UnitID:            unitID,
		UnitCost:          unitCost,
	}, nil
}

// Update overwrites the cost with the latest purchase value
func (c *ItemCost) Update(unitCost decimal.Decimal) error {
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}
	c.UnitCost = unitCost
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// ItemPrice is the rolling latest selling price for (item, store, unit)
type ItemPrice struct {
	shared.BaseAggregateRoot
	ItemID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_item_prices_key,priority:1"`
	StoreID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_item_prices_key,priority:2"`
	UnitID       *uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_item_prices_key,priority:3"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (ItemPrice) TableName() string {
	return "item_prices"
}

// NewItemPrice creates a rolling price row
func NewItemPrice(itemID, storeID uuid.UUID, unitID *uuid.UUID, sellingPrice decimal.Decimal) (*ItemPrice, error) {
	if itemID == uuid.Nil || storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_KEY", "Item and store IDs cannot be empty")
	}
	if sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}
	return &ItemPrice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ItemID:            itemID,
		StoreID:           storeID,
		UnitID:            unitID,
		SellingPrice:      sellingPrice,
	}, nil
}

// Update overwrites the price with the latest receiving value
func (p *ItemPrice) Update(sellingPrice decimal.Decimal) error {
	if sellingPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}
	p.SellingPrice = sellingPrice
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

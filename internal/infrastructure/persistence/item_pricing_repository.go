package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/purchasing"
	"github.com/pos/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemCostRepository implements purchasing.ItemCostRepository using GORM
type GormItemCostRepository struct {
	db *gorm.DB
}

// NewGormItemCostRepository creates a new GormItemCostRepository
func NewGormItemCostRepository(db *gorm.DB) *GormItemCostRepository {
	return &GormItemCostRepository{db: db}
}

// FindByKey finds the rolling cost row for (item, store, unit)
func (r *GormItemCostRepository) FindByKey(ctx context.Context, itemID, storeID uuid.UUID, unitID *uuid.UUID) (*purchasing.ItemCost, error) {
	var cost purchasing.ItemCost
	query := r.db.WithContext(ctx).Where("item_id = ? AND store_id = ?", itemID, storeID)
	query = whereUnit(query, unitID)

	if err := query.First(&cost).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &cost, nil
}

// Upsert writes the rolling cost row, last write wins on the key conflict
func (r *GormItemCostRepository) Upsert(ctx context.Context, cost *purchasing.ItemCost) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "item_id"}, {Name: "store_id"}, {Name: "unit_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"unit_cost":  cost.UnitCost,
				"updated_at": time.Now(),
			}),
		}).
		Create(cost).Error
	return translateError(err)
}

// GormItemPriceRepository implements purchasing.ItemPriceRepository using GORM
type GormItemPriceRepository struct {
	db *gorm.DB
}

// NewGormItemPriceRepository creates a new GormItemPriceRepository
func NewGormItemPriceRepository(db *gorm.DB) *GormItemPriceRepository {
	return &GormItemPriceRepository{db: db}
}

// FindByKey finds the rolling selling price row for (item, store, unit)
func (r *GormItemPriceRepository) FindByKey(ctx context.Context, itemID, storeID uuid.UUID, unitID *uuid.UUID) (*purchasing.ItemPrice, error) {
	var price purchasing.ItemPrice
	query := r.db.WithContext(ctx).Where("item_id = ? AND store_id = ?", itemID, storeID)
	query = whereUnit(query, unitID)

	if err := query.First(&price).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &price, nil
}

// Upsert writes the rolling price row, last write wins on the key conflict
func (r *GormItemPriceRepository) Upsert(ctx context.Context, price *purchasing.ItemPrice) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "item_id"}, {Name: "store_id"}, {Name: "unit_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"selling_price": price.SellingPrice,
				"updated_at":    time.Now(),
			}),
		}).
		Create(price).Error
	return translateError(err)
}

// whereUnit scopes a pricing query to a unit, treating nil as the NULL-unit row
func whereUnit(query *gorm.DB, unitID *uuid.UUID) *gorm.DB {
	if unitID == nil {
		return query.Where("unit_id IS NULL")
	}
	return query.Where("unit_id = ?", *unitID)
}

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormItemStockRepository implements inventory.ItemStockRepository using GORM
type GormItemStockRepository struct {
	db *gorm.DB
}

// NewGormItemStockRepository creates a new GormItemStockRepository
func NewGormItemStockRepository(db *gorm.DB) *GormItemStockRepository {
	return &GormItemStockRepository{db: db}
}

// FindByStockID finds the quantity ledger row for a stock row
func (r *GormItemStockRepository) FindByStockID(ctx context.Context, stockID uuid.UUID) (*inventory.ItemStock, error) {
	var itemStock inventory.ItemStock
	if err := r.db.WithContext(ctx).
		Where("stock_id = ?", stockID).
		First(&itemStock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &itemStock, nil
}

// FindLevel joins the stock row with its quantity ledger for one item-store pair.
// Returns nil without error when the item has never been stocked at the store.
func (r *GormItemStockRepository) FindLevel(ctx context.Context, itemID, storeID uuid.UUID) (*inventory.StockLevel, error) {
	var level inventory.StockLevel
	err := r.db.WithContext(ctx).
		Table("stocks").
		Select("stocks.id AS stock_id, stocks.item_id, stocks.store_id, item_stocks.stock_quantity, stocks.min_quantity, stocks.max_quantity").
		Joins("JOIN item_stocks ON item_stocks.stock_id = stocks.id").
		Where("stocks.item_id = ? AND stocks.store_id = ?", itemID, storeID).
		Take(&level).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &level, nil
}

// FindLevelsByStore lists the stock levels of a store
func (r *GormItemStockRepository) FindLevelsByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]inventory.StockLevel, error) {
	var levels []inventory.StockLevel
	query := r.levelQuery(ctx).Where("stocks.store_id = ?", storeID)
	query = applyLevelPagination(query, filter)

	if err := query.Find(&levels).Error; err != nil {
		return nil, translateError(err)
	}
	return levels, nil
}

// FindBelowMinimum lists levels whose quantity is under the configured minimum.
// Rows with no minimum set (min_quantity = 0) are never reported.
func (r *GormItemStockRepository) FindBelowMinimum(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]inventory.StockLevel, error) {
	var levels []inventory.StockLevel
	query := r.levelQuery(ctx).
		Where("stocks.store_id = ?", storeID).
		Where("stocks.min_quantity > 0 AND item_stocks.stock_quantity < stocks.min_quantity")
	query = applyLevelPagination(query, filter)

	if err := query.Find(&levels).Error; err != nil {
		return nil, translateError(err)
	}
	return levels, nil
}

// Save creates or updates a quantity ledger row
func (r *GormItemStockRepository) Save(ctx context.Context, itemStock *inventory.ItemStock) error {
	if err := r.db.WithContext(ctx).Save(itemStock).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// DecrementQuantity subtracts quantity in a single conditional update.
// The WHERE clause only matches when enough stock remains, so concurrent
// sales can never drive the quantity negative. Zero rows affected is the
// authoritative insufficient-stock signal.
func (r *GormItemStockRepository) DecrementQuantity(ctx context.Context, stockID uuid.UUID, quantity decimal.Decimal) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&inventory.ItemStock{}).
		Where("stock_id = ? AND stock_quantity >= ?", stockID, quantity).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))

	if result.Error != nil {
		return false, translateError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// IncrementQuantity adds quantity in a single atomic update
func (r *GormItemStockRepository) IncrementQuantity(ctx context.Context, stockID uuid.UUID, quantity decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&inventory.ItemStock{}).
		Where("stock_id = ?", stockID).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))

	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormItemStockRepository) levelQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("stocks").
		Select("stocks.id AS stock_id, stocks.item_id, stocks.store_id, item_stocks.stock_quantity, stocks.min_quantity, stocks.max_quantity").
		Joins("JOIN item_stocks ON item_stocks.stock_id = stocks.id")
}

func applyLevelPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query.Order("stocks.item_id ASC")
}

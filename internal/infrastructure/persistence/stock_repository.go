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

// GormStockRepository implements inventory.StockRepository using GORM
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// FindByID finds a stock row by its ID
func (r *GormStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Stock, error) {
	var stock inventory.Stock
	if err := r.db.WithContext(ctx).
		First(&stock, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &stock, nil
}

// FindByItemAndStore finds the stock row for an item-store combination
func (r *GormStockRepository) FindByItemAndStore(ctx context.Context, itemID, storeID uuid.UUID) (*inventory.Stock, error) {
	var stock inventory.Stock
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND store_id = ?", itemID, storeID).
		First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &stock, nil
}

// FindByStore lists the stock rows of a store
func (r *GormStockRepository) FindByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]inventory.Stock, error) {
	var stocks []inventory.Stock
	query := r.db.WithContext(ctx).
		Model(&inventory.Stock{}).
		Where("store_id = ?", storeID)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Order("created_at DESC").Find(&stocks).Error; err != nil {
		return nil, translateError(err)
	}
	return stocks, nil
}

// Save creates or updates a stock row
func (r *GormStockRepository) Save(ctx context.Context, stock *inventory.Stock) error {
	if err := r.db.WithContext(ctx).Omit("ItemStock").Save(stock).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetOrCreate returns the stock row for an item-store pair, creating it
// together with a zero-quantity ledger row on first use. A concurrent
// creation losing the unique-index race falls back to re-reading the
// winner's row.
func (r *GormStockRepository) GetOrCreate(ctx context.Context, itemID, storeID uuid.UUID) (*inventory.Stock, error) {
	stock, err := r.FindByItemAndStore(ctx, itemID, storeID)
	if err == nil {
		return stock, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	stock, err = inventory.NewStock(itemID, storeID)
	if err != nil {
		return nil, err
	}
	itemStock, err := inventory.NewItemStock(stock.ID, decimal.Zero)
	if err != nil {
		return nil, err
	}

	createErr := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("ItemStock").Create(stock).Error; err != nil {
			return err
		}
		return tx.Create(itemStock).Error
	})
	if createErr != nil {
		if isUniqueViolation(createErr) {
			return r.FindByItemAndStore(ctx, itemID, storeID)
		}
		return nil, translateError(createErr)
	}

	stock.ItemStock = itemStock
	return stock, nil
}

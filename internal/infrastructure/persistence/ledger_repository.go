package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/finance"
	"github.com/pos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormLedgerRepository implements finance.LedgerRepository using GORM
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GormLedgerRepository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// FindByID finds a ledger entry by its ID
func (r *GormLedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.LedgerEntry, error) {
	var entry finance.LedgerEntry
	if err := r.db.WithContext(ctx).
		First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &entry, nil
}

// FindAll finds ledger entries with filtering and pagination
func (r *GormLedgerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.LedgerEntry, error) {
	var entries []finance.LedgerEntry
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&finance.LedgerEntry{}),
		filter,
	)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := "entry_date"
	if filter.OrderBy != "" {
		orderBy = filter.OrderBy
	}
	orderDir := "DESC"
	if strings.ToLower(filter.OrderDir) == "asc" {
		orderDir = "ASC"
	}

	if err := query.Order(orderBy + " " + orderDir).Find(&entries).Error; err != nil {
		return nil, translateError(err)
	}
	return entries, nil
}

// Count counts ledger entries matching the filter
func (r *GormLedgerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&finance.LedgerEntry{}),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// Create inserts a ledger entry
func (r *GormLedgerRepository) Create(ctx context.Context, entry *finance.LedgerEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *GormLedgerRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "account_id":
			query = query.Where("account_id = ?", value)
		case "source_type":
			query = query.Where("source_type = ?", value)
		case "date_from":
			if t, ok := value.(time.Time); ok {
				query = query.Where("entry_date >= ?", t)
			}
		case "date_to":
			if t, ok := value.(time.Time); ok {
				query = query.Where("entry_date <= ?", t)
			}
		}
	}
	return query
}

// GormPurchaseTransactionRepository implements finance.PurchaseTransactionRepository using GORM
type GormPurchaseTransactionRepository struct {
	db *gorm.DB
}

// NewGormPurchaseTransactionRepository creates a new GormPurchaseTransactionRepository
func NewGormPurchaseTransactionRepository(db *gorm.DB) *GormPurchaseTransactionRepository {
	return &GormPurchaseTransactionRepository{db: db}
}

// FindByPurchaseOrder lists the postings recorded for a purchase order
func (r *GormPurchaseTransactionRepository) FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]finance.PurchaseTransaction, error) {
	var txs []finance.PurchaseTransaction
	if err := r.db.WithContext(ctx).
		Where("purchase_order_id = ?", purchaseOrderID).
		Order("created_at DESC").
		Find(&txs).Error; err != nil {
		return nil, translateError(err)
	}
	return txs, nil
}

// Create inserts a purchase posting row
func (r *GormPurchaseTransactionRepository) Create(ctx context.Context, tx *finance.PurchaseTransaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return translateError(err)
	}
	return nil
}

package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/purchasing"
	"github.com/pos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormGoodReceiptNoteRepository implements purchasing.GoodReceiptNoteRepository using GORM
type GormGoodReceiptNoteRepository struct {
	db *gorm.DB
}

// NewGormGoodReceiptNoteRepository creates a new GormGoodReceiptNoteRepository
func NewGormGoodReceiptNoteRepository(db *gorm.DB) *GormGoodReceiptNoteRepository {
	return &GormGoodReceiptNoteRepository{db: db}
}

// FindByID finds a goods receipt note by its ID, with line items
func (r *GormGoodReceiptNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.GoodReceiptNote, error) {
	var note purchasing.GoodReceiptNote
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &note, nil
}

// FindByPurchaseOrder lists the notes recorded against a purchase order
func (r *GormGoodReceiptNoteRepository) FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]purchasing.GoodReceiptNote, error) {
	var notes []purchasing.GoodReceiptNote
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("purchase_order_id = ?", purchaseOrderID).
		Order("received_date DESC").
		Find(&notes).Error; err != nil {
		return nil, translateError(err)
	}
	return notes, nil
}

// FindAll finds notes with filtering and pagination
func (r *GormGoodReceiptNoteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]purchasing.GoodReceiptNote, error) {
	var notes []purchasing.GoodReceiptNote
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&purchasing.GoodReceiptNote{}).Preload("Items"),
		filter,
	)

	if err := query.Find(&notes).Error; err != nil {
		return nil, translateError(err)
	}
	return notes, nil
}

// Count counts notes matching the filter
func (r *GormGoodReceiptNoteRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&purchasing.GoodReceiptNote{}),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// Create inserts the note and its line items
func (r *GormGoodReceiptNoteRepository) Create(ctx context.Context, note *purchasing.GoodReceiptNote) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.NewDomainError("DUPLICATE_NOTE_NUMBER",
				"A goods receipt note with this note number already exists")
		}
		return translateError(err)
	}
	return nil
}

func (r *GormGoodReceiptNoteRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("received_date DESC")
	}

	return query
}

func (r *GormGoodReceiptNoteRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("note_number ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "purchase_order_id":
			query = query.Where("purchase_order_id = ?", value)
		case "store_id":
			query = query.Where("store_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "date_from":
			if t, ok := value.(time.Time); ok {
				query = query.Where("received_date >= ?", t)
			}
		case "date_to":
			if t, ok := value.(time.Time); ok {
				query = query.Where("received_date <= ?", t)
			}
		}
	}

	return query
}

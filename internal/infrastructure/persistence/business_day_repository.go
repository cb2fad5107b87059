package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/finance"
	"github.com/pos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBusinessDayRepository implements finance.BusinessDayRepository using GORM
type GormBusinessDayRepository struct {
	db *gorm.DB
}

// NewGormBusinessDayRepository creates a new GormBusinessDayRepository
func NewGormBusinessDayRepository(db *gorm.DB) *GormBusinessDayRepository {
	return &GormBusinessDayRepository{db: db}
}

// FindByID finds a business day record by its ID
func (r *GormBusinessDayRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.BusinessDay, error) {
	var day finance.BusinessDay
	if err := r.db.WithContext(ctx).
		First(&day, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &day, nil
}

// FindByStoreAndDate finds the day record for a store and calendar date.
// The lookup truncates to midnight so any timestamp within the day matches.
func (r *GormBusinessDayRepository) FindByStoreAndDate(ctx context.Context, storeID uuid.UUID, date time.Time) (*finance.BusinessDay, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var day finance.BusinessDay
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND date = ?", storeID, dayStart).
		First(&day).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &day, nil
}

// Save creates or updates a business day record
func (r *GormBusinessDayRepository) Save(ctx context.Context, day *finance.BusinessDay) error {
	if err := r.db.WithContext(ctx).Save(day).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.NewDomainError("DAY_ALREADY_OPEN",
				"A business day already exists for this store and date")
		}
		return translateError(err)
	}
	return nil
}

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/purchasing"
	"github.com/pos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormVendorRepository implements purchasing.VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// FindByID finds a vendor by its ID
func (r *GormVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.Vendor, error) {
	var vendor purchasing.Vendor
	if err := r.db.WithContext(ctx).
		First(&vendor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &vendor, nil
}

// FindAll lists vendors with pagination
func (r *GormVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]purchasing.Vendor, error) {
	var vendors []purchasing.Vendor
	query := r.db.WithContext(ctx).Model(&purchasing.Vendor{})

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Order("name ASC").Find(&vendors).Error; err != nil {
		return nil, translateError(err)
	}
	return vendors, nil
}

// Save creates or updates a vendor
func (r *GormVendorRepository) Save(ctx context.Context, vendor *purchasing.Vendor) error {
	if err := r.db.WithContext(ctx).Save(vendor).Error; err != nil {
		return translateError(err)
	}
	return nil
}

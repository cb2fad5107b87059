package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormStoreRepository implements inventory.StoreRepository using GORM
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GormStoreRepository
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// FindByID finds a store by its ID
func (r *GormStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Store, error) {
	var store inventory.Store
	if err := r.db.WithContext(ctx).
		First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &store, nil
}

// FindAll lists stores with pagination
func (r *GormStoreRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Store, error) {
	var stores []inventory.Store
	query := r.db.WithContext(ctx).Model(&inventory.Store{})

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", searchPattern, searchPattern)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Order("code ASC").Find(&stores).Error; err != nil {
		return nil, translateError(err)
	}
	return stores, nil
}

// Save creates or updates a store
func (r *GormStoreRepository) Save(ctx context.Context, store *inventory.Store) error {
	if err := r.db.WithContext(ctx).Save(store).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.NewDomainError("DUPLICATE_STORE_CODE",
				"A store with this code already exists")
		}
		return translateError(err)
	}
	return nil
}

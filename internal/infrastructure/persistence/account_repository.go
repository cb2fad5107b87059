package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/finance"
	"github.com/pos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAccountRepository implements finance.AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// FindByID finds an account by its ID
func (r *GormAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Account, error) {
	var account finance.Account
	if err := r.db.WithContext(ctx).
		First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &account, nil
}

// FindByName finds an account by its unique name
func (r *GormAccountRepository) FindByName(ctx context.Context, name string) (*finance.Account, error) {
	var account finance.Account
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &account, nil
}

// FindAll lists accounts with pagination
func (r *GormAccountRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Account, error) {
	var accounts []finance.Account
	query := r.db.WithContext(ctx).Model(&finance.Account{})

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if accountType, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", accountType)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Order("name ASC").Find(&accounts).Error; err != nil {
		return nil, translateError(err)
	}
	return accounts, nil
}

// Save creates or updates an account
func (r *GormAccountRepository) Save(ctx context.Context, account *finance.Account) error {
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.NewDomainError("DUPLICATE_ACCOUNT_NAME",
				"An account with this name already exists")
		}
		return translateError(err)
	}
	return nil
}

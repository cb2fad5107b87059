package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/pos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPaymentRepository implements sales.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment method by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Payment, error) {
	var payment sales.Payment
	if err := r.db.WithContext(ctx).
		First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &payment, nil
}

// FindAll lists payment methods with pagination
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Payment, error) {
	var payments []sales.Payment
	query := r.db.WithContext(ctx).Model(&sales.Payment{})

	if active, ok := filter.Filters["active"]; ok {
		query = query.Where("active = ?", active)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Order("name ASC").Find(&payments).Error; err != nil {
		return nil, translateError(err)
	}
	return payments, nil
}

// Save creates or updates a payment method
func (r *GormPaymentRepository) Save(ctx context.Context, payment *sales.Payment) error {
	if err := r.db.WithContext(ctx).Save(payment).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.NewDomainError("DUPLICATE_PAYMENT_NAME",
				"A payment method with this name already exists")
		}
		return translateError(err)
	}
	return nil
}

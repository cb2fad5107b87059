package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// OrderRepository provides persistence for orders and their links
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, order *Order) error
	Save(ctx context.Context, order *Order) error
	DeleteItemsByOrder(ctx context.Context, orderID uuid.UUID) error
	CreateItems(ctx context.Context, items []OrderItem) error
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)
	ExistsByReceiptNumber(ctx context.Context, receiptNumber string) (bool, error)
	SavePayment(ctx context.Context, payment *OrderPayment) error
	DeletePaymentByOrder(ctx context.Context, orderID uuid.UUID) error
	SaveCustomerLink(ctx context.Context, link *CustomerOrder) error
	DeleteCustomerLinkByOrder(ctx context.Context, orderID uuid.UUID) error
}

// PaymentRepository provides persistence for payment methods
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Payment, error)
	Save(ctx context.Context, payment *Payment) error
}

// CustomerRepository provides persistence for customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)
	Save(ctx context.Context, customer *Customer) error
}

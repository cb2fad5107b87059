package sales

import (
	"strings"

	"github.com/pos/backend/internal/domain/shared"
)

// Payment is a master-data payment method (cash, card, mobile wallet, ...)
type Payment struct {
	shared.BaseAggregateRoot
	Name   string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Active bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a new payment method
func NewPayment(name string) (*Payment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Payment name cannot be empty")
	}
	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Active:            true,
	}, nil
}

// Customer is master data for a known customer
type Customer struct {
	shared.BaseAggregateRoot
	Name  string `gorm:"type:varchar(200);not null"`
	Phone string `gorm:"type:varchar(30);index"`
	Email string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer
func NewCustomer(name string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}

package sales

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle status of a sale.
// Orders placed through this flow have no draft state: they are created as
// completed sales and only leave that state by being voided.
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusVoided    OrderStatus = "VOIDED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	return s == OrderStatusCompleted || s == OrderStatusVoided
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem represents a line item in an order.
// Items are immutable once the order is finalized except via the
// full replace-on-update flow.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates a new order line item
func NewOrderItem(orderID, itemID uuid.UUID, quantity, price decimal.Decimal) (*OrderItem, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if quantity.LessThan(decimal.NewFromInt(1)) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	now := time.Now()
	return &OrderItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		ItemID:    itemID,
		Quantity:  quantity,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Amount returns the line total
func (i *OrderItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.Price)
}

// OrderPayment links an order to the payment method used to settle it
type OrderPayment struct {
	ID        uuid.UUID
	OrderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PaymentID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (OrderPayment) TableName() string {
	return "order_payments"
}

// CustomerOrder optionally links an order to a known customer
type CustomerOrder struct {
	ID         uuid.UUID
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
}

// TableName returns the table name for GORM
func (CustomerOrder) TableName() string {
	return "customer_orders"
}

// Order represents a completed sale.
// OrderNumber and ReceiptNumber are globally unique; a duplicate is a client
// error, not a server fault. Orders are hard rows: no soft delete.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber    string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	ReceiptNumber  string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	StoreID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderDate      time.Time       `gorm:"not null;index"`
	CustomerTypeID *uuid.UUID      `gorm:"type:uuid"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Tip            decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Discount       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	GroundTotal    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status         OrderStatus     `gorm:"type:varchar(20);not null"`
	IsSynced       bool            `gorm:"not null;default:false"`

	Items []OrderItem `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderDescriptor carries the order-level fields of a placement request
type OrderDescriptor struct {
	OrderNumber    string
	ReceiptNumber  string
	StoreID        uuid.UUID
	OrderDate      time.Time
	CustomerTypeID *uuid.UUID
	TotalAmount    decimal.Decimal
	Tip            decimal.Decimal
	Discount       decimal.Decimal
	GroundTotal    decimal.Decimal
}

// NewOrder creates a completed order from a descriptor
func NewOrder(desc OrderDescriptor) (*Order, error) {
	orderNumber := strings.TrimSpace(desc.OrderNumber)
	receiptNumber := strings.TrimSpace(desc.ReceiptNumber)
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if receiptNumber == "" {
		return nil, shared.NewDomainError("INVALID_RECEIPT_NUMBER", "Receipt number cannot be empty")
	}
	if desc.StoreID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	if desc.TotalAmount.IsNegative() || desc.Tip.IsNegative() || desc.Discount.IsNegative() || desc.GroundTotal.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Monetary amounts cannot be negative")
	}

	orderDate := desc.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		ReceiptNumber:     receiptNumber,
		StoreID:           desc.StoreID,
		OrderDate:         orderDate,
		CustomerTypeID:    desc.CustomerTypeID,
		TotalAmount:       desc.TotalAmount,
		Tip:               desc.Tip,
		Discount:          desc.Discount,
		GroundTotal:       desc.GroundTotal,
		Status:            OrderStatusCompleted,
		Items:             make([]OrderItem, 0),
	}, nil
}

// AddItem appends a validated line item to the order
func (o *Order) AddItem(itemID uuid.UUID, quantity, price decimal.Decimal) (*OrderItem, error) {
	item, err := NewOrderItem(o.ID, itemID, quantity, price)
	if err != nil {
		return nil, err
	}
	o.Items = append(o.Items, *item)
	return item, nil
}

// ReplaceItems swaps the full item list (delete-then-reinsert update flow)
func (o *Order) ReplaceItems(items []OrderItem) error {
	if len(items) == 0 {
		return shared.NewDomainError("EMPTY_ORDER", "Order must have at least one line item")
	}
	o.Items = items
	o.UpdatedAt = time.Now()
	o.IsSynced = false
	o.IncrementVersion()
	return nil
}

// ApplyDescriptor overwrites the order-level fields during a full update
func (o *Order) ApplyDescriptor(desc OrderDescriptor) error {
	if desc.TotalAmount.IsNegative() || desc.Tip.IsNegative() || desc.Discount.IsNegative() || desc.GroundTotal.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Monetary amounts cannot be negative")
	}
	if !desc.OrderDate.IsZero() {
		o.OrderDate = desc.OrderDate
	}
	o.CustomerTypeID = desc.CustomerTypeID
	o.TotalAmount = desc.TotalAmount
	o.Tip = desc.Tip
	o.Discount = desc.Discount
	o.GroundTotal = desc.GroundTotal
	o.UpdatedAt = time.Now()
	o.IsSynced = false
	o.IncrementVersion()
	return nil
}

// ItemsTotal returns the sum of all line amounts
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].Amount())
	}
	return total
}

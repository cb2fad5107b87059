package purchasing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending   PurchaseOrderStatus = "PENDING"
	PurchaseOrderStatusDraft     PurchaseOrderStatus = "DRAFT"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderStatusPaid      PurchaseOrderStatus = "PAID"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusPending, PurchaseOrderStatusDraft, PurchaseOrderStatusReceived,
		PurchaseOrderStatusPaid, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// CanReceive returns true if goods can still be received against this status
func (s PurchaseOrderStatus) CanReceive() bool {
	return s == PurchaseOrderStatusPending || s == PurchaseOrderStatusDraft
}

// PurchaseOrderItem represents a line item on a purchase order
type PurchaseOrderItem struct {
	ID           uuid.UUID
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitID       *uuid.UUID      `gorm:"type:uuid"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitCost     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Tax          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// NewPurchaseOrderItem creates a new purchase order line item
func NewPurchaseOrderItem(orderID, itemID uuid.UUID, quantity, unitCost, sellingPrice, tax decimal.Decimal) (*PurchaseOrderItem, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}
	if sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}
	if tax.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TAX", "Tax cannot be negative")
	}

	now := time.Now()
	return &PurchaseOrderItem{
		ID:           uuid.New(),
		OrderID:      orderID,
		ItemID:       itemID,
		Quantity:     quantity,
		UnitCost:     unitCost,
		SellingPrice: sellingPrice,
		Tax:          tax,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Amount returns the line total including tax
func (i *PurchaseOrderItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.UnitCost).Add(i.Tax)
}

// PurchaseOrder represents an order placed with a supplier.
// TotalAmount is derived as the sum of line amounts and recomputed on every
// item mutation rather than accepted from the caller.
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	OrderNumber string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	VendorID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	StoreID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	OrderDate   time.Time           `gorm:"not null"`
	Status      PurchaseOrderStatus `gorm:"type:varchar(20);not null"`
	TotalAmount decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	Remark      string              `gorm:"type:text"`

	Items []PurchaseOrderItem `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a new pending purchase order
func NewPurchaseOrder(orderNumber string, vendorID, storeID uuid.UUID, orderDate time.Time) (*PurchaseOrder, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	return &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		VendorID:          vendorID,
		StoreID:           storeID,
		OrderDate:         orderDate,
		Status:            PurchaseOrderStatusPending,
		TotalAmount:       decimal.Zero,
		Items:             make([]PurchaseOrderItem, 0),
	}, nil
}

// AddItem appends a line item and recalculates the derived total
func (o *PurchaseOrder) AddItem(itemID uuid.UUID, quantity, unitCost, sellingPrice, tax decimal.Decimal) (*PurchaseOrderItem, error) {
	item, err := NewPurchaseOrderItem(o.ID, itemID, quantity, unitCost, sellingPrice, tax)
	if err != nil {
		return nil, err
	}
	o.Items = append(o.Items, *item)
	o.recalculateTotal()
	return item, nil
}

// MarkReceived flips the order to Received.
// Receiving against an order that is already Received, Paid, or Cancelled is
// a business-rule violation; this status guard is what prevents a GRN from
// posting stock and ledger twice for the same purchase order.
func (o *PurchaseOrder) MarkReceived() error {
	if !o.Status.CanReceive() {
		return shared.NewDomainErrorWithDetails("PO_ALREADY_RECEIVED",
			"Purchase order "+o.OrderNumber+" cannot be received in status "+o.Status.String(),
			map[string]any{"order_number": o.OrderNumber, "status": o.Status.String()})
	}
	o.Status = PurchaseOrderStatusReceived
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// MarkPaid flips a received order to Paid
func (o *PurchaseOrder) MarkPaid() error {
	if o.Status != PurchaseOrderStatusReceived {
		return shared.NewDomainError("INVALID_STATE", "Only received purchase orders can be marked paid")
	}
	o.Status = PurchaseOrderStatusPaid
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// Cancel cancels an order that has not been received yet
func (o *PurchaseOrder) Cancel() error {
	if !o.Status.CanReceive() {
		return shared.NewDomainError("INVALID_STATE", "Cannot cancel a purchase order in status "+o.Status.String())
	}
	o.Status = PurchaseOrderStatusCancelled
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

func (o *PurchaseOrder) recalculateTotal() {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].Amount())
	}
	o.TotalAmount = total
	o.UpdatedAt = time.Now()
}

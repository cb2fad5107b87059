package purchasing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// GRNStatus represents the status of a goods receipt note
type GRNStatus string

const (
	GRNStatusPending  GRNStatus = "PENDING"
	GRNStatusReceived GRNStatus = "RECEIVED"
)

// IsValid checks if the status is a valid GRNStatus
func (s GRNStatus) IsValid() bool {
	return s == GRNStatusPending || s == GRNStatusReceived
}

// ItemCondition describes the physical condition of received goods
type ItemCondition string

const (
	ItemConditionGood    ItemCondition = "GOOD"
	ItemConditionDamaged ItemCondition = "DAMAGED"
)

// GoodReceiptNoteItem records per-item quantities at the time of receipt
type GoodReceiptNoteItem struct {
	ID               uuid.UUID
	NoteID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitID           *uuid.UUID      `gorm:"type:uuid"`
	OrderedQuantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ReceivedQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	AcceptedQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	RejectedQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SellingPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Condition        ItemCondition   `gorm:"type:varchar(20);not null;default:'GOOD'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName returns the table name for GORM
func (GoodReceiptNoteItem) TableName() string {
	return "good_receipt_note_items"
}

// GRNItemInput carries the per-item fields of a receiving request
type GRNItemInput struct {
	ItemID           uuid.UUID
	UnitID           *uuid.UUID
	OrderedQuantity  decimal.Decimal
	ReceivedQuantity decimal.Decimal
	AcceptedQuantity decimal.Decimal
	RejectedQuantity decimal.Decimal
	UnitPrice        decimal.Decimal
	SellingPrice     decimal.Decimal
	Condition        ItemCondition
}

// NewGoodReceiptNoteItem validates and creates a GRN line item
func NewGoodReceiptNoteItem(noteID uuid.UUID, in GRNItemInput) (*GoodReceiptNoteItem, error) {
	if in.ItemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if in.ReceivedQuantity.IsNegative() || in.AcceptedQuantity.IsNegative() || in.RejectedQuantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantities cannot be negative")
	}
	if in.AcceptedQuantity.Add(in.RejectedQuantity).GreaterThan(in.ReceivedQuantity) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Accepted plus rejected cannot exceed received quantity")
	}
	if in.UnitPrice.IsNegative() || in.SellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}
	condition := in.Condition
	if condition == "" {
		condition = ItemConditionGood
	}

	now := time.Now()
	return &GoodReceiptNoteItem{
		ID:               uuid.New(),
		NoteID:           noteID,
		ItemID:           in.ItemID,
		UnitID:           in.UnitID,
		OrderedQuantity:  in.OrderedQuantity,
		ReceivedQuantity: in.ReceivedQuantity,
		AcceptedQuantity: in.AcceptedQuantity,
		RejectedQuantity: in.RejectedQuantity,
		UnitPrice:        in.UnitPrice,
		SellingPrice:     in.SellingPrice,
		Condition:        condition,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// GoodReceiptNote records goods physically received against a purchase order.
// On transition to Received it triggers the stock increment and cost/price
// propagation inside the receiving transaction.
type GoodReceiptNote struct {
	shared.BaseAggregateRoot
	NoteNumber      string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	PurchaseOrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	StoreID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceivedDate    time.Time `gorm:"not null"`
	Status          GRNStatus `gorm:"type:varchar(20);not null"`
	Reference       string    `gorm:"type:varchar(100)"`

	Items []GoodReceiptNoteItem `gorm:"foreignKey:NoteID;references:ID"`
}

// TableName returns the table name for GORM
func (GoodReceiptNote) TableName() string {
	return "good_receipt_notes"
}

// NewGoodReceiptNote creates a GRN against a purchase order
func NewGoodReceiptNote(noteNumber string, purchaseOrderID, storeID uuid.UUID, receivedDate time.Time, status GRNStatus) (*GoodReceiptNote, error) {
	noteNumber = strings.TrimSpace(noteNumber)
	if noteNumber == "" {
		return nil, shared.NewDomainError("INVALID_NOTE_NUMBER", "Note number cannot be empty")
	}
	if purchaseOrderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PURCHASE_ORDER", "Purchase order ID cannot be empty")
	}
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "GRN status must be PENDING or RECEIVED")
	}
	if receivedDate.IsZero() {
		receivedDate = time.Now()
	}

	return &GoodReceiptNote{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		NoteNumber:        noteNumber,
		PurchaseOrderID:   purchaseOrderID,
		StoreID:           storeID,
		ReceivedDate:      receivedDate,
		Status:            status,
		Items:             make([]GoodReceiptNoteItem, 0),
	}, nil
}

// AddItem appends a validated line item to the note
func (n *GoodReceiptNote) AddItem(in GRNItemInput) (*GoodReceiptNoteItem, error) {
	item, err := NewGoodReceiptNoteItem(n.ID, in)
	if err != nil {
		return nil, err
	}
	n.Items = append(n.Items, *item)
	return item, nil
}

// IsReceived reports whether the note carries receiving side effects
func (n *GoodReceiptNote) IsReceived() bool {
	return n.Status == GRNStatusReceived
}

// AcceptedTotal returns the total value of accepted goods on the note
func (n *GoodReceiptNote) AcceptedTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range n.Items {
		total = total.Add(n.Items[i].AcceptedQuantity.Mul(n.Items[i].UnitPrice))
	}
	return total
}

package purchasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/purchasing"
	"github.com/shopspring/decimal"
)

// PurchaseOrderLineInput is one line of a purchase order creation request
type PurchaseOrderLineInput struct {
	ItemID       uuid.UUID
	UnitID       *uuid.UUID
	Quantity     decimal.Decimal
	UnitCost     decimal.Decimal
	SellingPrice decimal.Decimal
	Tax          decimal.Decimal
}

// CreatePurchaseOrderRequest is the application-level PO creation request
type CreatePurchaseOrderRequest struct {
	OrderNumber string
	VendorID    uuid.UUID
	StoreID     uuid.UUID
	OrderDate   time.Time
	Remark      string
	Items       []PurchaseOrderLineInput
}

// PurchaseOrderItemResponse is a line item in PO read responses
type PurchaseOrderItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	ItemID       uuid.UUID       `json:"item_id"`
	UnitID       *uuid.UUID      `json:"unit_id,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Tax          decimal.Decimal `json:"tax"`
	Amount       decimal.Decimal `json:"amount"`
}

// PurchaseOrderResponse is the full PO read model
type PurchaseOrderResponse struct {
	ID          uuid.UUID                   `json:"id"`
	OrderNumber string                      `json:"order_number"`
	VendorID    uuid.UUID                   `json:"vendor_id"`
	StoreID     uuid.UUID                   `json:"store_id"`
	OrderDate   time.Time                   `json:"order_date"`
	Status      string                      `json:"status"`
	TotalAmount decimal.Decimal             `json:"total_amount"`
	Remark      string                      `json:"remark,omitempty"`
	Items       []PurchaseOrderItemResponse `json:"items"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
	Version     int                         `json:"version"`
}

// PurchaseOrderListFilter holds list query parameters
type PurchaseOrderListFilter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	VendorID *uuid.UUID
	StoreID  *uuid.UUID
	Status   *string
}

// ToPurchaseOrderResponse maps a domain purchase order to its read model
func ToPurchaseOrderResponse(order *purchasing.PurchaseOrder) PurchaseOrderResponse {
	items := make([]PurchaseOrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		it := &order.Items[i]
		items = append(items, PurchaseOrderItemResponse{
			ID:           it.ID,
			ItemID:       it.ItemID,
			UnitID:       it.UnitID,
			Quantity:     it.Quantity,
			UnitCost:     it.UnitCost,
			SellingPrice: it.SellingPrice,
			Tax:          it.Tax,
			Amount:       it.Amount(),
		})
	}
	return PurchaseOrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		VendorID:    order.VendorID,
		StoreID:     order.StoreID,
		OrderDate:   order.OrderDate,
		Status:      order.Status.String(),
		TotalAmount: order.TotalAmount,
		Remark:      order.Remark,
		Items:       items,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
		Version:     order.Version,
	}
}

// ReceiveGoodsLineInput is one line of a goods receipt request
type ReceiveGoodsLineInput struct {
	ItemID           uuid.UUID
	UnitID           *uuid.UUID
	OrderedQuantity  decimal.Decimal
	ReceivedQuantity decimal.Decimal
	AcceptedQuantity decimal.Decimal
	RejectedQuantity decimal.Decimal
	UnitPrice        decimal.Decimal
	SellingPrice     decimal.Decimal
	Condition        string
}

// ReceiveGoodsRequest is the application-level goods receipt request
type ReceiveGoodsRequest struct {
	NoteNumber      string
	PurchaseOrderID uuid.UUID
	StoreID         uuid.UUID
	ReceivedDate    time.Time
	Status          string
	Reference       string
	Items           []ReceiveGoodsLineInput
}

// GRNItemResponse is a line item in GRN read responses
type GRNItemResponse struct {
	ID               uuid.UUID       `json:"id"`
	ItemID           uuid.UUID       `json:"item_id"`
	UnitID           *uuid.UUID      `json:"unit_id,omitempty"`
	OrderedQuantity  decimal.Decimal `json:"ordered_quantity"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	AcceptedQuantity decimal.Decimal `json:"accepted_quantity"`
	RejectedQuantity decimal.Decimal `json:"rejected_quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	SellingPrice     decimal.Decimal `json:"selling_price"`
	Condition        string          `json:"condition"`
}

// GRNResponse is the full GRN read model
type GRNResponse struct {
	ID              uuid.UUID         `json:"id"`
	NoteNumber      string            `json:"note_number"`
	PurchaseOrderID uuid.UUID         `json:"purchase_order_id"`
	StoreID         uuid.UUID         `json:"store_id"`
	ReceivedDate    time.Time         `json:"received_date"`
	Status          string            `json:"status"`
	Reference       string            `json:"reference,omitempty"`
	Items           []GRNItemResponse `json:"items"`
	CreatedAt       time.Time         `json:"created_at"`
}

// ToGRNResponse maps a domain GRN to its read model
func ToGRNResponse(note *purchasing.GoodReceiptNote) GRNResponse {
	items := make([]GRNItemResponse, 0, len(note.Items))
	for i := range note.Items {
		it := &note.Items[i]
		items = append(items, GRNItemResponse{
			ID:               it.ID,
			ItemID:           it.ItemID,
			UnitID:           it.UnitID,
			OrderedQuantity:  it.OrderedQuantity,
			ReceivedQuantity: it.ReceivedQuantity,
			AcceptedQuantity: it.AcceptedQuantity,
			RejectedQuantity: it.RejectedQuantity,
			UnitPrice:        it.UnitPrice,
			SellingPrice:     it.SellingPrice,
			Condition:        string(it.Condition),
		})
	}
	return GRNResponse{
		ID:              note.ID,
		NoteNumber:      note.NoteNumber,
		PurchaseOrderID: note.PurchaseOrderID,
		StoreID:         note.StoreID,
		ReceivedDate:    note.ReceivedDate,
		Status:          string(note.Status),
		Reference:       note.Reference,
		Items:           items,
		CreatedAt:       note.CreatedAt,
	}
}

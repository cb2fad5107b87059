package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// PlaceOrderLineInput is one cart line of a placement request
type PlaceOrderLineInput struct {
	ItemID   uuid.UUID
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

// PlaceOrderRequest is the application-level order placement request
type PlaceOrderRequest struct {
	OrderNumber    string
	ReceiptNumber  string
	OrderDate      time.Time
	StoreID        uuid.UUID
	CustomerTypeID *uuid.UUID
	TotalAmount    decimal.Decimal
	Tip            decimal.Decimal
	Discount       decimal.Decimal
	GroundTotal    decimal.Decimal
	Items          []PlaceOrderLineInput
	PaymentID      uuid.UUID
	CustomerID     *uuid.UUID
}

// PlaceOrderResponse carries the identifier of the created order
type PlaceOrderResponse struct {
	OrderID uuid.UUID `json:"order_id"`
}

// OrderItemResponse is a line item in order read responses
type OrderItemResponse struct {
	ID       uuid.UUID       `json:"id"`
	ItemID   uuid.UUID       `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Amount   decimal.Decimal `json:"amount"`
}

// OrderResponse is the full order read model
type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	OrderNumber    string              `json:"order_number"`
	ReceiptNumber  string              `json:"receipt_number"`
	StoreID        uuid.UUID           `json:"store_id"`
	OrderDate      time.Time           `json:"order_date"`
	CustomerTypeID *uuid.UUID          `json:"customer_type_id,omitempty"`
	TotalAmount    decimal.Decimal     `json:"total_amount"`
	Tip            decimal.Decimal     `json:"tip"`
	Discount       decimal.Decimal     `json:"discount"`
	GroundTotal    decimal.Decimal     `json:"ground_total"`
	Status         string              `json:"status"`
	Items          []OrderItemResponse `json:"items"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Version        int                 `json:"version"`
}

// OrderListFilter holds list query parameters
type OrderListFilter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	StoreID  *uuid.UUID
	DateFrom *time.Time
	DateTo   *time.Time
}

// ToOrderResponse maps a domain order to its read model
func ToOrderResponse(order *sales.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		it := &order.Items[i]
		items = append(items, OrderItemResponse{
			ID:       it.ID,
			ItemID:   it.ItemID,
			Quantity: it.Quantity,
			Price:    it.Price,
			Amount:   it.Amount(),
		})
	}
	return OrderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		ReceiptNumber:  order.ReceiptNumber,
		StoreID:        order.StoreID,
		OrderDate:      order.OrderDate,
		CustomerTypeID: order.CustomerTypeID,
		TotalAmount:    order.TotalAmount,
		Tip:            order.Tip,
		Discount:       order.Discount,
		GroundTotal:    order.GroundTotal,
		Status:         order.Status.String(),
		Items:          items,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
		Version:        order.Version,
	}
}

package purchasing

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// PurchaseOrderRepository provides persistence for purchase orders
type PurchaseOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	// FindByIDForUpdate fetches the purchase order with a row lock so the
	// status guard in the receiving transaction cannot race a concurrent GRN.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*PurchaseOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, order *PurchaseOrder) error
	Save(ctx context.Context, order *PurchaseOrder) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status PurchaseOrderStatus) error
}

// GoodReceiptNoteRepository provides persistence for GRNs
type GoodReceiptNoteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GoodReceiptNote, error)
	FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]GoodReceiptNote, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]GoodReceiptNote, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, note *GoodReceiptNote) error
}

// ItemCostRepository upserts the rolling purchase cost rows
type ItemCostRepository interface {
	FindByKey(ctx context.Context, itemID, storeID uuid.UUID, unitID *uuid.UUID) (*ItemCost, error)
	Upsert(ctx context.Context, cost *ItemCost) error
}

// ItemPriceRepository upserts the rolling selling price rows
type ItemPriceRepository interface {
	FindByKey(ctx context.Context, itemID, storeID uuid.UUID, unitID *uuid.UUID) (*ItemPrice, error)
	Upsert(ctx context.Context, price *ItemPrice) error
}

// VendorRepository provides persistence for vendors
type VendorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Vendor, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Vendor, error)
	Save(ctx context.Context, vendor *Vendor) error
}

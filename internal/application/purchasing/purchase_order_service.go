package purchasing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/purchasing"
	"github.com/pos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PurchaseOrderService handles purchase order creation and queries
type PurchaseOrderService struct {
	orderRepo  purchasing.PurchaseOrderRepository
	vendorRepo purchasing.VendorRepository
	storeRepo  inventory.StoreRepository
	itemRepo   catalog.ItemRepository
	logger     *zap.Logger
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	orderRepo purchasing.PurchaseOrderRepository,
	vendorRepo purchasing.VendorRepository,
	storeRepo inventory.StoreRepository,
	itemRepo catalog.ItemRepository,
	logger *zap.Logger,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:  orderRepo,
		vendorRepo: vendorRepo,
		storeRepo:  storeRepo,
		itemRepo:   itemRepo,
		logger:     logger,
	}
}

// Create records a new pending purchase order. The total amount is derived
// from the line items, never taken from the request.
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_PURCHASE_ORDER", "Purchase order must have at least one line item")
	}

	if _, err := s.vendorRepo.FindByID(ctx, req.VendorID); err != nil {
		return nil, shared.NewDomainError("VENDOR_NOT_FOUND", fmt.Sprintf("Vendor %s does not exist", req.VendorID))
	}
	if _, err := s.storeRepo.FindByID(ctx, req.StoreID); err != nil {
		return nil, shared.NewDomainError("STORE_NOT_FOUND", fmt.Sprintf("Store %s does not exist", req.StoreID))
	}
	if err := s.validateItems(ctx, req.Items); err != nil {
		return nil, err
	}

	exists, err := s.orderRepo.FindByOrderNumber(ctx, req.OrderNumber)
	if err == nil && exists != nil {
		return nil, shared.NewDomainErrorWithDetails("DUPLICATE_ORDER_NUMBER",
			fmt.Sprintf("Purchase order number %s already exists", req.OrderNumber),
			map[string]any{"order_number": req.OrderNumber})
	}

	order, err := purchasing.NewPurchaseOrder(req.OrderNumber, req.VendorID, req.StoreID, req.OrderDate)
	if err != nil {
		return nil, err
	}
	order.Remark = req.Remark
	for _, line := range req.Items {
		if _, err := order.AddItem(line.ItemID, line.Quantity, line.UnitCost, line.SellingPrice, line.Tax); err != nil {
			return nil, err
		}
	}
	// AddItem copies the line into the aggregate; unit ids are applied to
	// the stored copies afterwards.
	for i := range order.Items {
		order.Items[i].UnitID = req.Items[i].UnitID
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("purchase order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.String("vendor_id", order.VendorID.String()),
		zap.String("total_amount", order.TotalAmount.String()))

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List retrieves purchase orders with filtering and pagination
func (s *PurchaseOrderService) List(ctx context.Context, filter PurchaseOrderListFilter) ([]PurchaseOrderResponse, int64, error) {
	repoFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		repoFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		repoFilter.OrderDir = filter.OrderDir
	}
	if filter.VendorID != nil {
		repoFilter.Filters["vendor_id"] = *filter.VendorID
	}
	if filter.StoreID != nil {
		repoFilter.Filters["store_id"] = *filter.StoreID
	}
	if filter.Status != nil {
		repoFilter.Filters["status"] = *filter.Status
	}

	orders, err := s.orderRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToPurchaseOrderResponse(&orders[i]))
	}
	return responses, total, nil
}

// MarkPaid flips a received purchase order to paid
func (s *PurchaseOrderService) MarkPaid(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.MarkPaid(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Cancel cancels a purchase order that has not been received yet
func (s *PurchaseOrderService) Cancel(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Cancel(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

func (s *PurchaseOrderService) validateItems(ctx context.Context, lines []PurchaseOrderLineInput) error {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ItemID)
	}
	items, err := s.itemRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	found := make(map[uuid.UUID]struct{}, len(items))
	for i := range items {
		found[items[i].ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return shared.NewDomainError("ITEM_NOT_FOUND", fmt.Sprintf("Item %s does not exist", id))
		}
	}
	return nil
}

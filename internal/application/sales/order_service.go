package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// maxPlacementAttempts bounds the retry loop for transient storage
	// contention (serialization failures, deadlocks). Each attempt re-runs
	// the full validate-then-write body with fresh reads.
	maxPlacementAttempts = 5

	// submissionGuardTTL is how long a submitted order number is remembered
	// on the duplicate-submission fast path.
	submissionGuardTTL = 10 * time.Minute
)

// OrderService handles order placement, update, and queries
type OrderService struct {
	orderRepo     sales.OrderRepository
	itemRepo      catalog.ItemRepository
	storeRepo     inventory.StoreRepository
	paymentRepo   sales.PaymentRepository
	customerRepo  sales.CustomerRepository
	itemStockRepo inventory.ItemStockRepository
	txScope       TransactionScope
	guard         shared.SubmissionGuard
	guardTTL      time.Duration
	logger        *zap.Logger
}

// SetSubmissionGuardTTL overrides how long submitted order numbers are
// held against resubmission. Zero or negative values are ignored.
func (s *OrderService) SetSubmissionGuardTTL(ttl time.Duration) {
	if ttl > 0 {
		s.guardTTL = ttl
	}
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo sales.OrderRepository,
	itemRepo catalog.ItemRepository,
	storeRepo inventory.StoreRepository,
	paymentRepo sales.PaymentRepository,
	customerRepo sales.CustomerRepository,
	itemStockRepo inventory.ItemStockRepository,
	txScope TransactionScope,
	guard shared.SubmissionGuard,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		itemRepo:      itemRepo,
		storeRepo:     storeRepo,
		paymentRepo:   paymentRepo,
		customerRepo:  customerRepo,
		itemStockRepo: itemStockRepo,
		txScope:       txScope,
		guard:         guard,
		guardTTL:      submissionGuardTTL,
		logger:        logger,
	}
}

// PlaceOrder records a completed sale and decrements stock for every line
// atomically. Either the order, all its line items, the payment link, and
// every stock decrement commit together, or nothing does.
//
// Stock checks before the transaction are advisory only; the conditional
// decrement inside the transaction is the authoritative guard, so two
// concurrent orders competing for the last units can never both succeed.
func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*PlaceOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must have at least one line item")
	}

	guardKey := ""
	if s.guard != nil {
		guardKey = "order:submit:" + req.OrderNumber
		fresh, err := s.guard.MarkSubmitted(ctx, guardKey, s.guardTTL)
		if err != nil {
			// The guard is a fast path; if it is unavailable the unique
			// constraints still protect us. Log and continue.
			s.logger.Warn("submission guard unavailable", zap.Error(err))
			guardKey = ""
		} else if !fresh {
			return nil, shared.NewDomainErrorWithDetails("DUPLICATE_ORDER_NUMBER",
				fmt.Sprintf("Order %s was already submitted", req.OrderNumber),
				map[string]any{"order_number": req.OrderNumber})
		}
	}

	resp, err := s.placeWithRetry(ctx, req)
	if err != nil && guardKey != "" {
		// Allow the client to retry after a failed placement.
		if relErr := s.guard.Release(ctx, guardKey); relErr != nil {
			s.logger.Warn("failed to release submission key", zap.String("key", guardKey), zap.Error(relErr))
		}
	}
	return resp, err
}

func (s *OrderService) placeWithRetry(ctx context.Context, req PlaceOrderRequest) (*PlaceOrderResponse, error) {
	var lastErr error
	for attempt := 1; attempt <= maxPlacementAttempts; attempt++ {
		resp, err := s.placeOnce(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !shared.IsTxConflict(err) {
			return nil, err
		}
		lastErr = err
		s.logger.Warn("order placement hit storage contention, retrying",
			zap.String("order_number", req.OrderNumber),
			zap.Int("attempt", attempt))
	}
	return nil, lastErr
}

// placeOnce runs one full validate-then-write pass. It is safe to call
// repeatedly: every read happens fresh inside the attempt.
func (s *OrderService) placeOnce(ctx context.Context, req PlaceOrderRequest) (*PlaceOrderResponse, error) {
	if err := s.validateReferences(ctx, req.StoreID, req.PaymentID, req.CustomerID, itemIDs(req.Items)); err != nil {
		return nil, err
	}
	if err := s.checkDuplicateNumbers(ctx, req.OrderNumber, req.ReceiptNumber); err != nil {
		return nil, err
	}

	order, err := sales.NewOrder(sales.OrderDescriptor{
		OrderNumber:    req.OrderNumber,
		ReceiptNumber:  req.ReceiptNumber,
		StoreID:        req.StoreID,
		OrderDate:      req.OrderDate,
		CustomerTypeID: req.CustomerTypeID,
		TotalAmount:    req.TotalAmount,
		Tip:            req.Tip,
		Discount:       req.Discount,
		GroundTotal:    req.GroundTotal,
	})
	if err != nil {
		return nil, err
	}
	for _, line := range req.Items {
		if _, err := order.AddItem(line.ItemID, line.Quantity, line.Price); err != nil {
			return nil, err
		}
	}

	// Advisory pre-check so the common case fails fast with a clear error
	// before opening a transaction. Not authoritative: stock may change
	// between here and the decrement below.
	lines, err := s.resolveStockLevels(ctx, req.StoreID, req.Items)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Orders().Create(ctx, order); err != nil {
			return err
		}
		for _, line := range lines {
			ok, err := repos.ItemStocks().DecrementQuantity(ctx, line.level.StockID, line.quantity)
			if err != nil {
				return err
			}
			if !ok {
				return s.insufficientStockError(ctx, repos.ItemStocks(), line)
			}
		}
		payment := &sales.OrderPayment{
			ID:        uuid.New(),
			OrderID:   order.ID,
			PaymentID: req.PaymentID,
			CreatedAt: time.Now(),
		}
		if err := repos.Orders().SavePayment(ctx, payment); err != nil {
			return err
		}
		if req.CustomerID != nil {
			link := &sales.CustomerOrder{
				ID:         uuid.New(),
				OrderID:    order.ID,
				CustomerID: *req.CustomerID,
				CreatedAt:  time.Now(),
			}
			if err := repos.Orders().SaveCustomerLink(ctx, link); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.String("store_id", order.StoreID.String()),
		zap.Int("lines", len(order.Items)))

	return &PlaceOrderResponse{OrderID: order.ID}, nil
}

// UpdateOrder replaces an order in full: order-level fields, the complete
// item list, the payment link, and the customer link. Stock is decremented
// again for every line of the new item list; quantities from the previous
// version are not credited back.
func (s *OrderService) UpdateOrder(ctx context.Context, orderID uuid.UUID, req PlaceOrderRequest) (*OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must have at least one line item")
	}

	var lastErr error
	for attempt := 1; attempt <= maxPlacementAttempts; attempt++ {
		resp, err := s.updateOnce(ctx, orderID, req)
		if err == nil {
			return resp, nil
		}
		if !shared.IsTxConflict(err) {
			return nil, err
		}
		lastErr = err
		s.logger.Warn("order update hit storage contention, retrying",
			zap.String("order_id", orderID.String()),
			zap.Int("attempt", attempt))
	}
	return nil, lastErr
}

func (s *OrderService) updateOnce(ctx context.Context, orderID uuid.UUID, req PlaceOrderRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.validateReferences(ctx, order.StoreID, req.PaymentID, req.CustomerID, itemIDs(req.Items)); err != nil {
		return nil, err
	}

	if err := order.ApplyDescriptor(sales.OrderDescriptor{
		OrderDate:      req.OrderDate,
		CustomerTypeID: req.CustomerTypeID,
		TotalAmount:    req.TotalAmount,
		Tip:            req.Tip,
		Discount:       req.Discount,
		GroundTotal:    req.GroundTotal,
	}); err != nil {
		return nil, err
	}

	newItems := make([]sales.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		item, err := sales.NewOrderItem(order.ID, line.ItemID, line.Quantity, line.Price)
		if err != nil {
			return nil, err
		}
		newItems = append(newItems, *item)
	}
	if err := order.ReplaceItems(newItems); err != nil {
		return nil, err
	}

	lines, err := s.resolveStockLevels(ctx, order.StoreID, req.Items)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Orders().DeleteItemsByOrder(ctx, order.ID); err != nil {
			return err
		}
		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}
		if err := repos.Orders().CreateItems(ctx, order.Items); err != nil {
			return err
		}
		for _, line := range lines {
			ok, err := repos.ItemStocks().DecrementQuantity(ctx, line.level.StockID, line.quantity)
			if err != nil {
				return err
			}
			if !ok {
				return s.insufficientStockError(ctx, repos.ItemStocks(), line)
			}
		}
		if err := repos.Orders().DeletePaymentByOrder(ctx, order.ID); err != nil {
			return err
		}
		payment := &sales.OrderPayment{
			ID:        uuid.New(),
			OrderID:   order.ID,
			PaymentID: req.PaymentID,
			CreatedAt: time.Now(),
		}
		if err := repos.Orders().SavePayment(ctx, payment); err != nil {
			return err
		}
		if err := repos.Orders().DeleteCustomerLinkByOrder(ctx, order.ID); err != nil {
			return err
		}
		if req.CustomerID != nil {
			link := &sales.CustomerOrder{
				ID:         uuid.New(),
				OrderID:    order.ID,
				CustomerID: *req.CustomerID,
				CreatedAt:  time.Now(),
			}
			if err := repos.Orders().SaveCustomerLink(ctx, link); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order updated",
		zap.String("order_id", order.ID.String()),
		zap.Int("lines", len(order.Items)))

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders with filtering and pagination
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
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
	if filter.StoreID != nil {
		repoFilter.Filters["store_id"] = *filter.StoreID
	}
	if filter.DateFrom != nil {
		repoFilter.Filters["date_from"] = *filter.DateFrom
	}
	if filter.DateTo != nil {
		repoFilter.Filters["date_to"] = *filter.DateTo
	}

	orders, err := s.orderRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}
	return responses, total, nil
}

// orderLine pairs a requested quantity with the stock row that will absorb it
type orderLine struct {
	itemID   uuid.UUID
	quantity decimal.Decimal
	level    *inventory.StockLevel
}

func (s *OrderService) resolveStockLevels(ctx context.Context, storeID uuid.UUID, items []PlaceOrderLineInput) ([]orderLine, error) {
	lines := make([]orderLine, 0, len(items))
	for _, input := range items {
		level, err := s.itemStockRepo.FindLevel(ctx, input.ItemID, storeID)
		if err != nil {
			return nil, err
		}
		if level == nil {
			return nil, shared.NewDomainErrorWithDetails("INSUFFICIENT_STOCK",
				fmt.Sprintf("Item %s is not stocked at this store", input.ItemID),
				map[string]any{
					"item_id":   input.ItemID.String(),
					"requested": input.Quantity.String(),
					"available": "0",
				})
		}
		if level.StockQuantity.LessThan(input.Quantity) {
			return nil, insufficientStock(input.ItemID, input.Quantity, level.StockQuantity)
		}
		lines = append(lines, orderLine{itemID: input.ItemID, quantity: input.Quantity, level: level})
	}
	return lines, nil
}

// insufficientStockError builds the authoritative insufficient-stock error
// after a conditional decrement affected zero rows, re-reading the current
// quantity inside the same transaction so the reported availability is exact.
func (s *OrderService) insufficientStockError(ctx context.Context, itemStocks inventory.ItemStockRepository, line orderLine) error {
	available := line.level.StockQuantity
	if current, err := itemStocks.FindByStockID(ctx, line.level.StockID); err == nil && current != nil {
		available = current.StockQuantity
	}
	return insufficientStock(line.itemID, line.quantity, available)
}

func insufficientStock(itemID uuid.UUID, requested, available decimal.Decimal) error {
	return shared.NewDomainErrorWithDetails("INSUFFICIENT_STOCK",
		fmt.Sprintf("Insufficient stock for item %s: requested %s, available %s",
			itemID, requested, available),
		map[string]any{
			"item_id":   itemID.String(),
			"requested": requested.String(),
			"available": available.String(),
		})
}

func (s *OrderService) validateReferences(ctx context.Context, storeID, paymentID uuid.UUID, customerID *uuid.UUID, ids []uuid.UUID) error {
	if _, err := s.storeRepo.FindByID(ctx, storeID); err != nil {
		return shared.NewDomainError("STORE_NOT_FOUND", fmt.Sprintf("Store %s does not exist", storeID))
	}
	if _, err := s.paymentRepo.FindByID(ctx, paymentID); err != nil {
		return shared.NewDomainError("PAYMENT_NOT_FOUND", fmt.Sprintf("Payment method %s does not exist", paymentID))
	}
	if customerID != nil {
		if _, err := s.customerRepo.FindByID(ctx, *customerID); err != nil {
			return shared.NewDomainError("CUSTOMER_NOT_FOUND", fmt.Sprintf("Customer %s does not exist", *customerID))
		}
	}

	items, err := s.itemRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	found := make(map[uuid.UUID]*catalog.Item, len(items))
	for i := range items {
		found[items[i].ID] = &items[i]
	}
	for _, id := range ids {
		item, ok := found[id]
		if !ok {
			return shared.NewDomainError("ITEM_NOT_FOUND", fmt.Sprintf("Item %s does not exist", id))
		}
		if !item.IsActive() {
			return shared.NewDomainError("ITEM_INACTIVE", fmt.Sprintf("Item %s is not active", id))
		}
	}
	return nil
}

func (s *OrderService) checkDuplicateNumbers(ctx context.Context, orderNumber, receiptNumber string) error {
	exists, err := s.orderRepo.ExistsByOrderNumber(ctx, orderNumber)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainErrorWithDetails("DUPLICATE_ORDER_NUMBER",
			fmt.Sprintf("Order number %s already exists", orderNumber),
			map[string]any{"order_number": orderNumber})
	}
	exists, err = s.orderRepo.ExistsByReceiptNumber(ctx, receiptNumber)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainErrorWithDetails("DUPLICATE_RECEIPT_NUMBER",
			fmt.Sprintf("Receipt number %s already exists", receiptNumber),
			map[string]any{"receipt_number": receiptNumber})
	}
	return nil
}

func itemIDs(items []PlaceOrderLineInput) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ItemID)
	}
	return ids
}

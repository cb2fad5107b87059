package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	salesapp "github.com/pos/backend/internal/application/sales"
)

// OrderHandler handles sales order API endpoints
type OrderHandler struct {
	BaseHandler
	orderService *salesapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *salesapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrderItemInput is one cart line of a placement request body
type PlaceOrderItemInput struct {
	ItemID   string  `json:"item_id" binding:"required,uuid"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Price    float64 `json:"price" binding:"required,gte=0"`
}

// PlaceOrderRequest is the request body for placing or updating an order
type PlaceOrderRequest struct {
	OrderNumber    string                `json:"order_number" binding:"required,min=1,max=50"`
	ReceiptNumber  string                `json:"receipt_number" binding:"required,min=1,max=50"`
	OrderDate      time.Time             `json:"order_date" binding:"required"`
	StoreID        string                `json:"store_id" binding:"required,uuid"`
	CustomerTypeID *string               `json:"customer_type_id" binding:"omitempty,uuid"`
	TotalAmount    float64               `json:"total_amount" binding:"gte=0"`
	Tip            float64               `json:"tip" binding:"gte=0"`
	Discount       float64               `json:"discount" binding:"gte=0"`
	GroundTotal    float64               `json:"ground_total" binding:"gte=0"`
	PaymentID      string                `json:"payment_id" binding:"required,uuid"`
	CustomerID     *string               `json:"customer_id" binding:"omitempty,uuid"`
	Items          []PlaceOrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// ListOrdersRequest holds order listing query parameters
type ListOrdersRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	StoreID  string `form:"store_id" binding:"omitempty,uuid"`
	DateFrom string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}

func (r *PlaceOrderRequest) toApp() (salesapp.PlaceOrderRequest, error) {
	storeID, err := uuid.Parse(r.StoreID)
	if err != nil {
		return salesapp.PlaceOrderRequest{}, err
	}
	paymentID, err := uuid.Parse(r.PaymentID)
	if err != nil {
		return salesapp.PlaceOrderRequest{}, err
	}
	customerTypeID, err := parseOptionalUUID(r.CustomerTypeID)
	if err != nil {
		return salesapp.PlaceOrderRequest{}, err
	}
	customerID, err := parseOptionalUUID(r.CustomerID)
	if err != nil {
		return salesapp.PlaceOrderRequest{}, err
	}

	appReq := salesapp.PlaceOrderRequest{
		OrderNumber:    r.OrderNumber,
		ReceiptNumber:  r.ReceiptNumber,
		OrderDate:      r.OrderDate,
		StoreID:        storeID,
		CustomerTypeID: customerTypeID,
		TotalAmount:    toDecimal(r.TotalAmount),
		Tip:            toDecimal(r.Tip),
		Discount:       toDecimal(r.Discount),
		GroundTotal:    toDecimal(r.GroundTotal),
		PaymentID:      paymentID,
		CustomerID:     customerID,
	}
	for _, item := range r.Items {
		itemID, err := uuid.Parse(item.ItemID)
		if err != nil {
			return salesapp.PlaceOrderRequest{}, err
		}
		appReq.Items = append(appReq.Items, salesapp.PlaceOrderLineInput{
			ItemID:   itemID,
			Quantity: toDecimal(item.Quantity),
			Price:    toDecimal(item.Price),
		})
	}
	return appReq, nil
}

// Place creates a new order, decrementing stock atomically
func (h *OrderHandler) Place(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	appReq, err := req.toApp()
	if err != nil {
		h.BadRequest(c, "Invalid UUID format")
		return
	}

	result, err := h.orderService.PlaceOrder(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Update replaces the line items of an existing order, reconciling stock
func (h *OrderHandler) Update(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	appReq, err := req.toApp()
	if err != nil {
		h.BadRequest(c, "Invalid UUID format")
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), orderID, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// GetByID retrieves an order by its ID
func (h *OrderHandler) GetByID(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List retrieves a paginated list of orders
func (h *OrderHandler) List(c *gin.Context) {
	var req ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	filter := salesapp.OrderListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
	}
	if req.StoreID != "" {
		storeID, err := uuid.Parse(req.StoreID)
		if err != nil {
			h.BadRequest(c, "Invalid store ID format")
			return
		}
		filter.StoreID = &storeID
	}
	dateFrom, err := parseOptionalDate(req.DateFrom)
	if err != nil {
		h.BadRequest(c, "Invalid date_from format")
		return
	}
	filter.DateFrom = dateFrom
	dateTo, err := parseOptionalDate(req.DateTo)
	if err != nil {
		h.BadRequest(c, "Invalid date_to format")
		return
	}
	filter.DateTo = dateTo

	orders, total, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, total, pageOrDefault(filter.Page), pageSizeOrDefault(filter.PageSize))
}

// RegisterRoutes registers sales order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/sales/orders")
	{
		orders.GET("", h.List)
		orders.GET("/:id", h.GetByID)
		orders.POST("", h.Place)
		orders.PUT("/:id", h.Update)
	}
}

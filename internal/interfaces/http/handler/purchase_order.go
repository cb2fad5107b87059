package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	purchasingapp "github.com/pos/backend/internal/application/purchasing"
)

// PurchaseOrderHandler handles purchase order API endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	orderService *purchasingapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(orderService *purchasingapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orderService: orderService}
}

// PurchaseOrderItemInput is one line of a PO creation request body
type PurchaseOrderItemInput struct {
	ItemID       string  `json:"item_id" binding:"required,uuid"`
	UnitID       *string `json:"unit_id" binding:"omitempty,uuid"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	UnitCost     float64 `json:"unit_cost" binding:"required,gt=0"`
	SellingPrice float64 `json:"selling_price" binding:"gte=0"`
	Tax          float64 `json:"tax" binding:"gte=0"`
}

// CreatePurchaseOrderRequest is the request body for creating a purchase order
type CreatePurchaseOrderRequest struct {
	OrderNumber string                   `json:"order_number" binding:"required,min=1,max=50"`
	VendorID    string                   `json:"vendor_id" binding:"required,uuid"`
	StoreID     string                   `json:"store_id" binding:"required,uuid"`
	OrderDate   time.Time                `json:"order_date" binding:"required"`
	Remark      string                   `json:"remark" binding:"max=500"`
	Items       []PurchaseOrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// ListPurchaseOrdersRequest holds PO listing query parameters
type ListPurchaseOrdersRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	VendorID string `form:"vendor_id" binding:"omitempty,uuid"`
	StoreID  string `form:"store_id" binding:"omitempty,uuid"`
	Status   string `form:"status" binding:"omitempty,oneof=PENDING DRAFT RECEIVED PAID CANCELLED"`
}

// Create creates a new purchase order
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID format")
		return
	}
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	appReq := purchasingapp.CreatePurchaseOrderRequest{
		OrderNumber: req.OrderNumber,
		VendorID:    vendorID,
		StoreID:     storeID,
		OrderDate:   req.OrderDate,
		Remark:      req.Remark,
	}
	for _, item := range req.Items {
		itemID, err := uuid.Parse(item.ItemID)
		if err != nil {
			h.BadRequest(c, "Invalid item ID format")
			return
		}
		unitID, err := parseOptionalUUID(item.UnitID)
		if err != nil {
			h.BadRequest(c, "Invalid unit ID format")
			return
		}
		appReq.Items = append(appReq.Items, purchasingapp.PurchaseOrderLineInput{
			ItemID:       itemID,
			UnitID:       unitID,
			Quantity:     toDecimal(item.Quantity),
			UnitCost:     toDecimal(item.UnitCost),
			SellingPrice: toDecimal(item.SellingPrice),
			Tax:          toDecimal(item.Tax),
		})
	}

	order, err := h.orderService.Create(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// GetByID retrieves a purchase order by its ID
func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List retrieves a paginated list of purchase orders
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	var req ListPurchaseOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	filter := purchasingapp.PurchaseOrderListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
	}
	if req.VendorID != "" {
		vendorID, err := uuid.Parse(req.VendorID)
		if err != nil {
			h.BadRequest(c, "Invalid vendor ID format")
			return
		}
		filter.VendorID = &vendorID
	}
	if req.StoreID != "" {
		storeID, err := uuid.Parse(req.StoreID)
		if err != nil {
			h.BadRequest(c, "Invalid store ID format")
			return
		}
		filter.StoreID = &storeID
	}
	if req.Status != "" {
		filter.Status = &req.Status
	}

	orders, total, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, total, pageOrDefault(filter.Page), pageSizeOrDefault(filter.PageSize))
}

// MarkPaid transitions a fully received purchase order to paid
func (h *PurchaseOrderHandler) MarkPaid(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	order, err := h.orderService.MarkPaid(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Cancel cancels a pending purchase order
func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// RegisterRoutes registers purchase order routes
func (h *PurchaseOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/purchasing/orders")
	{
		orders.GET("", h.List)
		orders.GET("/:id", h.GetByID)
		orders.POST("", h.Create)
		orders.POST("/:id/pay", h.MarkPaid)
		orders.POST("/:id/cancel", h.Cancel)
	}
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	inventoryapp "github.com/pos/backend/internal/application/inventory"
)

// InventoryHandler handles stock availability and threshold API endpoints
type InventoryHandler struct {
	BaseHandler
	stockService *inventoryapp.StockService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(stockService *inventoryapp.StockService) *InventoryHandler {
	return &InventoryHandler{stockService: stockService}
}

// AvailabilityRequest holds availability query parameters
type AvailabilityRequest struct {
	ItemID  string `form:"item_id" binding:"required,uuid"`
	StoreID string `form:"store_id" binding:"required,uuid"`
}

// SetThresholdsRequest is the request body for min/max threshold maintenance
type SetThresholdsRequest struct {
	ItemID      string  `json:"item_id" binding:"required,uuid"`
	StoreID     string  `json:"store_id" binding:"required,uuid"`
	MinQuantity float64 `json:"min_quantity" binding:"gte=0"`
	MaxQuantity float64 `json:"max_quantity" binding:"gte=0"`
}

// ListStockRequest holds stock listing query parameters
type ListStockRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	StoreID  string `form:"store_id" binding:"required,uuid"`
}

// GetAvailability reports the current quantity for an item at a store
func (h *InventoryHandler) GetAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	availability, err := h.stockService.GetAvailability(c.Request.Context(), itemID, storeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, availability)
}

// SetThresholds updates the min/max quantities for an item at a store
func (h *InventoryHandler) SetThresholds(c *gin.Context) {
	var req SetThresholdsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	level, err := h.stockService.SetThresholds(c.Request.Context(), inventoryapp.SetThresholdsRequest{
		ItemID:      itemID,
		StoreID:     storeID,
		MinQuantity: toDecimal(req.MinQuantity),
		MaxQuantity: toDecimal(req.MaxQuantity),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, level)
}

// ListByStore retrieves stock levels for a store
func (h *InventoryHandler) ListByStore(c *gin.Context) {
	filter, ok := h.bindStockFilter(c)
	if !ok {
		return
	}

	levels, err := h.stockService.ListByStore(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, levels)
}

// ListBelowMinimum retrieves stock levels below their minimum threshold
func (h *InventoryHandler) ListBelowMinimum(c *gin.Context) {
	filter, ok := h.bindStockFilter(c)
	if !ok {
		return
	}

	levels, err := h.stockService.ListBelowMinimum(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, levels)
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inventory := rg.Group("/inventory")
	{
		inventory.GET("/availability", h.GetAvailability)
		inventory.PUT("/thresholds", h.SetThresholds)
		inventory.GET("/stock", h.ListByStore)
		inventory.GET("/stock/below-minimum", h.ListBelowMinimum)
	}
}

func (h *InventoryHandler) bindStockFilter(c *gin.Context) (inventoryapp.StockListFilter, bool) {
	var req ListStockRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return inventoryapp.StockListFilter{}, false
	}

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return inventoryapp.StockListFilter{}, false
	}

	return inventoryapp.StockListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		StoreID:  storeID,
	}, true
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/pos/backend/internal/application/catalog"
)

// ItemHandler handles catalog item API endpoints
type ItemHandler struct {
	BaseHandler
	itemService *catalogapp.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *catalogapp.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// CreateItemRequest is the request body for creating a catalog item
type CreateItemRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=200"`
	Barcode    string  `json:"barcode" binding:"max=100"`
	CategoryID *string `json:"category_id" binding:"omitempty,uuid"`
}

// UpdateItemRequest is the request body for updating a catalog item
type UpdateItemRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=200"`
	Barcode    string  `json:"barcode" binding:"max=100"`
	CategoryID *string `json:"category_id" binding:"omitempty,uuid"`
	Status     *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ListItemsRequest holds item listing query parameters
type ListItemsRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
}

// Create creates a new catalog item
func (h *ItemHandler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), catalogapp.CreateItemRequest{
		Name:       req.Name,
		Barcode:    req.Barcode,
		CategoryID: categoryID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// Update modifies an existing catalog item
func (h *ItemHandler) Update(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), itemID, catalogapp.UpdateItemRequest{
		Name:       req.Name,
		Barcode:    req.Barcode,
		CategoryID: categoryID,
		Status:     req.Status,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// GetByID retrieves a catalog item by its ID
func (h *ItemHandler) GetByID(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// List retrieves a paginated list of catalog items
func (h *ItemHandler) List(c *gin.Context) {
	var req ListItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	filter := catalogapp.ItemListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
	}
	if req.Status != "" {
		filter.Status = &req.Status
	}

	items, total, err := h.itemService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, pageOrDefault(filter.Page), pageSizeOrDefault(filter.PageSize))
}

// Delete soft deletes a catalog item
func (h *ItemHandler) Delete(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), itemID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers catalog item routes
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/catalog/items")
	{
		items.GET("", h.List)
		items.GET("/:id", h.GetByID)
		items.POST("", h.Create)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

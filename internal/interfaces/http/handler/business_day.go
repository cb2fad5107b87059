package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	financeapp "github.com/pos/backend/internal/application/finance"
)

// BusinessDayHandler handles business day gate API endpoints
type BusinessDayHandler struct {
	BaseHandler
	dayService *financeapp.BusinessDayService
}

// NewBusinessDayHandler creates a new BusinessDayHandler
func NewBusinessDayHandler(dayService *financeapp.BusinessDayService) *BusinessDayHandler {
	return &BusinessDayHandler{dayService: dayService}
}

// OpenBusinessDayRequest is the request body for opening a business day
type OpenBusinessDayRequest struct {
	StoreID string `json:"store_id" binding:"required,uuid"`
	Date    string `json:"date" binding:"required,datetime=2006-01-02"`
}

// GetBusinessDayRequest holds business day lookup query parameters
type GetBusinessDayRequest struct {
	StoreID string `form:"store_id" binding:"required,uuid"`
	Date    string `form:"date" binding:"required,datetime=2006-01-02"`
}

// Open opens the operating window for a store and date
func (h *BusinessDayHandler) Open(c *gin.Context) {
	var req OpenBusinessDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		h.BadRequest(c, "Invalid date format")
		return
	}

	day, err := h.dayService.Open(c.Request.Context(), financeapp.OpenBusinessDayRequest{
		StoreID: storeID,
		Date:    date,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, day)
}

// Close closes an open business day
func (h *BusinessDayHandler) Close(c *gin.Context) {
	dayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid business day ID format")
		return
	}

	day, err := h.dayService.Close(c.Request.Context(), dayID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, day)
}

// Lock locks a closed business day against further changes
func (h *BusinessDayHandler) Lock(c *gin.Context) {
	dayID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid business day ID format")
		return
	}

	day, err := h.dayService.Lock(c.Request.Context(), dayID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, day)
}

// Get retrieves the business day for a store and date
func (h *BusinessDayHandler) Get(c *gin.Context) {
	var req GetBusinessDayRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		h.BadRequest(c, "Invalid date format")
		return
	}

	day, err := h.dayService.GetByStoreAndDate(c.Request.Context(), storeID, date)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, day)
}

// RegisterRoutes registers business day routes
func (h *BusinessDayHandler) RegisterRoutes(rg *gin.RouterGroup) {
	days := rg.Group("/finance/business-days")
	{
		days.GET("", h.Get)
		days.POST("", h.Open)
		days.POST("/:id/close", h.Close)
		days.POST("/:id/lock", h.Lock)
	}
}

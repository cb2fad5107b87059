package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	financeapp "github.com/pos/backend/internal/application/finance"
)

// LedgerHandler handles general ledger API endpoints
type LedgerHandler struct {
	BaseHandler
	ledgerService *financeapp.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService *financeapp.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// ListLedgerRequest holds ledger listing query parameters
type ListLedgerRequest struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	AccountID string `form:"account_id" binding:"omitempty,uuid"`
	DateFrom  string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo    string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}

// List retrieves a paginated list of ledger entries
func (h *LedgerHandler) List(c *gin.Context) {
	var req ListLedgerRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	filter := financeapp.LedgerListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.AccountID != "" {
		accountID, err := uuid.Parse(req.AccountID)
		if err != nil {
			h.BadRequest(c, "Invalid account ID format")
			return
		}
		filter.AccountID = &accountID
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

	entries, total, err := h.ledgerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, entries, total, pageOrDefault(filter.Page), pageSizeOrDefault(filter.PageSize))
}

// RegisterRoutes registers ledger routes
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/finance/ledger", h.List)
}

package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	purchasingapp "github.com/pos/backend/internal/application/purchasing"
)

// GoodReceiptNoteHandler handles goods receipt API endpoints
type GoodReceiptNoteHandler struct {
	BaseHandler
	receivingService *purchasingapp.ReceivingService
}

// NewGoodReceiptNoteHandler creates a new GoodReceiptNoteHandler
func NewGoodReceiptNoteHandler(receivingService *purchasingapp.ReceivingService) *GoodReceiptNoteHandler {
	return &GoodReceiptNoteHandler{receivingService: receivingService}
}

// ReceiveGoodsItemInput is one line of a goods receipt request body
type ReceiveGoodsItemInput struct {
	ItemID           string  `json:"item_id" binding:"required,uuid"`
	UnitID           *string `json:"unit_id" binding:"omitempty,uuid"`
	OrderedQuantity  float64 `json:"ordered_quantity" binding:"gte=0"`
	ReceivedQuantity float64 `json:"received_quantity" binding:"required,gt=0"`
	AcceptedQuantity float64 `json:"accepted_quantity" binding:"gte=0"`
	RejectedQuantity float64 `json:"rejected_quantity" binding:"gte=0"`
	UnitPrice        float64 `json:"unit_price" binding:"required,gt=0"`
	SellingPrice     float64 `json:"selling_price" binding:"gte=0"`
	Condition        string  `json:"condition" binding:"omitempty,oneof=GOOD DAMAGED"`
}

// ReceiveGoodsRequest is the request body for receiving goods against a PO
type ReceiveGoodsRequest struct {
	NoteNumber      string                  `json:"note_number" binding:"required,min=1,max=50"`
	PurchaseOrderID string                  `json:"purchase_order_id" binding:"required,uuid"`
	StoreID         string                  `json:"store_id" binding:"required,uuid"`
	ReceivedDate    time.Time               `json:"received_date" binding:"required"`
	Status          string                  `json:"status" binding:"omitempty,oneof=PENDING RECEIVED"`
	Reference       string                  `json:"reference" binding:"max=100"`
	Items           []ReceiveGoodsItemInput `json:"items" binding:"required,min=1,dive"`
}

// Receive records a goods receipt note against a purchase order,
// incrementing stock and posting the ledger in one transaction.
func (h *GoodReceiptNoteHandler) Receive(c *gin.Context) {
	var req ReceiveGoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	purchaseOrderID, err := uuid.Parse(req.PurchaseOrderID)
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	appReq := purchasingapp.ReceiveGoodsRequest{
		NoteNumber:      req.NoteNumber,
		PurchaseOrderID: purchaseOrderID,
		StoreID:         storeID,
		ReceivedDate:    req.ReceivedDate,
		Status:          req.Status,
		Reference:       req.Reference,
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
		appReq.Items = append(appReq.Items, purchasingapp.ReceiveGoodsLineInput{
			ItemID:           itemID,
			UnitID:           unitID,
			OrderedQuantity:  toDecimal(item.OrderedQuantity),
			ReceivedQuantity: toDecimal(item.ReceivedQuantity),
			AcceptedQuantity: toDecimal(item.AcceptedQuantity),
			RejectedQuantity: toDecimal(item.RejectedQuantity),
			UnitPrice:        toDecimal(item.UnitPrice),
			SellingPrice:     toDecimal(item.SellingPrice),
			Condition:        item.Condition,
		})
	}

	note, err := h.receivingService.ReceiveGoods(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, note)
}

// GetByID retrieves a goods receipt note by its ID
func (h *GoodReceiptNoteHandler) GetByID(c *gin.Context) {
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid receipt note ID format")
		return
	}

	note, err := h.receivingService.GetByID(c.Request.Context(), noteID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, note)
}

// ListByPurchaseOrder retrieves all receipt notes recorded against a PO
func (h *GoodReceiptNoteHandler) ListByPurchaseOrder(c *gin.Context) {
	purchaseOrderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	notes, err := h.receivingService.ListByPurchaseOrder(c.Request.Context(), purchaseOrderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, notes)
}

// RegisterRoutes registers goods receipt routes
func (h *GoodReceiptNoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	receipts := rg.Group("/purchasing/receipts")
	{
		receipts.GET("/:id", h.GetByID)
		receipts.POST("", h.Receive)
	}

	rg.GET("/purchasing/orders/:id/receipts", h.ListByPurchaseOrder)
}

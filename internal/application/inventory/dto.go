package inventory

import (
	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// AvailabilityResponse reports the current quantity for an item at a store
type AvailabilityResponse struct {
	ItemID        uuid.UUID       `json:"item_id"`
	StoreID       uuid.UUID       `json:"store_id"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	MinQuantity   decimal.Decimal `json:"min_quantity"`
	MaxQuantity   decimal.Decimal `json:"max_quantity"`
	BelowMinimum  bool            `json:"below_minimum"`
}

// SetThresholdsRequest carries min/max maintenance input
type SetThresholdsRequest struct {
	ItemID      uuid.UUID
	StoreID     uuid.UUID
	MinQuantity decimal.Decimal
	MaxQuantity decimal.Decimal
}

// StockLevelResponse is one row of a store stock listing
type StockLevelResponse struct {
	StockID       uuid.UUID       `json:"stock_id"`
	ItemID        uuid.UUID       `json:"item_id"`
	StoreID       uuid.UUID       `json:"store_id"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	MinQuantity   decimal.Decimal `json:"min_quantity"`
	MaxQuantity   decimal.Decimal `json:"max_quantity"`
}

// StockListFilter holds list query parameters
type StockListFilter struct {
	Page     int
	PageSize int
	StoreID  uuid.UUID
}

func toStockLevelResponse(level *inventory.StockLevel) StockLevelResponse {
	return StockLevelResponse{
		StockID:       level.StockID,
		ItemID:        level.ItemID,
		StoreID:       level.StoreID,
		StockQuantity: level.StockQuantity,
		MinQuantity:   level.MinQuantity,
		MaxQuantity:   level.MaxQuantity,
	}
}

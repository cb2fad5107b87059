package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
)

// CreateItemRequest is the application-level item creation request
type CreateItemRequest struct {
	Name       string
	Barcode    string
	CategoryID *uuid.UUID
}

// UpdateItemRequest is the application-level item update request
type UpdateItemRequest struct {
	Name       string
	Barcode    string
	CategoryID *uuid.UUID
	Status     *string
}

// ItemResponse is the item read model
type ItemResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Barcode    string     `json:"barcode,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Version    int        `json:"version"`
}

// ItemListFilter holds list query parameters
type ItemListFilter struct {
	Page     int
	PageSize int
	Search   string
	Status   *string
}

// ToItemResponse maps a domain item to its read model
func ToItemResponse(item *catalog.Item) ItemResponse {
	return ItemResponse{
		ID:         item.ID,
		Name:       item.Name,
		Barcode:    item.Barcode,
		CategoryID: item.CategoryID,
		Status:     string(item.Status),
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
		Version:    item.Version,
	}
}

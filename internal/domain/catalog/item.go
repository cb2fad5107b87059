package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ItemStatus represents the lifecycle status of an item
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusInactive ItemStatus = "inactive"
)

// IsValid returns true if the status is a known value
func (s ItemStatus) IsValid() bool {
	return s == ItemStatusActive || s == ItemStatusInactive
}

// Item represents a sellable/purchasable product.
// Items are soft-deleted: a tombstone timestamp marks removal while the row
// survives for referential integrity with historical orders.
type Item struct {
	shared.BaseAggregateRoot
	Name       string         `gorm:"type:varchar(200);not null;uniqueIndex:idx_items_name,where:deleted_at IS NULL"`
	Barcode    string         `gorm:"type:varchar(50);index"`
	CategoryID *uuid.UUID     `gorm:"type:uuid;index"`
	Status     ItemStatus     `gorm:"type:varchar(20);not null;default:'active'"`
	IsSynced   bool           `gorm:"not null;default:false"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// NewItem creates a new active item
func NewItem(name string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot exceed 200 characters")
	}

	return &Item{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Status:            ItemStatusActive,
	}, nil
}

// Rename changes the item name
func (i *Item) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	i.Name = name
	i.touch()
	return nil
}

// SetCategory assigns the item to a category
func (i *Item) SetCategory(categoryID uuid.UUID) {
	i.CategoryID = &categoryID
	i.touch()
}

// Activate marks the item as active
func (i *Item) Activate() {
	i.Status = ItemStatusActive
	i.touch()
}

// Deactivate marks the item as inactive; it stays visible but cannot be sold
func (i *Item) Deactivate() {
	i.Status = ItemStatusInactive
	i.touch()
}

// IsActive returns true if the item can be sold
func (i *Item) IsActive() bool {
	return i.Status == ItemStatusActive
}

// MarkSynced records that the row has been pushed to the external sync target
func (i *Item) MarkSynced() {
	i.IsSynced = true
	i.UpdatedAt = time.Now()
}

// touch bumps the modification metadata and resets the sync flag
func (i *Item) touch() {
	i.UpdatedAt = time.Now()
	i.IsSynced = false
	i.IncrementVersion()
}

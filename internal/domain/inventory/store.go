package inventory

import (
	"strings"

	"github.com/pos/backend/internal/domain/shared"
)

// Store represents a physical sales location owning its own stock rows
type Store struct {
	shared.BaseAggregateRoot
	Name string `gorm:"type:varchar(100);not null"`
	Code string `gorm:"type:varchar(30);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Store) TableName() string {
	return "stores"
}

// NewStore creates a new store
func NewStore(name, code string) (*Store, error) {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(code)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Store name cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Store code cannot be empty")
	}
	return &Store{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Code:              strings.ToUpper(code),
	}, nil
}

package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// ItemRepository provides persistence for items
type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	FindByName(ctx context.Context, name string) (*Item, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Item, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Item, error)
	Save(ctx context.Context, item *Item) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// CategoryRepository provides persistence for categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)
	Save(ctx context.Context, category *Category) error
}

package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ItemService handles item master data
type ItemService struct {
	itemRepo     catalog.ItemRepository
	categoryRepo catalog.CategoryRepository
	logger       *zap.Logger
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo catalog.ItemRepository, categoryRepo catalog.CategoryRepository, logger *zap.Logger) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create creates a new active item
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	exists, err := s.itemRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainErrorWithDetails("DUPLICATE_ITEM_NAME",
			fmt.Sprintf("Item named %q already exists", req.Name),
			map[string]any{"name": req.Name})
	}

	item, err := catalog.NewItem(req.Name)
	if err != nil {
		return nil, err
	}
	item.Barcode = req.Barcode
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", fmt.Sprintf("Category %s does not exist", *req.CategoryID))
		}
		item.SetCategory(*req.CategoryID)
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("item created", zap.String("item_id", item.ID.String()), zap.String("name", item.Name))

	response := ToItemResponse(item)
	return &response, nil
}

// Update applies name, barcode, category, and status changes to an item
func (s *ItemService) Update(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != item.Name {
		exists, err := s.itemRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainErrorWithDetails("DUPLICATE_ITEM_NAME",
				fmt.Sprintf("Item named %q already exists", req.Name),
				map[string]any{"name": req.Name})
		}
		if err := item.Rename(req.Name); err != nil {
			return nil, err
		}
	}
	if req.Barcode != "" {
		item.Barcode = req.Barcode
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", fmt.Sprintf("Category %s does not exist", *req.CategoryID))
		}
		item.SetCategory(*req.CategoryID)
	}
	if req.Status != nil {
		status := catalog.ItemStatus(*req.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown item status %q", *req.Status))
		}
		if status == catalog.ItemStatusActive {
			item.Activate()
		} else {
			item.Deactivate()
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves an item by ID
func (s *ItemService) GetByID(ctx context.Context, itemID uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	response := ToItemResponse(item)
	return &response, nil
}

// List retrieves items with filtering and pagination
func (s *ItemService) List(ctx context.Context, filter ItemListFilter) ([]ItemResponse, int64, error) {
	repoFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}
	repoFilter.Search = filter.Search
	if filter.Status != nil {
		repoFilter.Filters["status"] = *filter.Status
	}

	items, err := s.itemRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.itemRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToItemResponse(&items[i]))
	}
	return responses, total, nil
}

// Delete soft-deletes an item. Historical orders keep referencing the row.
func (s *ItemService) Delete(ctx context.Context, itemID uuid.UUID) error {
	if _, err := s.itemRepo.FindByID(ctx, itemID); err != nil {
		return err
	}
	if err := s.itemRepo.SoftDelete(ctx, itemID); err != nil {
		return err
	}
	s.logger.Info("item deleted", zap.String("item_id", itemID.String()))
	return nil
}

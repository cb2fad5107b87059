package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// StockService handles stock availability reads and threshold maintenance.
// It never mutates quantities: those change only inside the order placement
// and goods receipt transactions.
type StockService struct {
	stockRepo     inventory.StockRepository
	itemStockRepo inventory.ItemStockRepository
	storeRepo     inventory.StoreRepository
	logger        *zap.Logger
}

// NewStockService creates a new StockService
func NewStockService(
	stockRepo inventory.StockRepository,
	itemStockRepo inventory.ItemStockRepository,
	storeRepo inventory.StoreRepository,
	logger *zap.Logger,
) *StockService {
	return &StockService{
		stockRepo:     stockRepo,
		itemStockRepo: itemStockRepo,
		storeRepo:     storeRepo,
		logger:        logger,
	}
}

// GetAvailability reports the current quantity for an item at a store.
// An item with no stock row reads as zero available rather than an error.
func (s *StockService) GetAvailability(ctx context.Context, itemID, storeID uuid.UUID) (*AvailabilityResponse, error) {
	if _, err := s.storeRepo.FindByID(ctx, storeID); err != nil {
		return nil, shared.NewDomainError("STORE_NOT_FOUND", fmt.Sprintf("Store %s does not exist", storeID))
	}

	level, err := s.itemStockRepo.FindLevel(ctx, itemID, storeID)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return &AvailabilityResponse{ItemID: itemID, StoreID: storeID}, nil
	}

	stock, err := s.stockRepo.FindByID(ctx, level.StockID)
	if err != nil {
		return nil, err
	}
	return &AvailabilityResponse{
		ItemID:        itemID,
		StoreID:       storeID,
		StockQuantity: level.StockQuantity,
		MinQuantity:   level.MinQuantity,
		MaxQuantity:   level.MaxQuantity,
		BelowMinimum:  stock.IsBelowMinimum(level.StockQuantity),
	}, nil
}

// SetThresholds creates or updates the min/max thresholds for an item-store
// pair. The stock row is created on first use so thresholds can be set
// before any goods arrive.
func (s *StockService) SetThresholds(ctx context.Context, req SetThresholdsRequest) (*StockLevelResponse, error) {
	if _, err := s.storeRepo.FindByID(ctx, req.StoreID); err != nil {
		return nil, shared.NewDomainError("STORE_NOT_FOUND", fmt.Sprintf("Store %s does not exist", req.StoreID))
	}

	stock, err := s.stockRepo.GetOrCreate(ctx, req.ItemID, req.StoreID)
	if err != nil {
		return nil, err
	}
	if err := stock.SetThresholds(req.MinQuantity, req.MaxQuantity); err != nil {
		return nil, err
	}
	if err := s.stockRepo.Save(ctx, stock); err != nil {
		return nil, err
	}

	s.logger.Info("stock thresholds updated",
		zap.String("item_id", req.ItemID.String()),
		zap.String("store_id", req.StoreID.String()),
		zap.String("min", req.MinQuantity.String()),
		zap.String("max", req.MaxQuantity.String()))

	level, err := s.itemStockRepo.FindLevel(ctx, req.ItemID, req.StoreID)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return &StockLevelResponse{
			StockID:     stock.ID,
			ItemID:      req.ItemID,
			StoreID:     req.StoreID,
			MinQuantity: stock.MinQuantity,
			MaxQuantity: stock.MaxQuantity,
		}, nil
	}
	resp := toStockLevelResponse(level)
	return &resp, nil
}

// ListByStore lists stock levels for a store
func (s *StockService) ListByStore(ctx context.Context, filter StockListFilter) ([]StockLevelResponse, error) {
	repoFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}

	levels, err := s.itemStockRepo.FindLevelsByStore(ctx, filter.StoreID, repoFilter)
	if err != nil {
		return nil, err
	}
	responses := make([]StockLevelResponse, 0, len(levels))
	for i := range levels {
		responses = append(responses, toStockLevelResponse(&levels[i]))
	}
	return responses, nil
}

// ListBelowMinimum lists stock rows whose quantity is under the configured
// minimum threshold, for reorder reporting.
func (s *StockService) ListBelowMinimum(ctx context.Context, filter StockListFilter) ([]StockLevelResponse, error) {
	repoFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}

	levels, err := s.itemStockRepo.FindBelowMinimum(ctx, filter.StoreID, repoFilter)
	if err != nil {
		return nil, err
	}
	responses := make([]StockLevelResponse, 0, len(levels))
	for i := range levels {
		responses = append(responses, toStockLevelResponse(&levels[i]))
	}
	return responses, nil
}

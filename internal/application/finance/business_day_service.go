package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/finance"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// BusinessDayService handles opening, closing, and locking the per-store
// daily operating window that gates goods receiving.
type BusinessDayService struct {
	dayRepo   finance.BusinessDayRepository
	storeRepo inventory.StoreRepository
	logger    *zap.Logger
}

// NewBusinessDayService creates a new BusinessDayService
func NewBusinessDayService(dayRepo finance.BusinessDayRepository, storeRepo inventory.StoreRepository, logger *zap.Logger) *BusinessDayService {
	return &BusinessDayService{
		dayRepo:   dayRepo,
		storeRepo: storeRepo,
		logger:    logger,
	}
}

// Open opens the business day for a store and date. A day that already
// exists for the pair is a conflict, whatever its state: closed days are
// not reopened.
func (s *BusinessDayService) Open(ctx context.Context, req OpenBusinessDayRequest) (*BusinessDayResponse, error) {
	if _, err := s.storeRepo.FindByID(ctx, req.StoreID); err != nil {
		return nil, shared.NewDomainError("STORE_NOT_FOUND", fmt.Sprintf("Store %s does not exist", req.StoreID))
	}

	existing, err := s.dayRepo.FindByStoreAndDate(ctx, req.StoreID, req.Date)
	if err == nil && existing != nil {
		return nil, shared.NewDomainErrorWithDetails("DAY_ALREADY_OPEN",
			"Business day already exists for this store and date",
			map[string]any{"store_id": req.StoreID.String(), "date": req.Date.Format("2006-01-02")})
	}

	day, err := finance.OpenBusinessDay(req.StoreID, req.Date)
	if err != nil {
		return nil, err
	}
	if err := s.dayRepo.Save(ctx, day); err != nil {
		return nil, err
	}

	s.logger.Info("business day opened",
		zap.String("store_id", day.StoreID.String()),
		zap.Time("date", day.Date))

	response := ToBusinessDayResponse(day)
	return &response, nil
}

// Close closes an open business day
func (s *BusinessDayService) Close(ctx context.Context, dayID uuid.UUID) (*BusinessDayResponse, error) {
	day, err := s.dayRepo.FindByID(ctx, dayID)
	if err != nil {
		return nil, err
	}
	if err := day.Close(); err != nil {
		return nil, err
	}
	if err := s.dayRepo.Save(ctx, day); err != nil {
		return nil, err
	}

	s.logger.Info("business day closed",
		zap.String("store_id", day.StoreID.String()),
		zap.Time("date", day.Date))

	response := ToBusinessDayResponse(day)
	return &response, nil
}

// Lock freezes a business day against further postings. Locking is
// idempotent and independent of the open/closed state.
func (s *BusinessDayService) Lock(ctx context.Context, dayID uuid.UUID) (*BusinessDayResponse, error) {
	day, err := s.dayRepo.FindByID(ctx, dayID)
	if err != nil {
		return nil, err
	}
	day.Lock()
	if err := s.dayRepo.Save(ctx, day); err != nil {
		return nil, err
	}

	s.logger.Info("business day locked",
		zap.String("store_id", day.StoreID.String()),
		zap.Time("date", day.Date))

	response := ToBusinessDayResponse(day)
	return &response, nil
}

// GetByStoreAndDate retrieves the business day for a store and date
func (s *BusinessDayService) GetByStoreAndDate(ctx context.Context, storeID uuid.UUID, date time.Time) (*BusinessDayResponse, error) {
	day, err := s.dayRepo.FindByStoreAndDate(ctx, storeID, date)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, shared.ErrNotFound
	}
	response := ToBusinessDayResponse(day)
	return &response, nil
}

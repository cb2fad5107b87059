package finance

import (
	"context"

	"github.com/pos/backend/internal/domain/finance"
	"github.com/pos/backend/internal/domain/shared"
)

// LedgerService provides read access to the general ledger
type LedgerService struct {
	ledgerRepo finance.LedgerRepository
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(ledgerRepo finance.LedgerRepository) *LedgerService {
	return &LedgerService{ledgerRepo: ledgerRepo}
}

// List retrieves ledger entries with filtering and pagination
func (s *LedgerService) List(ctx context.Context, filter LedgerListFilter) ([]LedgerEntryResponse, int64, error) {
	repoFilter := shared.DefaultFilter()
	repoFilter.OrderBy = "entry_date"
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}
	if filter.AccountID != nil {
		repoFilter.Filters["account_id"] = *filter.AccountID
	}
	if filter.DateFrom != nil {
		repoFilter.Filters["date_from"] = *filter.DateFrom
	}
	if filter.DateTo != nil {
		repoFilter.Filters["date_to"] = *filter.DateTo
	}

	entries, err := s.ledgerRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.ledgerRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]LedgerEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, ToLedgerEntryResponse(&entries[i]))
	}
	return responses, total, nil
}

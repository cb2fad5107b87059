package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// OpenBusinessDayRequest opens the operating window for a store and date
type OpenBusinessDayRequest struct {
	StoreID uuid.UUID
	Date    time.Time
}

// BusinessDayResponse is the business day read model
type BusinessDayResponse struct {
	ID       uuid.UUID  `json:"id"`
	StoreID  uuid.UUID  `json:"store_id"`
	Date     time.Time  `json:"date"`
	OpenedAt time.Time  `json:"opened_at"`
	ClosedAt *time.Time `json:"closed_at,omitempty"`
	Locked   bool       `json:"locked"`
	Open     bool       `json:"open"`
}

// ToBusinessDayResponse maps a domain business day to its read model
func ToBusinessDayResponse(day *finance.BusinessDay) BusinessDayResponse {
	return BusinessDayResponse{
		ID:       day.ID,
		StoreID:  day.StoreID,
		Date:     day.Date,
		OpenedAt: day.OpenedAt,
		ClosedAt: day.ClosedAt,
		Locked:   day.Locked,
		Open:     day.IsOpen(),
	}
}

// LedgerEntryResponse is one general-ledger row in listings
type LedgerEntryResponse struct {
	ID           uuid.UUID       `json:"id"`
	AccountID    uuid.UUID       `json:"account_id"`
	EntryDate    time.Time       `json:"entry_date"`
	DebitAmount  decimal.Decimal `json:"debit_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	SourceType   string          `json:"source_type"`
	SourceID     *uuid.UUID      `json:"source_id,omitempty"`
	Description  string          `json:"description,omitempty"`
}

// LedgerListFilter holds ledger listing query parameters
type LedgerListFilter struct {
	Page      int
	PageSize  int
	AccountID *uuid.UUID
	DateFrom  *time.Time
	DateTo    *time.Time
}

// ToLedgerEntryResponse maps a domain ledger entry to its read model
func ToLedgerEntryResponse(entry *finance.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:           entry.ID,
		AccountID:    entry.AccountID,
		EntryDate:    entry.EntryDate,
		DebitAmount:  entry.DebitAmount,
		CreditAmount: entry.CreditAmount,
		SourceType:   string(entry.SourceType),
		SourceID:     entry.SourceID,
		Description:  entry.Description,
	}
}

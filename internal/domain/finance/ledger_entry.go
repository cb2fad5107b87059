package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LedgerSourceType names the business document that produced a ledger entry
type LedgerSourceType string

const (
	LedgerSourcePurchase LedgerSourceType = "PURCHASE"
	LedgerSourceSale     LedgerSourceType = "SALE"
	LedgerSourceExpense  LedgerSourceType = "EXPENSE"
	LedgerSourceManual   LedgerSourceType = "MANUAL"
)

// LedgerEntry is a double-entry style general-ledger row.
// Invariant: exactly one of DebitAmount/CreditAmount is non-zero.
type LedgerEntry struct {
	shared.BaseAggregateRoot
	AccountID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	EntryDate    time.Time        `gorm:"not null;index"`
	DebitAmount  decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	CreditAmount decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	SourceType   LedgerSourceType `gorm:"type:varchar(20);not null"`
	SourceID     *uuid.UUID       `gorm:"type:uuid;index"`
	Description  string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// NewDebitEntry creates a ledger row debiting the account
func NewDebitEntry(accountID uuid.UUID, amount decimal.Decimal, sourceType LedgerSourceType, sourceID *uuid.UUID, description string) (*LedgerEntry, error) {
	return newEntry(accountID, amount, decimal.Zero, sourceType, sourceID, description)
}

// NewCreditEntry creates a ledger row crediting the account
func NewCreditEntry(accountID uuid.UUID, amount decimal.Decimal, sourceType LedgerSourceType, sourceID *uuid.UUID, description string) (*LedgerEntry, error) {
	return newEntry(accountID, decimal.Zero, amount, sourceType, sourceID, description)
}

func newEntry(accountID uuid.UUID, debit, credit decimal.Decimal, sourceType LedgerSourceType, sourceID *uuid.UUID, description string) (*LedgerEntry, error) {
	if accountID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Account ID cannot be empty")
	}
	if debit.IsNegative() || credit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Ledger amounts cannot be negative")
	}
	// Exactly one side must be non-zero.
	if debit.IsZero() == credit.IsZero() {
		return nil, shared.NewDomainError("INVALID_LEDGER_ENTRY", "Exactly one of debit or credit must be non-zero")
	}

	return &LedgerEntry{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		AccountID:         accountID,
		EntryDate:         time.Now(),
		DebitAmount:       debit,
		CreditAmount:      credit,
		SourceType:        sourceType,
		SourceID:          sourceID,
		Description:       description,
	}, nil
}

// IsDebit reports whether the entry debits its account
func (e *LedgerEntry) IsDebit() bool {
	return !e.DebitAmount.IsZero()
}

// PurchaseTransaction records a purchase posting, referencing both the
// purchase order and the ledger entry it produced.
type PurchaseTransaction struct {
	shared.BaseAggregateRoot
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	LedgerEntryID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (PurchaseTransaction) TableName() string {
	return "purchase_transactions"
}

// NewPurchaseTransaction creates a purchase posting row
func NewPurchaseTransaction(purchaseOrderID, ledgerEntryID uuid.UUID, amount decimal.Decimal) (*PurchaseTransaction, error) {
	if purchaseOrderID == uuid.Nil || ledgerEntryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Purchase order and ledger entry IDs cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Purchase transaction amount must be positive")
	}
	return &PurchaseTransaction{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PurchaseOrderID:   purchaseOrderID,
		LedgerEntryID:     ledgerEntryID,
		Amount:            amount,
	}, nil
}

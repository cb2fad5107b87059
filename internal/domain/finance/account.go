package finance

import (
	"strings"

	"github.com/pos/backend/internal/domain/shared"
)

// AccountType classifies chart-of-accounts entries
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// IsValid checks if the account type is known
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// InventoryAccountName is the chart-of-accounts entry debited when goods are
// received. Receiving fails hard when this account does not exist.
const InventoryAccountName = "Inventory"

// Account is a chart-of-accounts entry
type Account struct {
	shared.BaseAggregateRoot
	Name string      `gorm:"type:varchar(100);not null;uniqueIndex"`
	Type AccountType `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}

// NewAccount creates a chart-of-accounts entry
func NewAccount(name string, accountType AccountType) (*Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}
	if !accountType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_TYPE", "Unknown account type")
	}
	return &Account{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Type:              accountType,
	}, nil
}

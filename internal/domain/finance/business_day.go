package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// BusinessDay is the per-store daily operating window gating purchase and
// expense postings. Receiving is rejected when the day for (store, date) is
// missing, closed, or locked.
type BusinessDay struct {
	shared.BaseAggregateRoot
	StoreID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_business_days_store_date,priority:1"`
	Date     time.Time  `gorm:"type:date;not null;uniqueIndex:idx_business_days_store_date,priority:2"`
	OpenedAt time.Time  `gorm:"not null"`
	ClosedAt *time.Time `gorm:""`
	Locked   bool       `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (BusinessDay) TableName() string {
	return "business_days"
}

// OpenBusinessDay opens the operating window for a store and date
func OpenBusinessDay(storeID uuid.UUID, date time.Time) (*BusinessDay, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Date cannot be empty")
	}
	return &BusinessDay{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		StoreID:           storeID,
		Date:              truncateToDate(date),
		OpenedAt:          time.Now(),
	}, nil
}

// IsOpen reports whether postings are currently allowed
func (d *BusinessDay) IsOpen() bool {
	return d.ClosedAt == nil && !d.Locked
}

// Close ends the operating window
func (d *BusinessDay) Close() error {
	if d.ClosedAt != nil {
		return shared.NewDomainError("INVALID_STATE", "Business day is already closed")
	}
	now := time.Now()
	d.ClosedAt = &now
	d.UpdatedAt = now
	d.IncrementVersion()
	return nil
}

// Lock freezes the day against further postings, open or closed
func (d *BusinessDay) Lock() {
	d.Locked = true
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
}

func truncateToDate(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, t.Location())
}

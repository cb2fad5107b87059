package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// toDecimal converts a float64 to a decimal.Decimal
func toDecimal(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// parseOptionalUUID parses a string pointer into a UUID pointer,
// treating nil and "" as absent.
func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// pageOrDefault normalizes a page number for response meta
func pageOrDefault(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// pageSizeOrDefault normalizes a page size for response meta
func pageSizeOrDefault(size int) int {
	if size < 1 {
		return 20
	}
	return size
}

// parseDate parses a calendar date in YYYY-MM-DD form
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// parseOptionalDate parses an optional YYYY-MM-DD query parameter
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

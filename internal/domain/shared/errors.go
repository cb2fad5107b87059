package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewDomainErrorWithDetails creates a new domain error carrying structured
// detail fields (offending entity id, requested vs available quantity, ...)
// so callers can react without parsing the message.
func NewDomainErrorWithDetails(code, message string, details map[string]any) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrDayClosed           = NewDomainError("DAY_CLOSED", "Business day is closed for this store and date")
	ErrDayLocked           = NewDomainError("DAY_LOCKED", "Business day is locked for this store and date")
	// ErrTxConflict marks a transient serialization/deadlock failure reported
	// by the storage engine. The transactional body may be retried with fresh
	// reads when it surfaces.
	ErrTxConflict = NewDomainError("TX_CONFLICT", "Transaction aborted due to storage-level contention")
)

// IsTxConflict reports whether err is a transient storage contention failure
func IsTxConflict(err error) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == ErrTxConflict.Code
}

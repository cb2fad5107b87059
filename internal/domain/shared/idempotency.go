package shared

import (
	"context"
	"time"
)

// SubmissionGuard stores recently seen submission keys so that a duplicate
// order submission (same order number) can be rejected on the fast path
// before touching the database. The unique constraints on orders remain the
// authoritative duplicate check; this guard only saves a round trip.
type SubmissionGuard interface {
	// MarkSubmitted marks a key as seen with a TTL.
	// Returns true if the key was newly marked, false if already present.
	MarkSubmitted(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release removes a key, allowing resubmission (used when the
	// guarded operation failed and the client may legitimately retry).
	Release(ctx context.Context, key string) error

	// Close closes the store and releases resources
	Close() error
}

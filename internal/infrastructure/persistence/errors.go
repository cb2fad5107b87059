package persistence

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pos/backend/internal/domain/shared"
)

// Postgres SQLSTATE codes this layer reacts to.
const (
	sqlstateUniqueViolation      = "23505"
	sqlstateSerializationFailure = "40001"
	sqlstateDeadlockDetected     = "40P01"
)

// translateError maps storage engine failures onto domain errors.
// Serialization failures and deadlocks become shared.ErrTxConflict so the
// application layer can retry the whole transactional body; unique
// violations become shared.ErrAlreadyExists. Everything else passes
// through untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlstateSerializationFailure, sqlstateDeadlockDetected:
			return shared.ErrTxConflict
		case sqlstateUniqueViolation:
			return shared.ErrAlreadyExists
		}
	}
	return err
}

// isUniqueViolation reports whether err is a unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlstateUniqueViolation
}

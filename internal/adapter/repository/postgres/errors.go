package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/iho/takeledger/internal/domain"
)

// PostgreSQL error codes for transient concurrency failures.
const (
	pgErrLockNotAvailable     = "55P03"
	pgErrDeadlock             = "40P01"
	pgErrSerializationFailure = "40001"
	pgErrQueryCanceled        = "57014"
)

func isConcurrencyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrLockNotAvailable, pgErrDeadlock, pgErrSerializationFailure, pgErrQueryCanceled:
			return true
		}
	}
	return false
}

// mapConcurrencyError turns lock timeouts, deadlocks and serialization
// failures into domain.ErrLockUnavailable. Other errors pass through.
func mapConcurrencyError(err error) error {
	if err == nil {
		return nil
	}
	if isConcurrencyError(err) {
		return fmt.Errorf("%w: %v", domain.ErrLockUnavailable, err)
	}
	return err
}

// mapLockError also treats a context deadline while waiting for the lock as
// lock unavailability.
func mapLockError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrLockUnavailable, err)
	}
	return mapConcurrencyError(err)
}

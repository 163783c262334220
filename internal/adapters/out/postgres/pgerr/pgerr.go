// Package pgerr classifies database errors returned through gorm so that
// repositories can turn them into errs types.
package pgerr

import (
	"errors"

	"parcelhub/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes the adapters react to.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// IsUniqueViolation reports a unique-index collision. gorm translates it to
// ErrDuplicatedKey when TranslateError is on; the raw pg code is checked too.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// IsConcurrencyConflict reports errors that abort a transaction because of
// a concurrent writer: serialization failures, deadlocks, and lock timeouts.
func IsConcurrencyConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return true
	default:
		return false
	}
}

// Translate wraps concurrency conflicts in a TransactionFailedError naming
// operation and returns every other error unchanged.
func Translate(operation string, err error) error {
	if err == nil {
		return nil
	}
	if IsConcurrencyConflict(err) {
		return errs.NewTransactionFailedErrorWithCause(operation, err)
	}
	return err
}

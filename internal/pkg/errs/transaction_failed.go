package errs

import (
	"errors"
	"fmt"
)

// ErrTransactionFailed is the sentinel for a multi-entity operation whose
// transaction was aborted. Nothing it touched was persisted.
var ErrTransactionFailed = errors.New("transaction failed")

// TransactionFailedError names the aborted operation and keeps the failure
// that caused the abort. Cause is reachable through Reason for logging but
// errors.Is only matches ErrTransactionFailed.
type TransactionFailedError struct {
	Operation string
	Cause     error
}

// NewTransactionFailedError creates a TransactionFailedError without a cause.
func NewTransactionFailedError(operation string) *TransactionFailedError {
	return &TransactionFailedError{Operation: operation}
}

// NewTransactionFailedErrorWithCause creates a TransactionFailedError wrapping cause.
func NewTransactionFailedErrorWithCause(operation string, cause error) *TransactionFailedError {
	return &TransactionFailedError{Operation: operation, Cause: cause}
}

func (e *TransactionFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrTransactionFailed, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrTransactionFailed, e.Operation)
}

func (e *TransactionFailedError) Unwrap() error {
	return ErrTransactionFailed
}

// Reason returns the underlying failure.
func (e *TransactionFailedError) Reason() error {
	return e.Cause
}

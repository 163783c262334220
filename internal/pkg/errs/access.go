package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is the sentinel for missing or malformed credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is the sentinel for a valid identity that lacks the
	// privilege for an action, or presented a credential that failed verification.
	ErrForbidden = errors.New("forbidden")
)

// UnauthorizedError reports a request that carried no usable credential.
type UnauthorizedError struct {
	Reason string
	Cause  error
}

// NewUnauthorizedError creates an UnauthorizedError without a cause.
func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping cause.
func NewUnauthorizedErrorWithCause(reason string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrUnauthorized, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUnauthorized, e.Reason)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// ForbiddenError reports an identity that may not perform Action.
type ForbiddenError struct {
	Action string
	Cause  error
}

// NewForbiddenError creates a ForbiddenError without a cause.
func NewForbiddenError(action string) *ForbiddenError {
	return &ForbiddenError{Action: action}
}

// NewForbiddenErrorWithCause creates a ForbiddenError wrapping cause.
func NewForbiddenErrorWithCause(action string, cause error) *ForbiddenError {
	return &ForbiddenError{Action: action, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrForbidden, e.Action, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrForbidden, e.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

package kernel

import (
	"strings"

	"parcelhub/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var emailValidator = validator.New()

// Email is a normalized (trimmed, lower-cased) e-mail address. It is the
// join key between users, riders, parcels, payments, and withdrawals.
type Email struct {
	value string
}

// NewEmail normalizes s and checks it with the validator "email" rule.
func NewEmail(s string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if err := emailValidator.Var(normalized, "email"); err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	return Email{value: normalized}, nil
}

// MustEmail is NewEmail for literals; it panics on invalid input.
func MustEmail(s string) Email {
	e, err := NewEmail(s)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Email) String() string {
	return e.value
}

// IsEqual compares normalized addresses.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// Validate fails for the zero value.
func (e Email) Validate() error {
	if e.value == "" {
		return errs.NewValueIsRequiredError("email")
	}
	return nil
}

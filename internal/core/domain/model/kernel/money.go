package kernel

import (
	"fmt"

	"parcelhub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MinorUnitPlaces is the number of fractional digits kept for every amount.
const MinorUnitPlaces = 2

// Money is a non-negative amount in major currency units with exact decimal
// arithmetic. Products are rounded half-up to the nearest minor unit; nothing
// else rounds.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of zero.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney validates that amount is not negative and has no more fractional
// digits than a minor unit allows.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}
	if !amount.Equal(amount.Round(MinorUnitPlaces)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s has more than %d fractional digits", amount, MinorUnitPlaces),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal string such as "1250.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MoneyFromFloat converts a JSON number. The float is first rendered with its
// shortest exact representation so that 0.1 stays 0.1.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// MustMoney parses s and panics on error. Intended for tests and constants.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the underlying value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount for JSON encoding.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MinorUnitPlaces)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal compares amounts numerically, so 800 equals 800.00.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other. The result may be negative, which is how balance
// checks detect an overdraft; such a value is never persisted.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// MulRate returns m × rate rounded half-up to the nearest minor unit.
// For non-negative amounts decimal.Round (half away from zero) is half-up.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Round(MinorUnitPlaces)}
}

// Package withdrawal contains the cash-out record of the rider earnings ledger.
package withdrawal

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// Withdrawal is an append-only cash-out entry. Ledger totals are always
// recomputed from these entries, never stored.
type Withdrawal struct {
	id         kernel.UUID
	riderEmail kernel.Email
	amount     kernel.Money
	createdAt  time.Time
}

// NewWithdrawal requires a strictly positive amount.
func NewWithdrawal(id kernel.UUID, riderEmail kernel.Email, amount kernel.Money, createdAt time.Time) (*Withdrawal, error) {
	if err := errors.Join(id.Validate(), riderEmail.Validate()); err != nil {
		return nil, err
	}
	if amount.IsZero() || amount.IsNegative() {
		return nil, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0.01", "available balance")
	}
	return &Withdrawal{
		id:         id,
		riderEmail: riderEmail,
		amount:     amount,
		createdAt:  createdAt,
	}, nil
}

func (w *Withdrawal) ID() kernel.UUID          { return w.id }
func (w *Withdrawal) RiderEmail() kernel.Email { return w.riderEmail }
func (w *Withdrawal) Amount() kernel.Money     { return w.amount }
func (w *Withdrawal) CreatedAt() time.Time     { return w.createdAt }

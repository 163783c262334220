// Package payment contains the immutable record of a confirmed parcel payment.
package payment

import (
	"errors"
	"strings"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// Payment is written once when a parcel payment is confirmed and never changed.
type Payment struct {
	id            kernel.UUID
	parcelID      kernel.UUID
	email         kernel.Email
	amount        kernel.Money
	transactionID string
	paidAt        time.Time
}

// NewPayment validates and builds a payment record.
func NewPayment(
	id, parcelID kernel.UUID,
	email kernel.Email,
	amount kernel.Money,
	transactionID string,
	paidAt time.Time,
) (*Payment, error) {
	if err := errors.Join(id.Validate(), parcelID.Validate(), email.Validate()); err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, errs.NewValueIsInvalidError("amount")
	}
	return &Payment{
		id:            id,
		parcelID:      parcelID,
		email:         email,
		amount:        amount,
		transactionID: strings.TrimSpace(transactionID),
		paidAt:        paidAt,
	}, nil
}

func (p *Payment) ID() kernel.UUID       { return p.id }
func (p *Payment) ParcelID() kernel.UUID { return p.parcelID }
func (p *Payment) Email() kernel.Email   { return p.email }
func (p *Payment) Amount() kernel.Money  { return p.amount }
func (p *Payment) TransactionID() string { return p.transactionID }
func (p *Payment) PaidAt() time.Time     { return p.paidAt }

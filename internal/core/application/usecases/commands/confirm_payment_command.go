package commands

import (
	"errors"
	"strings"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand records that the payment processor accepted the
// customer's payment for a parcel. Creating the payment intent happens
// with the processor and is not part of this service.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	payer         kernel.Email
	amount        kernel.Money
	transactionID string

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand validates the confirmation.
func NewConfirmPaymentCommand(
	parcelID kernel.UUID,
	payer kernel.Email,
	amount kernel.Money,
	transactionID string,
) (ConfirmPaymentCommand, error) {
	if err := errors.Join(parcelID.Validate(), payer.Validate()); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return ConfirmPaymentCommand{
		parcelID:      parcelID,
		payer:         payer,
		amount:        amount,
		transactionID: strings.TrimSpace(transactionID),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

func (c ConfirmPaymentCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c ConfirmPaymentCommand) Payer() kernel.Email   { return c.payer }
func (c ConfirmPaymentCommand) Amount() kernel.Money  { return c.amount }
func (c ConfirmPaymentCommand) TransactionID() string { return c.transactionID }

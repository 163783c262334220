package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrRecordWithdrawalCommandIsNotConstructed = errors.New(
	"RecordWithdrawalCommand must be created via NewRecordWithdrawalCommand constructor",
)

// RecordWithdrawalCommand is a rider's cash-out request.
type RecordWithdrawalCommand struct { //nolint:recvcheck //using for validation
	riderEmail kernel.Email
	amount     kernel.Money

	guard guard.ConstructorGuard
}

// NewRecordWithdrawalCommand requires a strictly positive amount.
func NewRecordWithdrawalCommand(riderEmail kernel.Email, amount kernel.Money) (RecordWithdrawalCommand, error) {
	if err := riderEmail.Validate(); err != nil {
		return RecordWithdrawalCommand{}, err
	}
	if amount.IsZero() || amount.IsNegative() {
		return RecordWithdrawalCommand{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0.01", "available balance")
	}

	return RecordWithdrawalCommand{
		riderEmail: riderEmail,
		amount:     amount,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordWithdrawalCommand) Validate() error {
	return c.guard.Validate(ErrRecordWithdrawalCommandIsNotConstructed)
}

func (c RecordWithdrawalCommand) RiderEmail() kernel.Email { return c.riderEmail }
func (c RecordWithdrawalCommand) Amount() kernel.Money     { return c.amount }

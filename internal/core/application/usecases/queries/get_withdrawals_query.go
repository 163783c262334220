package queries

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrGetWithdrawalsQueryIsNotConstructed = errors.New(
	"GetWithdrawalsQuery must be created via NewGetWithdrawalsQuery constructor",
)

// GetWithdrawalsQuery reads a rider's cash-outs: either the running total
// or the full history.
type GetWithdrawalsQuery struct { //nolint:recvcheck //using for validation
	riderEmail kernel.Email

	guard guard.ConstructorGuard
}

func NewGetWithdrawalsQuery(riderEmail kernel.Email) (GetWithdrawalsQuery, error) {
	if err := riderEmail.Validate(); err != nil {
		return GetWithdrawalsQuery{}, err
	}
	return GetWithdrawalsQuery{
		riderEmail: riderEmail,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetWithdrawalsQuery) Validate() error {
	return q.guard.Validate(ErrGetWithdrawalsQueryIsNotConstructed)
}

func (q GetWithdrawalsQuery) RiderEmail() kernel.Email { return q.riderEmail }

// WithdrawalView is one cash-out of a rider.
type WithdrawalView struct {
	ID        kernel.UUID
	Amount    kernel.Money
	CreatedAt time.Time
}

package queries

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrGetPaymentsQueryIsNotConstructed = errors.New(
	"GetPaymentsQuery must be created via NewGetPaymentsQuery constructor",
)

// GetPaymentsQuery lists the payment history of one payer. Callers may only
// read their own history.
type GetPaymentsQuery struct { //nolint:recvcheck //using for validation
	email     kernel.Email
	requester kernel.Email

	guard guard.ConstructorGuard
}

func NewGetPaymentsQuery(email, requester kernel.Email) (GetPaymentsQuery, error) {
	if err := errors.Join(email.Validate(), requester.Validate()); err != nil {
		return GetPaymentsQuery{}, err
	}
	return GetPaymentsQuery{
		email:     email,
		requester: requester,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentsQueryIsNotConstructed)
}

func (q GetPaymentsQuery) Email() kernel.Email     { return q.email }
func (q GetPaymentsQuery) Requester() kernel.Email { return q.requester }

// PaymentView is one entry of a payment history.
type PaymentView struct {
	ID            kernel.UUID
	ParcelID      kernel.UUID
	Email         string
	Amount        kernel.Money
	TransactionID string
	PaidAt        time.Time
}

package commands

import (
	"errors"
	"fmt"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand books a parcel on behalf of the authenticated customer.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	createdBy kernel.Email
	details   parcel.Details
	totalCost kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand validates the booking. The total cost must be
// positive; district checks are left to the parcel aggregate.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	createdBy kernel.Email,
	details parcel.Details,
	totalCost kernel.Money,
) (CreateParcelCommand, error) {
	if err := errors.Join(parcelID.Validate(), createdBy.Validate()); err != nil {
		return CreateParcelCommand{}, err
	}
	if totalCost.IsZero() || totalCost.IsNegative() {
		return CreateParcelCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"totalCost",
			fmt.Errorf("%s is not greater than 0", totalCost),
		)
	}

	return CreateParcelCommand{
		parcelID:  parcelID,
		createdBy: createdBy,
		details:   details,
		totalCost: totalCost,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

func (c CreateParcelCommand) ParcelID() kernel.UUID   { return c.parcelID }
func (c CreateParcelCommand) CreatedBy() kernel.Email { return c.createdBy }
func (c CreateParcelCommand) Details() parcel.Details { return c.details }
func (c CreateParcelCommand) TotalCost() kernel.Money { return c.totalCost }

package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand moves a parcel to the next delivery status.
// Administrators may advance any parcel; riders only the parcels assigned
// to them.
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	parcelID     kernel.UUID
	target       parcel.DeliveryStatus
	actor        kernel.Email
	actorIsAdmin bool

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryCommand parses and validates the requested status.
func NewAdvanceDeliveryCommand(
	parcelID kernel.UUID,
	status string,
	actor kernel.Email,
	actorIsAdmin bool,
) (AdvanceDeliveryCommand, error) {
	target, statusErr := parcel.ParseDeliveryStatus(status)
	if err := errors.Join(parcelID.Validate(), actor.Validate(), statusErr); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return AdvanceDeliveryCommand{
		parcelID:     parcelID,
		target:       target,
		actor:        actor,
		actorIsAdmin: actorIsAdmin,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

func (c AdvanceDeliveryCommand) ParcelID() kernel.UUID         { return c.parcelID }
func (c AdvanceDeliveryCommand) Target() parcel.DeliveryStatus { return c.target }
func (c AdvanceDeliveryCommand) Actor() kernel.Email           { return c.actor }
func (c AdvanceDeliveryCommand) ActorIsAdmin() bool            { return c.actorIsAdmin }

package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand asks to hand a created parcel to an active, idle rider.
// Only administrators may issue it; the caller is recorded on the tracking
// entry.
//
// Example:
//
//	cmd, err := NewAssignRiderCommand(parcelID, riderID, riderEmail, adminEmail)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	parcelID   kernel.UUID
	riderID    kernel.UUID
	riderEmail kernel.Email
	assignedBy kernel.Email

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand validates every identifier of the assignment.
func NewAssignRiderCommand(
	parcelID, riderID kernel.UUID,
	riderEmail, assignedBy kernel.Email,
) (AssignRiderCommand, error) {
	if err := errors.Join(
		parcelID.Validate(),
		riderID.Validate(),
		riderEmail.Validate(),
		assignedBy.Validate(),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return AssignRiderCommand{
		parcelID:   parcelID,
		riderID:    riderID,
		riderEmail: riderEmail,
		assignedBy: assignedBy,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

func (c AssignRiderCommand) ParcelID() kernel.UUID    { return c.parcelID }
func (c AssignRiderCommand) RiderID() kernel.UUID     { return c.riderID }
func (c AssignRiderCommand) RiderEmail() kernel.Email { return c.riderEmail }
func (c AssignRiderCommand) AssignedBy() kernel.Email { return c.assignedBy }

package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/pkg/guard"
)

var ErrApplyRiderCommandIsNotConstructed = errors.New(
	"ApplyRiderCommand must be created via NewApplyRiderCommand constructor",
)

// ApplyRiderCommand submits a rider application for the authenticated user.
type ApplyRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	email   kernel.Email
	profile rider.Profile

	guard guard.ConstructorGuard
}

// NewApplyRiderCommand creates an application command.
func NewApplyRiderCommand(riderID kernel.UUID, email kernel.Email, profile rider.Profile) (ApplyRiderCommand, error) {
	if err := errors.Join(riderID.Validate(), email.Validate()); err != nil {
		return ApplyRiderCommand{}, err
	}
	return ApplyRiderCommand{
		riderID: riderID,
		email:   email,
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyRiderCommand) Validate() error {
	return c.guard.Validate(ErrApplyRiderCommandIsNotConstructed)
}

func (c ApplyRiderCommand) RiderID() kernel.UUID   { return c.riderID }
func (c ApplyRiderCommand) Email() kernel.Email    { return c.email }
func (c ApplyRiderCommand) Profile() rider.Profile { return c.profile }

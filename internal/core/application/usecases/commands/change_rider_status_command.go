package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/pkg/guard"
)

var ErrChangeRiderStatusCommandIsNotConstructed = errors.New(
	"ChangeRiderStatusCommand must be created via NewChangeRiderStatusCommand constructor",
)

// ChangeRiderStatusCommand is an administrative decision on a rider
// application: approve, reject, deactivate, or reactivate.
type ChangeRiderStatusCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	status  rider.Status

	guard guard.ConstructorGuard
}

// NewChangeRiderStatusCommand parses the wire status.
func NewChangeRiderStatusCommand(riderID kernel.UUID, status string) (ChangeRiderStatusCommand, error) {
	target, statusErr := rider.ParseStatus(status)
	if err := errors.Join(riderID.Validate(), statusErr); err != nil {
		return ChangeRiderStatusCommand{}, err
	}

	return ChangeRiderStatusCommand{
		riderID: riderID,
		status:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeRiderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeRiderStatusCommandIsNotConstructed)
}

// RiderID returns the application being decided.
func (c ChangeRiderStatusCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Status returns the requested application status.
func (c ChangeRiderStatusCommand) Status() rider.Status {
	return c.status
}

package commands

import (
	"errors"
	"strings"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrAddTrackingEventCommandIsNotConstructed = errors.New(
	"AddTrackingEventCommand must be created via NewAddTrackingEventCommand constructor",
)

// AddTrackingEventCommand appends a free-form entry to a parcel's history,
// for example a hub scan reported by a rider.
type AddTrackingEventCommand struct { //nolint:recvcheck //using for validation
	trackingID string
	status     string
	details    map[string]any
	updatedBy  kernel.Email

	guard guard.ConstructorGuard
}

// NewAddTrackingEventCommand requires a tracking id and a status.
func NewAddTrackingEventCommand(
	trackingID, status string,
	details map[string]any,
	updatedBy kernel.Email,
) (AddTrackingEventCommand, error) {
	trackingID = strings.TrimSpace(trackingID)
	status = strings.TrimSpace(status)

	var errList []error
	errList = append(errList, updatedBy.Validate())
	if trackingID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("trackingId"))
	}
	if status == "" {
		errList = append(errList, errs.NewValueIsRequiredError("status"))
	}
	if err := errors.Join(errList...); err != nil {
		return AddTrackingEventCommand{}, err
	}

	return AddTrackingEventCommand{
		trackingID: trackingID,
		status:     status,
		details:    details,
		updatedBy:  updatedBy,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAddTrackingEventCommandIsNotConstructed)
}

func (c AddTrackingEventCommand) TrackingID() string      { return c.trackingID }
func (c AddTrackingEventCommand) Status() string          { return c.status }
func (c AddTrackingEventCommand) Details() map[string]any { return c.details }
func (c AddTrackingEventCommand) UpdatedBy() kernel.Email { return c.updatedBy }

// Package tracking contains the append-only parcel tracking log.
package tracking

import (
	"errors"
	"strings"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// Statuses written by the system itself. Manually posted events may use any
// non-empty status.
const (
	StatusParcelCreated = "parcel_created"
	StatusPaymentDone   = "payment_done"
	StatusRiderAssigned = "rider_assigned"
	StatusPickedUp      = "picked_up"
	StatusDelivered     = "delivered"
	StatusNotCollected  = "not_collected"
)

// Event is one entry of a parcel's tracking history.
type Event struct {
	id         kernel.UUID
	trackingID string
	status     string
	details    map[string]any
	updatedBy  kernel.Email
	createdAt  time.Time
}

// NewEvent validates and builds a tracking entry.
func NewEvent(
	id kernel.UUID,
	trackingID, status string,
	details map[string]any,
	updatedBy kernel.Email,
	createdAt time.Time,
) (*Event, error) {
	trackingID = strings.TrimSpace(trackingID)
	status = strings.TrimSpace(status)

	var errList []error
	errList = append(errList, id.Validate(), updatedBy.Validate())
	if trackingID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("trackingId"))
	}
	if status == "" {
		errList = append(errList, errs.NewValueIsRequiredError("status"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	if details == nil {
		details = map[string]any{}
	}
	return &Event{
		id:         id,
		trackingID: trackingID,
		status:     status,
		details:    details,
		updatedBy:  updatedBy,
		createdAt:  createdAt,
	}, nil
}

func (e *Event) ID() kernel.UUID         { return e.id }
func (e *Event) TrackingID() string      { return e.trackingID }
func (e *Event) Status() string          { return e.status }
func (e *Event) Details() map[string]any { return e.details }
func (e *Event) UpdatedBy() kernel.Email { return e.updatedBy }
func (e *Event) CreatedAt() time.Time    { return e.createdAt }

// StatusForDelivery names the tracking status recorded when a parcel enters
// the given delivery state; ok is false for states that are not logged.
func StatusForDelivery(deliveryStatus string) (status string, ok bool) {
	switch deliveryStatus {
	case "rider_assign":
		return StatusRiderAssigned, true
	case "in-transit":
		return StatusPickedUp, true
	case "completed":
		return StatusDelivered, true
	case "not-collected":
		return StatusNotCollected, true
	default:
		return "", false
	}
}

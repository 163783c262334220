package queries

import (
	"errors"
	"strings"
	"time"

	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrGetTrackingQueryIsNotConstructed = errors.New(
	"GetTrackingQuery must be created via NewGetTrackingQuery constructor",
)

// GetTrackingQuery reads the tracking history of a parcel.
type GetTrackingQuery struct { //nolint:recvcheck //using for validation
	trackingID string

	guard guard.ConstructorGuard
}

func NewGetTrackingQuery(trackingID string) (GetTrackingQuery, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return GetTrackingQuery{}, errs.NewValueIsRequiredError("trackingId")
	}
	return GetTrackingQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingQueryIsNotConstructed)
}

func (q GetTrackingQuery) TrackingID() string { return q.trackingID }

// TrackingEventView is one entry of a tracking history.
type TrackingEventView struct {
	TrackingID string
	Status     string
	Details    map[string]any
	UpdatedBy  string
	CreatedAt  time.Time
}

package commands

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/tracking"
	"parcelhub/internal/core/ports"
)

// appendTrackingEvent writes one entry of a parcel's history inside the
// caller's transaction.
func appendTrackingEvent(
	ctx context.Context,
	repo ports.TrackingRepository,
	trackingID, status string,
	details map[string]any,
	updatedBy kernel.Email,
	at time.Time,
) error {
	event, err := tracking.NewEvent(kernel.NewUUID(), trackingID, status, details, updatedBy, at)
	if err != nil {
		return err
	}
	return repo.Add(ctx, event)
}

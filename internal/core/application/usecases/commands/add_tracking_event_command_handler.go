package commands

import (
	"context"
	"time"
)

// AddTrackingEventCommandHandler appends to the tracking log.
type AddTrackingEventCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewAddTrackingEventCommandHandler creates a handler for tracking entries.
func NewAddTrackingEventCommandHandler(uowFactory ParcelUoWFactory) AddTrackingEventCommandHandler {
	return AddTrackingEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h AddTrackingEventCommandHandler) Handle(ctx context.Context, cmd AddTrackingEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := appendTrackingEvent(ctx, uow.TrackingRepository(), cmd.TrackingID(), cmd.Status(),
		cmd.Details(), cmd.UpdatedBy(), time.Now().UTC()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

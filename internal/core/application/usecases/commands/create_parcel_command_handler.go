package commands

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/tracking"
	"parcelhub/internal/core/ports"
)

// CreateParcelCommandHandler books a parcel in created/unpaid state, issues
// its tracking number, and opens its tracking history.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	trackingID ports.TrackingIDGenerator
}

// NewCreateParcelCommandHandler creates a handler for parcel bookings.
func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	trackingID ports.TrackingIDGenerator,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		trackingID: trackingID,
	}
}

// Handle processes the command and returns the booked parcel.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p, err := parcel.NewParcel(cmd.ParcelID(), h.trackingID.Next(), cmd.CreatedBy(), cmd.Details(), cmd.TotalCost(), now)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = appendTrackingEvent(ctx, uow.TrackingRepository(), p.TrackingID(), tracking.StatusParcelCreated,
		map[string]any{
			"parcelId":         p.ID().String(),
			"senderDistrict":   p.Details().SenderDistrict,
			"receiverDistrict": p.Details().ReceiverDistrict,
		},
		cmd.CreatedBy(), now,
	); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

package commands

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/tracking"
	"parcelhub/internal/pkg/errs"
)

// AdvanceDeliveryCommandHandler applies a delivery status transition.
//
// Completion fixes the rider's earning on the parcel. Completion and
// not-collected both release the rider who held the parcel back to idle,
// in the same transaction as the parcel update.
type AdvanceDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAdvanceDeliveryCommandHandler creates a handler for status transitions.
func NewAdvanceDeliveryCommandHandler(uowFactory DeliveryUoWFactory) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated parcel.
//
// Errors:
//   - ObjectNotFoundError when the parcel does not exist
//   - ForbiddenError when a rider advances a parcel not assigned to them
//   - ValueIsInvalidError when the transition is not in the table
func (h AdvanceDeliveryCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if !cmd.ActorIsAdmin() && !p.IsAssignedTo(cmd.Actor()) {
		return nil, errs.NewForbiddenError("update delivery status of parcel " + p.ID().String())
	}

	heldBy := p.Assignment()
	now := time.Now().UTC()
	if err = p.Advance(cmd.Target(), now); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if heldBy != nil && cmd.Target().IsTerminal() {
		riderRepo := uow.RiderRepository()
		r, getErr := riderRepo.GetForUpdate(ctx, heldBy.RiderID)
		if getErr != nil {
			return nil, getErr
		}
		r.FinishDelivery()
		if err = riderRepo.Update(ctx, r); err != nil {
			return nil, err
		}
	}

	if status, ok := tracking.StatusForDelivery(cmd.Target().String()); ok {
		details := map[string]any{"deliveryStatus": cmd.Target().String()}
		if earn := p.RiderEarn(); earn != nil {
			details["rider_earn"] = earn.String()
		}
		if err = appendTrackingEvent(ctx, uow.TrackingRepository(), p.TrackingID(), status, details, cmd.Actor(), now); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

package commands

import (
	"context"
)

// DeleteParcelCommandHandler removes a parcel. A rider still carrying the
// parcel is released to idle in the same transaction so that deletion
// cannot strand a rider in delivery.
type DeleteParcelCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel deletion.
func NewDeleteParcelCommandHandler(uowFactory DeliveryUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if a := p.Assignment(); a != nil && !p.DeliveryStatus().IsTerminal() {
		riderRepo := uow.RiderRepository()
		r, getErr := riderRepo.GetForUpdate(ctx, a.RiderID)
		if getErr != nil {
			return getErr
		}
		r.FinishDelivery()
		if err = riderRepo.Update(ctx, r); err != nil {
			return err
		}
	}

	if err = parcelRepo.Delete(ctx, p.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

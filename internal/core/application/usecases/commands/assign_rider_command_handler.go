package commands

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/tracking"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/pkg/errs"
)

// AssignmentFailed is the operation name carried by every TransactionFailedError
// the assignment handler returns.
const AssignmentFailed = "AssignmentFailed"

// AssignRiderCommandHandler links a rider to a parcel in one transaction.
//
// Both rows are locked in a fixed order, parcel first, so that concurrent
// assignments of the same parcel queue up: the first commits, the second
// then reads rider_assign and fails the transition. Either every write
// (parcel, rider, tracking entry) is committed or none is.
//
// Every failure, including an unknown parcel or rider, is reported as a
// TransactionFailedError named AssignmentFailed whose Reason is the cause.
type AssignRiderCommandHandler struct {
	uowFactory DeliveryUoWFactory
	policy     services.AssignmentPolicy
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
func NewAssignRiderCommandHandler(uowFactory DeliveryUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAssignmentPolicy(),
	}
}

// Handle processes the assignment command.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.assign(ctx, cmd); err != nil {
		return errs.NewTransactionFailedErrorWithCause(AssignmentFailed, err)
	}
	return nil
}

func (h AssignRiderCommandHandler) assign(ctx context.Context, cmd AssignRiderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	riderRepo := uow.RiderRepository()

	p, err := parcelRepo.GetForUpdate(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	r, err := riderRepo.GetForUpdate(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = h.policy.Assign(p, r, cmd.RiderEmail(), now); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, r); err != nil {
		return err
	}

	if err = appendTrackingEvent(ctx, uow.TrackingRepository(), p.TrackingID(), tracking.StatusRiderAssigned,
		map[string]any{
			"parcelId":   p.ID().String(),
			"riderId":    r.ID().String(),
			"riderEmail": r.Email().String(),
		},
		cmd.AssignedBy(), now,
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

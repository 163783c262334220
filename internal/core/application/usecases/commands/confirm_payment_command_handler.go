package commands

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/payment"
	"parcelhub/internal/core/domain/model/tracking"
	"parcelhub/internal/pkg/errs"
)

// ConfirmPaymentCommandHandler marks a parcel paid and stores the payment
// record and tracking entry in one transaction. Only the customer who booked
// the parcel may pay for it, exactly once, and for exactly its total cost.
type ConfirmPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmations.
func NewConfirmPaymentCommandHandler(uowFactory PaymentUoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the stored payment.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) (*payment.Payment, error) {
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

	if !p.CreatedBy().IsEqual(cmd.Payer()) {
		return nil, errs.NewForbiddenError("pay for parcel " + p.ID().String())
	}

	if err = p.MarkPaid(cmd.Amount()); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record, err := payment.NewPayment(kernel.NewUUID(), p.ID(), cmd.Payer(), cmd.Amount(), cmd.TransactionID(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.PaymentRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if err = appendTrackingEvent(ctx, uow.TrackingRepository(), p.TrackingID(), tracking.StatusPaymentDone,
		map[string]any{
			"amount":        cmd.Amount().String(),
			"transactionId": cmd.TransactionID(),
		},
		cmd.Payer(), now,
	); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}

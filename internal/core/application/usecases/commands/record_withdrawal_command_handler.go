package commands

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/withdrawal"
	"parcelhub/internal/pkg/errs"
)

// RecordWithdrawalCommandHandler appends a cash-out to the ledger after
// checking it against the rider's available balance:
//
//	available = Σ rider_earn over completed parcels − Σ previous withdrawals
//
// The rider row is locked for the duration of the check so that two
// concurrent cash-outs cannot both spend the same balance.
type RecordWithdrawalCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewRecordWithdrawalCommandHandler creates a handler for rider cash-outs.
func NewRecordWithdrawalCommandHandler(uowFactory LedgerUoWFactory) RecordWithdrawalCommandHandler {
	return RecordWithdrawalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the stored withdrawal.
// An amount above the available balance is a ValueIsOutOfRangeError.
func (h RecordWithdrawalCommandHandler) Handle(
	ctx context.Context,
	cmd RecordWithdrawalCommand,
) (*withdrawal.Withdrawal, error) {
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

	if _, err := uow.RiderRepository().GetByEmailForUpdate(ctx, cmd.RiderEmail()); err != nil {
		return nil, err
	}

	earned, err := uow.ParcelRepository().TotalEarnedByRider(ctx, cmd.RiderEmail())
	if err != nil {
		return nil, err
	}

	withdrawalRepo := uow.WithdrawalRepository()
	withdrawn, err := withdrawalRepo.TotalByRider(ctx, cmd.RiderEmail())
	if err != nil {
		return nil, err
	}

	available := earned.Sub(withdrawn)
	if cmd.Amount().GreaterThan(available) {
		return nil, errs.NewValueIsOutOfRangeError("amount", cmd.Amount().String(), "0.01", available.String())
	}

	record, err := withdrawal.NewWithdrawal(kernel.NewUUID(), cmd.RiderEmail(), cmd.Amount(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = withdrawalRepo.Add(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}

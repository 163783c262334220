package commands

import (
	"context"
	"errors"

	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/pkg/errs"
)

// ChangeRiderStatusResult reports what the status change wrote.
type ChangeRiderStatusResult struct {
	ModifiedCount int
	RoleChanged   bool
}

// ChangeRiderStatusCommandHandler updates a rider's application status and
// cascades the implied role onto the user account with the same e-mail.
// Both writes share one transaction, so role and rider status never
// disagree after a commit.
//
// A rider who has not logged in yet has no account; the cascade is skipped
// and the role is derived when the account is first created.
type ChangeRiderStatusCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewChangeRiderStatusCommandHandler creates a handler for rider status changes.
func NewChangeRiderStatusCommandHandler(uowFactory AccountUoWFactory) ChangeRiderStatusCommandHandler {
	return ChangeRiderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h ChangeRiderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeRiderStatusCommand,
) (ChangeRiderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeRiderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeRiderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	userRepo := uow.UserRepository()

	r, err := riderRepo.GetForUpdate(ctx, cmd.RiderID())
	if err != nil {
		return ChangeRiderStatusResult{}, err
	}

	if err = r.ChangeStatus(cmd.Status()); err != nil {
		return ChangeRiderStatusResult{}, err
	}

	if err = riderRepo.Update(ctx, r); err != nil {
		return ChangeRiderStatusResult{}, err
	}

	result := ChangeRiderStatusResult{ModifiedCount: 1}

	u, err := userRepo.GetByEmail(ctx, r.Email())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// no account yet
	case err != nil:
		return ChangeRiderStatusResult{}, err
	default:
		changed, cascadeErr := services.ApplyRoleCascade(r, u)
		if cascadeErr != nil {
			return ChangeRiderStatusResult{}, cascadeErr
		}
		if changed {
			if err = userRepo.Update(ctx, u); err != nil {
				return ChangeRiderStatusResult{}, err
			}
			result.RoleChanged = true
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeRiderStatusResult{}, err
	}

	return result, nil
}

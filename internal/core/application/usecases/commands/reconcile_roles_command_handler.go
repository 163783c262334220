package commands

import (
	"context"
	"errors"

	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/pkg/errs"
)

// ReconcileRolesCommandHandler repairs accounts whose role diverged from
// their rider application, for example rows edited by hand or accounts
// created by an older release. Repairs are committed together.
type ReconcileRolesCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewReconcileRolesCommandHandler creates a reconciliation handler.
func NewReconcileRolesCommandHandler(uowFactory AccountUoWFactory) ReconcileRolesCommandHandler {
	return ReconcileRolesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the e-mails of repaired accounts.
func (h ReconcileRolesCommandHandler) Handle(ctx context.Context, cmd ReconcileRolesCommand) ([]string, error) {
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

	userRepo := uow.UserRepository()

	riders, err := uow.RiderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	repaired := make([]string, 0)
	for _, r := range riders {
		u, getErr := userRepo.GetByEmail(ctx, r.Email())
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			continue
		}
		if getErr != nil {
			return nil, getErr
		}

		changed, cascadeErr := services.ApplyRoleCascade(r, u)
		if cascadeErr != nil {
			return nil, cascadeErr
		}
		if !changed {
			continue
		}

		if err = userRepo.Update(ctx, u); err != nil {
			return nil, err
		}
		repaired = append(repaired, u.Email().String())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return repaired, nil
}

package commands

import (
	"context"
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/pkg/errs"
)

// ApplyRiderCommandHandler stores a pending rider application. Each e-mail
// may apply once; administrators may not apply at all, since the role
// cascade would otherwise have to decide between two privileged roles.
type ApplyRiderCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewApplyRiderCommandHandler creates a handler for rider applications.
func NewApplyRiderCommandHandler(uowFactory AccountUoWFactory) ApplyRiderCommandHandler {
	return ApplyRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the stored application.
// A second application for the same e-mail is an ObjectAlreadyExistsError.
func (h ApplyRiderCommandHandler) Handle(ctx context.Context, cmd ApplyRiderCommand) (*rider.Rider, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r, err := rider.NewRider(cmd.RiderID(), cmd.Email(), cmd.Profile(), time.Now().UTC())
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

	u, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// first login has not happened yet
	case err != nil:
		return nil, err
	case u.HasRole(user.RoleAdmin):
		return nil, errs.NewForbiddenError("apply as rider with an administrator account")
	}

	if err = uow.RiderRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

package commands

import (
	"context"
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/pkg/errs"
)

// LoginUserResult is the account after the login was recorded.
type LoginUserResult struct {
	IsNewUser bool
	User      *user.User
}

// LoginUserCommandHandler creates the account on first login and touches
// lastLoginAt afterwards.
//
// The role of a new account is derived, never taken from the client:
//   - rider when an active rider application carries the e-mail
//   - admin when the e-mail is a bootstrap administrator
//   - user otherwise
//
// A bootstrap administrator whose account already exists is promoted on
// login unless an active rider carries the same e-mail.
type LoginUserCommandHandler struct {
	uowFactory  AccountUoWFactory
	adminEmails map[string]struct{}
}

// NewLoginUserCommandHandler creates a login handler. adminEmails lists
// the bootstrap administrators.
func NewLoginUserCommandHandler(uowFactory AccountUoWFactory, adminEmails []kernel.Email) LoginUserCommandHandler {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		admins[e.String()] = struct{}{}
	}
	return LoginUserCommandHandler{
		uowFactory:  uowFactory,
		adminEmails: admins,
	}
}

// Handle processes the command.
func (h LoginUserCommandHandler) Handle(ctx context.Context, cmd LoginUserCommand) (LoginUserResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginUserResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginUserResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	now := time.Now().UTC()
	_, isAdmin := h.adminEmails[cmd.Email().String()]

	u, err := userRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		role, roleErr := h.initialRole(ctx, uow, cmd.Email(), isAdmin)
		if roleErr != nil {
			return LoginUserResult{}, roleErr
		}
		u, err = user.NewUser(kernel.NewUUID(), cmd.Email(), cmd.Name(), role, now)
		if err != nil {
			return LoginUserResult{}, err
		}
		if err = userRepo.Add(ctx, u); err != nil {
			return LoginUserResult{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return LoginUserResult{}, err
		}
		return LoginUserResult{IsNewUser: true, User: u}, nil

	case err != nil:
		return LoginUserResult{}, err
	}

	u.TouchLogin(now)
	if isAdmin {
		riding, riderErr := hasActiveRider(ctx, uow, cmd.Email())
		if riderErr != nil {
			return LoginUserResult{}, riderErr
		}
		if !riding {
			if _, err = u.ChangeRole(user.RoleAdmin); err != nil {
				return LoginUserResult{}, err
			}
		}
	}
	if err = userRepo.Update(ctx, u); err != nil {
		return LoginUserResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return LoginUserResult{}, err
	}
	return LoginUserResult{IsNewUser: false, User: u}, nil
}

func (h LoginUserCommandHandler) initialRole(
	ctx context.Context,
	uow AccountUoW,
	email kernel.Email,
	isAdmin bool,
) (user.Role, error) {
	riding, err := hasActiveRider(ctx, uow, email)
	if err != nil {
		return user.RoleUnknown, err
	}
	switch {
	case riding:
		role, _ := services.RoleForRiderStatus(rider.Active)
		return role, nil
	case isAdmin:
		return user.RoleAdmin, nil
	default:
		return user.RoleUser, nil
	}
}

// hasActiveRider reports whether an active rider application carries email.
// Such an account stays a rider so the status cascade keeps owning its role.
func hasActiveRider(ctx context.Context, uow AccountUoW, email kernel.Email) (bool, error) {
	r, err := uow.RiderRepository().GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return r.Status() == rider.Active, nil
}

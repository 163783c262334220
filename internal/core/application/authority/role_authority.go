// Package authority gates operations by the caller's current role.
//
// The identity gateway only vouches for who the caller is; what the caller
// may do is decided here from the role stored in the user store, so a role
// change takes effect on the very next request.
package authority

import (
	"context"
	"errors"
	"fmt"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/pkg/errs"
)

// UserLookup is the read side of the user store the authority needs.
type UserLookup interface {
	GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error)
}

// RoleAuthority resolves callers to accounts and checks their roles.
type RoleAuthority struct {
	users UserLookup
}

func NewRoleAuthority(users UserLookup) *RoleAuthority {
	return &RoleAuthority{users: users}
}

// RequireRole returns the caller's account when its role is one of roles.
// A caller without an account or with another role gets a ForbiddenError;
// store failures are returned unchanged.
func (a *RoleAuthority) RequireRole(ctx context.Context, identity user.Identity, roles ...user.Role) (*user.User, error) {
	if err := identity.Email.Validate(); err != nil {
		return nil, errs.NewUnauthorizedErrorWithCause("identity has no email", err)
	}

	u, err := a.users.GetByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewForbiddenErrorWithCause("access this resource", err)
		}
		return nil, err
	}

	if len(roles) > 0 && !u.HasRole(roles...) {
		return nil, errs.NewForbiddenErrorWithCause(
			"access this resource",
			fmt.Errorf("role %s is not allowed", u.Role()),
		)
	}
	return u, nil
}

package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrGetUserRoleQueryIsNotConstructed = errors.New(
	"GetUserRoleQuery must be created via NewGetUserRoleQuery constructor",
)

// GetUserRoleQuery reads the role stored for an account.
type GetUserRoleQuery struct { //nolint:recvcheck //using for validation
	email kernel.Email

	guard guard.ConstructorGuard
}

func NewGetUserRoleQuery(email kernel.Email) (GetUserRoleQuery, error) {
	if err := email.Validate(); err != nil {
		return GetUserRoleQuery{}, err
	}
	return GetUserRoleQuery{email: email, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRoleQueryIsNotConstructed)
}

func (q GetUserRoleQuery) Email() kernel.Email { return q.email }

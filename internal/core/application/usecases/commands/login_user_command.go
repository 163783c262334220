package commands

import (
	"errors"
	"strings"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

// LoginUserCommand records a login of a verified identity. Any role the
// client may claim is deliberately not part of the command.
type LoginUserCommand struct { //nolint:recvcheck //using for validation
	email kernel.Email
	name  string

	guard guard.ConstructorGuard
}

// NewLoginUserCommand creates a login command for the token's e-mail.
func NewLoginUserCommand(email kernel.Email, name string) (LoginUserCommand, error) {
	if err := email.Validate(); err != nil {
		return LoginUserCommand{}, err
	}
	return LoginUserCommand{
		email: email,
		name:  strings.TrimSpace(name),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

func (c LoginUserCommand) Email() kernel.Email { return c.email }
func (c LoginUserCommand) Name() string        { return c.name }

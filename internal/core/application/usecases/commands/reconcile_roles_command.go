package commands

import (
	"errors"

	"parcelhub/internal/pkg/guard"
)

var ErrReconcileRolesCommandIsNotConstructed = errors.New(
	"ReconcileRolesCommand must be created via NewReconcileRolesCommand constructor",
)

// ReconcileRolesCommand re-applies the rider status to user role cascade to
// every rider that has an account.
type ReconcileRolesCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileRolesCommand creates a parameterless reconciliation command.
func NewReconcileRolesCommand() ReconcileRolesCommand {
	return ReconcileRolesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReconcileRolesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileRolesCommandIsNotConstructed)
}

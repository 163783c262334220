package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new account. Returns an ObjectAlreadyExistsError when
	// the e-mail is taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists role and last-login changes.
	Update(ctx context.Context, aggregate *user.User) error

	// GetByEmail loads the account for email. Returns an ObjectNotFoundError
	// if there is none.
	GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error)
}

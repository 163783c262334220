package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
type RiderRepository interface {
	// Add persists a new application. Returns an ObjectAlreadyExistsError
	// when the e-mail already has an application.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists status and work-status changes.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get loads a rider. Returns an ObjectNotFoundError if it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetForUpdate loads a rider and holds a row lock until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetByEmail loads the rider registered under email.
	GetByEmail(ctx context.Context, email kernel.Email) (*rider.Rider, error)

	// GetByEmailForUpdate is GetByEmail with a row lock.
	GetByEmailForUpdate(ctx context.Context, email kernel.Email) (*rider.Rider, error)

	// GetAll returns every rider, oldest first.
	GetAll(ctx context.Context) ([]*rider.Rider, error)
}

// Package ports defines the contracts between the parcelhub core and its
// adapters: repositories, the unit of work, identity verification, caching,
// and id generation.
package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a newly booked parcel.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists status, payment, assignment, and earning changes.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get loads a parcel. Returns an ObjectNotFoundError if it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetForUpdate loads a parcel and holds a row lock until the surrounding
	// transaction ends. Concurrent writers of the same parcel queue behind it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// Delete removes a parcel. Returns an ObjectNotFoundError if it does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// TotalEarnedByRider sums rider_earn over completed parcels assigned to
	// the rider. Returns zero when there are none.
	TotalEarnedByRider(ctx context.Context, riderEmail kernel.Email) (kernel.Money, error)
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parcelhub/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// RiderRepoFactory provides access to the rider repository within a transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// TrackingRepoFactory provides access to the tracking log within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// WithdrawalRepoFactory provides access to the withdrawal ledger within a transaction.
	WithdrawalRepoFactory interface {
		WithdrawalRepository() ports.WithdrawalRepository
	}

	// ParcelUoW manages transactions that book parcels or append tracking
	// entries without touching riders.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		TrackingRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// DeliveryUoW manages transactions that move a parcel through its
	// lifecycle together with the rider carrying it.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   p, err := uow.ParcelRepository().GetForUpdate(ctx, parcelID)
	//   r, err := uow.RiderRepository().GetForUpdate(ctx, riderID)
	//   // ... mutate both, append a tracking event
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		ParcelRepoFactory
		RiderRepoFactory
		TrackingRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// PaymentUoW manages payment confirmation.
	PaymentUoW interface {
		TxManager
		ParcelRepoFactory
		PaymentRepoFactory
		TrackingRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// AccountUoW manages transactions spanning user accounts and rider
	// applications, such as the role cascade.
	AccountUoW interface {
		TxManager
		RiderRepoFactory
		UserRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// LedgerUoW manages rider cash-outs. The parcel repository supplies
	// earned totals for the balance check.
	LedgerUoW interface {
		TxManager
		ParcelRepoFactory
		RiderRepoFactory
		WithdrawalRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}
)

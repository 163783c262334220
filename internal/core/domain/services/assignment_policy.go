package services

import (
	"errors"
	"fmt"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/pkg/errs"
)

// ErrRiderEmailMismatch is returned when the e-mail supplied with an
// assignment does not belong to the referenced rider.
var ErrRiderEmailMismatch = errors.New("rider email does not match rider record")

// AssignmentPolicy is a domain service that links a rider to a parcel.
//
// Business rules:
//   - The parcel must be in Created status
//   - The rider must be Active and Idle
//   - The supplied e-mail must be the rider's own
//   - On success both aggregates are mutated; persisting them together is
//     the caller's job
//
// Example usage:
//
//	policy := NewAssignmentPolicy()
//	if err := policy.Assign(p, r, email, now); err != nil {
//	    return err
//	}
//	// update parcel and rider in the same unit of work
type AssignmentPolicy struct{}

// NewAssignmentPolicy creates a new AssignmentPolicy instance.
func NewAssignmentPolicy() AssignmentPolicy {
	return AssignmentPolicy{}
}

// Assign validates the pair and applies both sides of the assignment.
// If any rule fails neither aggregate is modified.
func (AssignmentPolicy) Assign(p *parcel.Parcel, r *rider.Rider, riderEmail kernel.Email, at time.Time) error {
	if err := errors.Join(p.Validate(), r.Validate()); err != nil {
		return err
	}
	if !r.Email().IsEqual(riderEmail) {
		return errs.NewValueIsInvalidErrorWithCause(
			"riderEmail",
			fmt.Errorf("%w: %s", ErrRiderEmailMismatch, riderEmail),
		)
	}
	if err := p.DeliveryStatus().CanTransitionTo(parcel.RiderAssign); err != nil {
		return err
	}

	if err := r.StartDelivery(); err != nil {
		return err
	}
	if err := p.AssignRider(r.ID(), r.Email(), at); err != nil {
		r.FinishDelivery()
		return err
	}
	return nil
}

package parcel

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// DeliveryStatus is the position of a parcel in its delivery lifecycle.
//
// Legal transitions:
//
//	Created ──(assignment only)──> RiderAssign ──> InTransit ──> Completed
//	                                    │              │
//	                                    └──────────────┴──> NotCollected
//
// Completed and NotCollected are terminal. Every pair missing from the table
// is rejected with a ValueIsInvalidError.
type DeliveryStatus int

const (
	// DeliveryUnknown is the zero value and never valid.
	DeliveryUnknown DeliveryStatus = iota

	// Created is the status of a freshly booked parcel.
	Created

	// RiderAssign means a rider has been linked and is expected to collect.
	RiderAssign

	// InTransit means the rider has collected the parcel.
	InTransit

	// Completed means the parcel was delivered and the rider earning is fixed.
	Completed

	// NotCollected means the delivery was abandoned after assignment.
	NotCollected
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown: "unknown",
		Created:         "created",
		RiderAssign:     "rider_assign",
		InTransit:       "in-transit",
		Completed:       "completed",
		NotCollected:    "not-collected",
	}
}

// deliveryTransitions is the complete transition table. Created→RiderAssign
// is listed here but Parcel.Advance refuses it; only Parcel.AssignRider may
// take that edge because it must also record the rider.
func deliveryTransitions() map[DeliveryStatus][]DeliveryStatus {
	//nolint:exhaustive // terminal and unknown states have no outgoing edges
	return map[DeliveryStatus][]DeliveryStatus{
		Created:     {RiderAssign},
		RiderAssign: {InTransit, NotCollected},
		InTransit:   {Completed, NotCollected},
	}
}

// ParseDeliveryStatus maps a wire string onto a DeliveryStatus.
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	for status, str := range getDeliveryStatusStrings() {
		if status != DeliveryUnknown && str == s {
			return status, nil
		}
	}
	return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus",
		fmt.Errorf("%q is not a delivery status", s),
	)
}

// String returns the wire representation.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects DeliveryUnknown and out-of-range values.
func (s DeliveryStatus) Validate() error {
	if s <= DeliveryUnknown || s > NotCollected {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves s.
func (s DeliveryStatus) IsTerminal() bool {
	return s == Completed || s == NotCollected
}

// HasRider reports whether a parcel in status s must carry an assigned rider.
func (s DeliveryStatus) HasRider() bool {
	return s == RiderAssign || s == InTransit || s == Completed
}

// CanTransitionTo returns nil when s→target is in the transition table.
func (s DeliveryStatus) CanTransitionTo(target DeliveryStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}
	for _, allowed := range deliveryTransitions()[s] {
		if allowed == target {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus",
		fmt.Errorf("transition from %s to %s is not allowed", s, target),
	)
}

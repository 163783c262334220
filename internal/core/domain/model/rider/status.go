package rider

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// Status is the state of a rider application.
//
//	Pending ──┬──> Active <──> Deactivated
//	          └──> Rejected
type Status int

const (
	StatusUnknown Status = iota
	Pending
	Active
	Rejected
	Deactivated
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Active:        "active",
		Rejected:      "rejected",
		Deactivated:   "deactivated",
	}
}

func statusTransitions() map[Status][]Status {
	//nolint:exhaustive // rejected is terminal
	return map[Status][]Status{
		Pending:     {Active, Rejected},
		Active:      {Deactivated},
		Deactivated: {Active},
	}
}

// ParseStatus maps a wire string onto a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a rider status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > Deactivated {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid rider status", s))
	}
	return nil
}

// CanTransitionTo returns nil when s→target is a legal application change.
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("transition from %s to %s is not allowed", s, target),
	)
}

// WorkStatus tells whether an active rider is carrying a parcel.
type WorkStatus int

const (
	WorkUnknown WorkStatus = iota
	Idle
	InDelivery
)

func getWorkStatusStrings() map[WorkStatus]string {
	return map[WorkStatus]string{
		WorkUnknown: "unknown",
		Idle:        "idle",
		InDelivery:  "in-delivery",
	}
}

// ParseWorkStatus maps a wire string onto a WorkStatus.
func ParseWorkStatus(s string) (WorkStatus, error) {
	switch s {
	case "idle":
		return Idle, nil
	case "in-delivery":
		return InDelivery, nil
	default:
		return WorkUnknown, errs.NewValueIsInvalidErrorWithCause("work_status", fmt.Errorf("%q is not a work status", s))
	}
}

func (w WorkStatus) String() string {
	if str, ok := getWorkStatusStrings()[w]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects WorkUnknown and out-of-range values.
func (w WorkStatus) Validate() error {
	if w != Idle && w != InDelivery {
		return errs.NewValueIsInvalidErrorWithCause("work_status", fmt.Errorf("%d is not a valid work status", w))
	}
	return nil
}

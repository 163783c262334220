package rider

import (
	"errors"
	"strings"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// ErrRiderIsNotConstructed is returned when a Rider was not created through
// NewRider or RestoreRider.
var ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider constructor")

// Profile holds the descriptive fields of a rider application.
type Profile struct {
	Name     string
	District string
	Phone    string
}

// Rider is the aggregate for a rider application and the rider's current
// workload. WorkStatus only becomes InDelivery through StartDelivery, which
// the assignment coordinator calls in the same transaction as the parcel
// update.
type Rider struct {
	id            kernel.UUID
	email         kernel.Email
	profile       Profile
	status        Status
	workStatus    WorkStatus
	createdAt     time.Time
	isConstructed bool
}

// NewRider records a Pending, Idle application.
func NewRider(id kernel.UUID, email kernel.Email, profile Profile, createdAt time.Time) (*Rider, error) {
	r := &Rider{
		status:        Pending,
		workStatus:    Idle,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		email.Validate(),
		r.setProfile(profile),
	); err != nil {
		return nil, err
	}

	r.id = id
	r.email = email
	return r, nil
}

// RestoreRider rebuilds a rider from storage.
func RestoreRider(
	id kernel.UUID,
	email kernel.Email,
	profile Profile,
	status Status,
	workStatus WorkStatus,
	createdAt time.Time,
) (*Rider, error) {
	r, err := NewRider(id, email, profile, createdAt)
	if err != nil {
		return nil, err
	}
	if err = errors.Join(status.Validate(), workStatus.Validate()); err != nil {
		return nil, err
	}
	r.status = status
	r.workStatus = workStatus
	return r, nil
}

// Validate ensures the rider was built by a constructor.
func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}
	return nil
}

func (r *Rider) ID() kernel.UUID        { return r.id }
func (r *Rider) Email() kernel.Email    { return r.email }
func (r *Rider) Profile() Profile       { return r.profile }
func (r *Rider) Status() Status         { return r.status }
func (r *Rider) WorkStatus() WorkStatus { return r.workStatus }
func (r *Rider) CreatedAt() time.Time   { return r.createdAt }

// ChangeStatus applies an administrative decision on the application.
// An active rider cannot be deactivated while carrying a parcel.
func (r *Rider) ChangeStatus(target Status) error {
	if err := r.status.CanTransitionTo(target); err != nil {
		return err
	}
	if target == Deactivated && r.workStatus == InDelivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errors.New("rider cannot be deactivated while in delivery"),
		)
	}
	r.status = target
	return nil
}

// StartDelivery marks an active, idle rider as busy.
func (r *Rider) StartDelivery() error {
	if r.status != Active {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errors.New("only active riders can take deliveries, rider is "+r.status.String()),
		)
	}
	if r.workStatus != Idle {
		return errs.NewValueIsInvalidErrorWithCause(
			"work_status",
			errors.New("rider is already in delivery"),
		)
	}
	r.workStatus = InDelivery
	return nil
}

// FinishDelivery returns the rider to Idle. Calling it on an idle rider is a no-op.
func (r *Rider) FinishDelivery() {
	r.workStatus = Idle
}

func (r *Rider) setProfile(p Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.District = strings.TrimSpace(p.District)
	p.Phone = strings.TrimSpace(p.Phone)

	var errList []error
	if p.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if p.District == "" {
		errList = append(errList, errs.NewValueIsRequiredError("district"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	r.profile = p
	return nil
}

package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not created
	// through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")
)

// Details are the customer-supplied descriptive fields of a parcel.
type Details struct {
	Title            string
	SenderName       string
	SenderDistrict   string
	ReceiverName     string
	ReceiverDistrict string
}

// Assignment links a parcel to the rider who carries it.
type Assignment struct {
	RiderID    kernel.UUID
	RiderEmail kernel.Email
	AssignedAt time.Time
}

// Parcel is the aggregate root for a shipment. It owns the delivery state
// machine and the rider earning computed on completion.
//
// Invariants:
//   - riderEarn is set if and only if the status is Completed
//   - assignment is set if and only if the status is RiderAssign, InTransit, or Completed
//   - status only changes along the transition table of DeliveryStatus
type Parcel struct {
	id             kernel.UUID
	trackingID     string
	createdBy      kernel.Email
	details        Details
	totalCost      kernel.Money
	paymentStatus  PaymentStatus
	deliveryStatus DeliveryStatus
	assignment     *Assignment
	pickedAt       *time.Time
	deliveredAt    *time.Time
	riderEarn      *kernel.Money
	createdAt      time.Time
	isConstructed  bool
}

// NewParcel books a parcel in Created/Unpaid state.
func NewParcel(
	id kernel.UUID,
	trackingID string,
	createdBy kernel.Email,
	details Details,
	totalCost kernel.Money,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		totalCost:      totalCost,
		paymentStatus:  Unpaid,
		deliveryStatus: Created,
		createdAt:      createdAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingID(trackingID),
		p.setCreatedBy(createdBy),
		p.setDetails(details),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Snapshot is the full persisted state of a parcel, used to rebuild the
// aggregate from storage.
type Snapshot struct {
	ID             kernel.UUID
	TrackingID     string
	CreatedBy      kernel.Email
	Details        Details
	TotalCost      kernel.Money
	PaymentStatus  PaymentStatus
	DeliveryStatus DeliveryStatus
	Assignment     *Assignment
	PickedAt       *time.Time
	DeliveredAt    *time.Time
	RiderEarn      *kernel.Money
	CreatedAt      time.Time
}

// RestoreParcel rebuilds a parcel and re-checks every invariant, so that a
// corrupted row cannot re-enter the domain.
func RestoreParcel(s Snapshot) (*Parcel, error) {
	p, err := NewParcel(s.ID, s.TrackingID, s.CreatedBy, s.Details, s.TotalCost, s.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(s.PaymentStatus.Validate(), s.DeliveryStatus.Validate()); err != nil {
		return nil, err
	}

	if s.DeliveryStatus.HasRider() != (s.Assignment != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"assignment",
			fmt.Errorf("status %s is inconsistent with assignment presence %t", s.DeliveryStatus, s.Assignment != nil),
		)
	}
	if (s.DeliveryStatus == Completed) != (s.RiderEarn != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"rider_earn",
			fmt.Errorf("status %s is inconsistent with rider_earn presence %t", s.DeliveryStatus, s.RiderEarn != nil),
		)
	}

	p.paymentStatus = s.PaymentStatus
	p.deliveryStatus = s.DeliveryStatus
	p.assignment = s.Assignment
	p.pickedAt = s.PickedAt
	p.deliveredAt = s.DeliveredAt
	p.riderEarn = s.RiderEarn
	return p, nil
}

// Validate ensures the parcel was built by a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

func (p *Parcel) ID() kernel.UUID                { return p.id }
func (p *Parcel) TrackingID() string             { return p.trackingID }
func (p *Parcel) CreatedBy() kernel.Email        { return p.createdBy }
func (p *Parcel) Details() Details               { return p.details }
func (p *Parcel) TotalCost() kernel.Money        { return p.totalCost }
func (p *Parcel) PaymentStatus() PaymentStatus   { return p.paymentStatus }
func (p *Parcel) DeliveryStatus() DeliveryStatus { return p.deliveryStatus }
func (p *Parcel) PickedAt() *time.Time           { return p.pickedAt }
func (p *Parcel) DeliveredAt() *time.Time        { return p.deliveredAt }
func (p *Parcel) CreatedAt() time.Time           { return p.createdAt }

// Assignment returns a copy of the current assignment, or nil.
func (p *Parcel) Assignment() *Assignment {
	if p.assignment == nil {
		return nil
	}
	a := *p.assignment
	return &a
}

// RiderEarn returns the rider's share, set only once the parcel is Completed.
func (p *Parcel) RiderEarn() *kernel.Money {
	if p.riderEarn == nil {
		return nil
	}
	earn := *p.riderEarn
	return &earn
}

// IsAssignedTo reports whether the rider with the given email holds the parcel.
func (p *Parcel) IsAssignedTo(email kernel.Email) bool {
	return p.assignment != nil && p.assignment.RiderEmail.IsEqual(email)
}

// AssignRider moves a Created parcel to RiderAssign and records the rider.
// Checking that the rider can take the job is the caller's responsibility.
func (p *Parcel) AssignRider(riderID kernel.UUID, riderEmail kernel.Email, at time.Time) error {
	if err := errors.Join(riderID.Validate(), riderEmail.Validate()); err != nil {
		return err
	}
	if err := p.deliveryStatus.CanTransitionTo(RiderAssign); err != nil {
		return err
	}

	p.deliveryStatus = RiderAssign
	p.assignment = &Assignment{
		RiderID:    riderID,
		RiderEmail: riderEmail,
		AssignedAt: at,
	}
	return nil
}

// Advance moves the parcel to target along the transition table.
//
//   - InTransit stamps pickedAt
//   - Completed stamps deliveredAt and fixes riderEarn
//   - NotCollected drops the assignment
//
// RiderAssign is refused here; use AssignRider.
func (p *Parcel) Advance(target DeliveryStatus, at time.Time) error {
	if target == RiderAssign {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryStatus",
			errors.New("rider_assign can only be reached through rider assignment"),
		)
	}
	if err := p.deliveryStatus.CanTransitionTo(target); err != nil {
		return err
	}

	//nolint:exhaustive // other targets were rejected by the transition table
	switch target {
	case InTransit:
		p.pickedAt = &at
	case Completed:
		p.deliveredAt = &at
		earn := RiderEarning(p.totalCost, p.details.SenderDistrict, p.details.ReceiverDistrict)
		p.riderEarn = &earn
	case NotCollected:
		p.assignment = nil
	}

	p.deliveryStatus = target
	return nil
}

// MarkPaid records a confirmed payment of exactly the parcel's total cost.
func (p *Parcel) MarkPaid(amount kernel.Money) error {
	if p.paymentStatus == Paid {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", errors.New("parcel is already paid"))
	}
	if !amount.Equal(p.totalCost) {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s does not match total cost %s", amount, p.totalCost),
		)
	}
	p.paymentStatus = Paid
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingID(trackingID string) error {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return errs.NewValueIsRequiredError("trackingId")
	}
	p.trackingID = trackingID
	return nil
}

func (p *Parcel) setCreatedBy(createdBy kernel.Email) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("created_by", err)
	}
	p.createdBy = createdBy
	return nil
}

func (p *Parcel) setDetails(d Details) error {
	d.Title = strings.TrimSpace(d.Title)
	d.SenderName = strings.TrimSpace(d.SenderName)
	d.ReceiverName = strings.TrimSpace(d.ReceiverName)
	d.SenderDistrict = strings.TrimSpace(d.SenderDistrict)
	d.ReceiverDistrict = strings.TrimSpace(d.ReceiverDistrict)

	var errList []error
	if d.SenderDistrict == "" {
		errList = append(errList, errs.NewValueIsRequiredError("senderDistrict"))
	}
	if d.ReceiverDistrict == "" {
		errList = append(errList, errs.NewValueIsRequiredError("receiverDistrict"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	p.details = d
	return nil
}

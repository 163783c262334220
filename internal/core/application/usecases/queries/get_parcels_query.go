package queries

import (
	"errors"
	"strings"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/guard"
)

var ErrGetParcelsQueryIsNotConstructed = errors.New(
	"GetParcelsQuery must be created via NewGetParcelsQuery constructor",
)

// GetParcelsQuery lists parcels, newest first, optionally filtered by
// creator and statuses. Customers and riders may only list their own
// parcels; an empty email filter is narrowed to the requester for them.
type GetParcelsQuery struct { //nolint:recvcheck //using for validation
	requester        kernel.Email
	requesterIsAdmin bool
	email            *kernel.Email
	deliveryStatus   *parcel.DeliveryStatus
	paymentStatus    *parcel.PaymentStatus

	guard guard.ConstructorGuard
}

// NewGetParcelsQuery builds the query. Empty filter strings mean "any".
func NewGetParcelsQuery(
	requester kernel.Email,
	requesterIsAdmin bool,
	email, deliveryStatus, paymentStatus string,
) (GetParcelsQuery, error) {
	if err := requester.Validate(); err != nil {
		return GetParcelsQuery{}, err
	}

	q := GetParcelsQuery{
		requester:        requester,
		requesterIsAdmin: requesterIsAdmin,
		guard:            guard.NewConstructorGuard(),
	}

	var errList []error
	if email = strings.TrimSpace(email); email != "" {
		e, err := kernel.NewEmail(email)
		errList = append(errList, err)
		q.email = &e
	}
	if deliveryStatus != "" {
		s, err := parcel.ParseDeliveryStatus(deliveryStatus)
		errList = append(errList, err)
		q.deliveryStatus = &s
	}
	if paymentStatus != "" {
		s, err := parcel.ParsePaymentStatus(paymentStatus)
		errList = append(errList, err)
		q.paymentStatus = &s
	}
	if err := errors.Join(errList...); err != nil {
		return GetParcelsQuery{}, err
	}

	return q, nil
}

func (q GetParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsQueryIsNotConstructed)
}

func (q GetParcelsQuery) Requester() kernel.Email                { return q.requester }
func (q GetParcelsQuery) RequesterIsAdmin() bool                 { return q.requesterIsAdmin }
func (q GetParcelsQuery) Email() *kernel.Email                   { return q.email }
func (q GetParcelsQuery) DeliveryStatus() *parcel.DeliveryStatus { return q.deliveryStatus }
func (q GetParcelsQuery) PaymentStatus() *parcel.PaymentStatus   { return q.paymentStatus }

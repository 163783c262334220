package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/guard"
)

var ErrGetRiderParcelsQueryIsNotConstructed = errors.New(
	"GetRiderParcelsQuery must be created via NewGetRiderParcelsQuery constructor",
)

// GetRiderParcelsQuery lists the parcels assigned to one rider.
type GetRiderParcelsQuery struct { //nolint:recvcheck //using for validation
	riderEmail     kernel.Email
	deliveryStatus *parcel.DeliveryStatus

	guard guard.ConstructorGuard
}

func NewGetRiderParcelsQuery(riderEmail kernel.Email, deliveryStatus string) (GetRiderParcelsQuery, error) {
	if err := riderEmail.Validate(); err != nil {
		return GetRiderParcelsQuery{}, err
	}

	q := GetRiderParcelsQuery{
		riderEmail: riderEmail,
		guard:      guard.NewConstructorGuard(),
	}
	if deliveryStatus != "" {
		s, err := parcel.ParseDeliveryStatus(deliveryStatus)
		if err != nil {
			return GetRiderParcelsQuery{}, err
		}
		q.deliveryStatus = &s
	}
	return q, nil
}

func (q GetRiderParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderParcelsQueryIsNotConstructed)
}

func (q GetRiderParcelsQuery) RiderEmail() kernel.Email               { return q.riderEmail }
func (q GetRiderParcelsQuery) DeliveryStatus() *parcel.DeliveryStatus { return q.deliveryStatus }

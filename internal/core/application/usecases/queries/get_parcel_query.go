package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery fetches one parcel. Only its creator, the rider holding it
// and administrators may read it.
type GetParcelQuery struct { //nolint:recvcheck //using for validation
	parcelID         kernel.UUID
	requester        kernel.Email
	requesterIsAdmin bool

	guard guard.ConstructorGuard
}

func NewGetParcelQuery(parcelID kernel.UUID, requester kernel.Email, requesterIsAdmin bool) (GetParcelQuery, error) {
	if err := errors.Join(parcelID.Validate(), requester.Validate()); err != nil {
		return GetParcelQuery{}, err
	}
	return GetParcelQuery{
		parcelID:         parcelID,
		requester:        requester,
		requesterIsAdmin: requesterIsAdmin,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

func (q GetParcelQuery) ParcelID() kernel.UUID   { return q.parcelID }
func (q GetParcelQuery) Requester() kernel.Email { return q.requester }
func (q GetParcelQuery) RequesterIsAdmin() bool  { return q.requesterIsAdmin }

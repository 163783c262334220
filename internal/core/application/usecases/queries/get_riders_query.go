package queries

import (
	"errors"
	"strings"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/pkg/guard"
)

var ErrGetRidersQueryIsNotConstructed = errors.New(
	"GetRidersQuery must be created via NewGetRidersQuery constructor",
)

// GetRidersQuery lists rider applications for administrators, optionally
// filtered by status and by a case-insensitive fragment of the name.
type GetRidersQuery struct { //nolint:recvcheck //using for validation
	status *rider.Status
	search string

	guard guard.ConstructorGuard
}

func NewGetRidersQuery(status, search string) (GetRidersQuery, error) {
	q := GetRidersQuery{
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}
	if status != "" {
		s, err := rider.ParseStatus(status)
		if err != nil {
			return GetRidersQuery{}, err
		}
		q.status = &s
	}
	return q, nil
}

func (q GetRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetRidersQueryIsNotConstructed)
}

func (q GetRidersQuery) Status() *rider.Status { return q.status }
func (q GetRidersQuery) Search() string        { return q.search }

// RiderView is the administrative read model of a rider application.
type RiderView struct {
	ID         kernel.UUID
	Email      string
	Name       string
	District   string
	Phone      string
	Status     string
	WorkStatus string
	CreatedAt  time.Time
}

package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetRiderStatsQueryIsNotConstructed = errors.New(
	"GetRiderStatsQuery must be created via NewGetRiderStatsQuery constructor",
)

// GetRiderStatsQuery builds one rider's dashboard.
type GetRiderStatsQuery struct { //nolint:recvcheck //using for validation
	riderEmail kernel.Email

	guard guard.ConstructorGuard
}

func NewGetRiderStatsQuery(riderEmail kernel.Email) (GetRiderStatsQuery, error) {
	if err := riderEmail.Validate(); err != nil {
		return GetRiderStatsQuery{}, err
	}
	return GetRiderStatsQuery{riderEmail: riderEmail, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRiderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderStatsQueryIsNotConstructed)
}

func (q GetRiderStatsQuery) RiderEmail() kernel.Email { return q.riderEmail }

// RiderStatsCacheKey is where a rider's dashboard is cached.
func RiderStatsCacheKey(email kernel.Email) string {
	return "parcelhub:stats:rider:" + email.String()
}

// RiderStats is the rider dashboard read model. Parcels covers only the
// parcels assigned to the rider.
type RiderStats struct {
	Parcels          ParcelStats     `json:"parcels"`
	TotalEarned      decimal.Decimal `json:"totalEarned"`
	TotalWithdrawn   decimal.Decimal `json:"totalWithdrawn"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
}

package queries

import (
	"errors"

	"parcelhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAdminStatsQueryIsNotConstructed = errors.New(
	"GetAdminStatsQuery must be created via NewGetAdminStatsQuery constructor",
)

// AdminStatsCacheKey is where the admin dashboard read model is cached.
const AdminStatsCacheKey = "parcelhub:stats:admin"

// GetAdminStatsQuery builds the platform-wide dashboard.
type GetAdminStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAdminStatsQuery() GetAdminStatsQuery {
	return GetAdminStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAdminStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminStatsQueryIsNotConstructed)
}

// AdminStats is the administrator dashboard read model.
type AdminStats struct {
	Parcels        ParcelStats      `json:"parcels"`
	RidersByStatus map[string]int64 `json:"ridersByStatus"`
	UsersByRole    map[string]int64 `json:"usersByRole"`
	TotalWithdrawn decimal.Decimal  `json:"totalWithdrawn"`
}

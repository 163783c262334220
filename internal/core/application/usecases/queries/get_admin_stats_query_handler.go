package queries

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/core/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// GetAdminStatsQueryHandler aggregates the whole platform. When a cache is
// configured the result is served from it until the TTL expires; cache
// failures degrade to a direct computation.
type GetAdminStatsQueryHandler struct {
	db    *gorm.DB
	cache ports.StatsCache
	ttl   time.Duration
	log   *zap.Logger
}

// NewGetAdminStatsQueryHandler creates the handler. cache may be nil.
func NewGetAdminStatsQueryHandler(
	db *gorm.DB,
	cache ports.StatsCache,
	ttl time.Duration,
	log *zap.Logger,
) GetAdminStatsQueryHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return GetAdminStatsQueryHandler{db: db, cache: cache, ttl: ttl, log: log}
}

func (h GetAdminStatsQueryHandler) Handle(ctx context.Context, query GetAdminStatsQuery) (AdminStats, error) {
	if err := query.Validate(); err != nil {
		return AdminStats{}, err
	}

	if h.cache != nil {
		var cached AdminStats
		found, err := h.cache.Get(ctx, AdminStatsCacheKey, &cached)
		if err != nil {
			h.log.Warn("admin stats cache read failed", zap.Error(err))
		}
		if found {
			return cached, nil
		}
	}

	return h.Refresh(ctx)
}

// Refresh recomputes the dashboard and stores it in the cache.
func (h GetAdminStatsQueryHandler) Refresh(ctx context.Context) (AdminStats, error) {
	stats, err := h.compute(ctx)
	if err != nil {
		return AdminStats{}, err
	}

	if h.cache != nil {
		if err = h.cache.Set(ctx, AdminStatsCacheKey, stats, h.ttl); err != nil {
			h.log.Warn("admin stats cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}

func (h GetAdminStatsQueryHandler) compute(ctx context.Context) (AdminStats, error) {
	stats := AdminStats{
		RidersByStatus: map[string]int64{},
		UsersByRole:    map[string]int64{},
	}
	for _, s := range []rider.Status{rider.Pending, rider.Active, rider.Rejected, rider.Deactivated} {
		stats.RidersByStatus[s.String()] = 0
	}
	for _, r := range []user.Role{user.RoleUser, user.RoleRider, user.RoleAdmin} {
		stats.UsersByRole[r.String()] = 0
	}

	var riders, users []statusCount

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Parcels, err = aggregateParcels(gctx, h.db, allRows)
		return err
	})
	g.Go(func() error {
		return h.db.WithContext(gctx).Table("riders").
			Select("status, COUNT(*) AS total").
			Group("status").
			Scan(&riders).Error
	})
	g.Go(func() error {
		return h.db.WithContext(gctx).Table("users").
			Select("role AS status, COUNT(*) AS total").
			Group("role").
			Scan(&users).Error
	})
	g.Go(func() (err error) {
		stats.TotalWithdrawn, err = sumWithdrawals(gctx, h.db, allRows)
		return err
	})

	if err := g.Wait(); err != nil {
		return AdminStats{}, err
	}

	for _, c := range riders {
		stats.RidersByStatus[rider.Status(c.Status).String()] += c.Total
	}
	for _, c := range users {
		stats.UsersByRole[user.Role(c.Status).String()] += c.Total
	}
	return stats, nil
}

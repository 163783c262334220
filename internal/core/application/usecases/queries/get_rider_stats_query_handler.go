package queries

import (
	"context"
	"time"

	"parcelhub/internal/core/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type GetRiderStatsQueryHandler struct {
	db    *gorm.DB
	cache ports.StatsCache
	ttl   time.Duration
	log   *zap.Logger
}

// NewGetRiderStatsQueryHandler creates the handler. cache may be nil.
func NewGetRiderStatsQueryHandler(
	db *gorm.DB,
	cache ports.StatsCache,
	ttl time.Duration,
	log *zap.Logger,
) GetRiderStatsQueryHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return GetRiderStatsQueryHandler{db: db, cache: cache, ttl: ttl, log: log}
}

func (h GetRiderStatsQueryHandler) Handle(ctx context.Context, query GetRiderStatsQuery) (RiderStats, error) {
	if err := query.Validate(); err != nil {
		return RiderStats{}, err
	}

	key := RiderStatsCacheKey(query.RiderEmail())
	if h.cache != nil {
		var cached RiderStats
		found, err := h.cache.Get(ctx, key, &cached)
		if err != nil {
			h.log.Warn("rider stats cache read failed", zap.String("key", key), zap.Error(err))
		}
		if found {
			return cached, nil
		}
	}

	email := query.RiderEmail().String()
	var stats RiderStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Parcels, err = aggregateParcels(gctx, h.db, func(db *gorm.DB) *gorm.DB {
			return db.Where("assigned_rider_email = ?", email)
		})
		return err
	})
	g.Go(func() (err error) {
		stats.TotalWithdrawn, err = sumWithdrawals(gctx, h.db, func(db *gorm.DB) *gorm.DB {
			return db.Where("rider_email = ?", email)
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return RiderStats{}, err
	}

	stats.TotalEarned = stats.Parcels.RiderEarnings
	stats.AvailableBalance = stats.TotalEarned.Sub(stats.TotalWithdrawn)

	if h.cache != nil {
		if err := h.cache.Set(ctx, key, stats, h.ttl); err != nil {
			h.log.Warn("rider stats cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return stats, nil
}

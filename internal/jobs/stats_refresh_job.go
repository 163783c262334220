package jobs

import (
	"context"

	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/pkg/metrics"

	"go.uber.org/zap"
)

const statsRefreshJobName = "stats_refresh"

// StatsRefresher recomputes the admin dashboard and stores it in the cache.
type StatsRefresher interface {
	Refresh(ctx context.Context) (queries.AdminStats, error)
}

// StatsRefreshJob keeps the cached admin dashboard warm.
type StatsRefreshJob struct {
	handler StatsRefresher
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewStatsRefreshJob(handler StatsRefresher, m *metrics.Metrics, logger *zap.Logger) *StatsRefreshJob {
	return &StatsRefreshJob{
		handler: handler,
		metrics: m,
		logger:  logger.Named(statsRefreshJobName),
	}
}

func (j *StatsRefreshJob) Name() string { return statsRefreshJobName }

func (j *StatsRefreshJob) Run(ctx context.Context) {
	stats, err := j.handler.Refresh(ctx)
	j.metrics.JobRuns.WithLabelValues(statsRefreshJobName, metrics.Result(err)).Inc()
	if err != nil {
		j.logger.Error("admin stats refresh failed", zap.Error(err))
		return
	}
	j.logger.Debug("admin stats refreshed", zap.Int64("parcels", stats.Parcels.Total))
}

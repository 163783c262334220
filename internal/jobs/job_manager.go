package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one unit of scheduled work.
type Job interface {
	Name() string
	Run(ctx context.Context)
}

// JobManager runs every registered job on its own schedule from a single
// cron scheduler. Overlapping runs of the same job are skipped.
type JobManager struct {
	cron    *cron.Cron
	timeout time.Duration
	logger  *zap.Logger
}

// NewJobManager creates a manager. Each run gets a context bounded by timeout.
func NewJobManager(timeout time.Duration, logger *zap.Logger) *JobManager {
	logger = logger.Named("jobs")
	cl := cronLogger{logger.Sugar()}
	return &JobManager{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		timeout: timeout,
		logger:  logger,
	}
}

// Schedule registers job under a cron spec such as "@every 5m" or "*/5 * * * *".
func (jm *JobManager) Schedule(spec string, job Job) error {
	_, err := jm.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jm.timeout)
		defer cancel()
		job.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s job with %q: %w", job.Name(), spec, err)
	}

	jm.logger.Info("job scheduled", zap.String("job", job.Name()), zap.String("spec", spec))
	return nil
}

func (jm *JobManager) StartAll() {
	jm.cron.Start()
	jm.logger.Info("jobs started", zap.Int("count", len(jm.cron.Entries())))
}

// StopAll stops scheduling and waits for running jobs until ctx is done.
func (jm *JobManager) StopAll(ctx context.Context) {
	select {
	case <-jm.cron.Stop().Done():
		jm.logger.Info("jobs stopped")
	case <-ctx.Done():
		jm.logger.Warn("jobs still running at shutdown", zap.Error(ctx.Err()))
	}
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}

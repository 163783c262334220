package jobs

import (
	"context"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/pkg/metrics"

	"go.uber.org/zap"
)

const roleReconciliationJobName = "role_reconciliation"

// RoleReconciler repairs user roles that diverged from rider statuses.
type RoleReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcileRolesCommand) ([]string, error)
}

// RoleReconciliationJob periodically re-applies the rider status to user role
// cascade and logs every account it had to repair.
type RoleReconciliationJob struct {
	handler RoleReconciler
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewRoleReconciliationJob(handler RoleReconciler, m *metrics.Metrics, logger *zap.Logger) *RoleReconciliationJob {
	return &RoleReconciliationJob{
		handler: handler,
		metrics: m,
		logger:  logger.Named(roleReconciliationJobName),
	}
}

func (j *RoleReconciliationJob) Name() string { return roleReconciliationJobName }

// Run performs one reconciliation pass.
func (j *RoleReconciliationJob) Run(ctx context.Context) {
	repaired, err := j.handler.Handle(ctx, commands.NewReconcileRolesCommand())
	j.metrics.JobRuns.WithLabelValues(roleReconciliationJobName, metrics.Result(err)).Inc()
	if err != nil {
		j.logger.Error("role reconciliation failed", zap.Error(err))
		return
	}

	for _, email := range repaired {
		j.logger.Warn("user role repaired from rider status", zap.String("email", email))
	}
	if len(repaired) > 0 {
		j.metrics.RoleCascades.WithLabelValues("reconciliation").Add(float64(len(repaired)))
	}
	j.logger.Debug("role reconciliation finished", zap.Int("repaired", len(repaired)))
}

// Package jobs provides scheduled background tasks for parcelhub.
//
// Jobs are plain values with a Run method; JobManager schedules them with
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
//  1. RoleReconciliationJob - re-applies the rider status to user role cascade
//     and logs every repaired account (default "@every 5m")
//  2. StatsRefreshJob - recomputes the admin dashboard into the stats cache
//     (default "@every 1m", scheduled only when a cache is configured)
//
// # Usage
//
//	manager := jobs.NewJobManager(30*time.Second, logger)
//	if err := manager.Schedule("@every 5m", jobs.NewRoleReconciliationJob(h, m, logger)); err != nil {
//		return err
//	}
//	manager.StartAll()
//	defer manager.StopAll(ctx)
//
// # Error Handling
//
// A failing run is logged and counted in parcelhub_job_runs_total; the next
// run is attempted on schedule. Panics are recovered and overlapping runs of
// the same job are skipped.
package jobs

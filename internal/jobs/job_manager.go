package jobs

import (
	"fmt"
	"log/slog"

	"grubdash/internal/core/application/usecases/queries"
)

// ScheduleOff disables a job.
const ScheduleOff = "off"

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	// orderStatsJob is nil when disabled.
	orderStatsJob *OrderStatsJob
	started       bool
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	summaryHandler queries.GetOrderStatusSummaryQueryHandler,
	statsSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if statsSchedule != ScheduleOff && statsSchedule != "" {
		jm.orderStatsJob = NewOrderStatsJob(summaryHandler, statsSchedule, logger)
	}
	return jm
}

// StartAll starts all enabled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.orderStatsJob != nil {
		if err := jm.orderStatsJob.Start(); err != nil {
			return fmt.Errorf("failed to start order stats job: %w", err)
		}
	}

	jm.started = true
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if !jm.started {
		return
	}
	if jm.orderStatsJob != nil {
		jm.orderStatsJob.Stop()
	}
	jm.started = false
}

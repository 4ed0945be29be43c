// Package jobs provides scheduled background tasks for the orders service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderStatsJob - Logs how many orders are in each status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(summaryHandler, "@every 1m", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six field cron syntax with seconds ("0 * * * * *") or a
// descriptor such as "@every 30s". The schedule "off" disables a job.
//
// # Error Handling
//
// - A failing run is logged and the next run happens on schedule
// - Failed job starts will stop any already running jobs
package jobs

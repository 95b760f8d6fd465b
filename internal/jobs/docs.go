// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. OrderProgressionJob - Runs every second and ticks the autonomous
// lifecycle engine, which advances scheduled orders through their fixed
// status sequence at the configured interval.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the progression engine (nil in manual mode)
//	jobManager := jobs.NewJobManager(engine, logger)
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
// The job uses the cron expression "* * * * * *", running every second.
// The per-second tick is the clock resolution; the actual spacing between
// status transitions is the engine's configured interval.
//
// # Error Handling
//
// A failed transition is logged by the engine and never retried; the
// schedule proceeds to its next step regardless. Stopping the job
// abandons all in-flight schedules, matching restart semantics.
package jobs

package jobs

import (
	"fmt"
	"log/slog"

	"eatfit/internal/core/application/progression"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderProgressionJob *OrderProgressionJob
}

// NewJobManager creates a new job manager with all required jobs.
// In manual-only mode pass a nil engine; no job is scheduled then.
func NewJobManager(engine *progression.Engine, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if engine != nil {
		jm.orderProgressionJob = NewOrderProgressionJob(engine, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.orderProgressionJob == nil {
		return nil
	}

	if err := jm.orderProgressionJob.Start(); err != nil {
		return fmt.Errorf("failed to start order progression job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.orderProgressionJob != nil {
		jm.orderProgressionJob.Stop()
	}
}

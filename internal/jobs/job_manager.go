package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	queueDispatchJob *QueueDispatchJob
	delayAlertJob    *DelayAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	dispatchHandler commands.DispatchQueuedOrderCommandHandler,
	boardHandler queries.GetDispatchBoardQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		queueDispatchJob: NewQueueDispatchJob(dispatchHandler, logger),
		delayAlertJob:    NewDelayAlertJob(boardHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.queueDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start queue dispatch job: %w", err)
	}

	if err := jm.delayAlertJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.queueDispatchJob.Stop()
		return fmt.Errorf("failed to start delay alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.queueDispatchJob.Stop()
	jm.delayAlertJob.Stop()
}

// Package jobs contains the scheduled background work of the dispatch
// application: automatic queue dispatch and the delay alert sweep.
package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// QueueDispatchJob periodically dispatches the head of the waiting queue
// when the fleet can cover it. Runs every ten seconds; an empty queue or a
// busy fleet is the normal case and is not logged as an error.
type QueueDispatchJob struct {
	handler commands.DispatchQueuedOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQueueDispatchJob creates a job for automatic queue dispatch.
func NewQueueDispatchJob(
	handler commands.DispatchQueuedOrderCommandHandler,
	logger *slog.Logger,
) *QueueDispatchJob {
	return &QueueDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "queue_dispatch_job"),
	}
}

// Start begins the queue dispatch job, running every ten seconds.
func (j *QueueDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewDispatchQueuedOrderCommand(time.Now())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Queue dispatch command creation failed", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(handleErr, commands.ErrNoQueuedOrders) &&
				!errors.Is(handleErr, commands.ErrNotEnoughVehicles) {
				j.logger.ErrorContext(ctx, "Queue dispatch job failed", "error", handleErr)
			}
			return
		}

		j.logger.InfoContext(ctx, "Queued order dispatched")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue dispatch job started (running every 10 seconds)")
	return nil
}

// Stop stops the queue dispatch job.
func (j *QueueDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue dispatch job stopped")
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DelayAlertJob sweeps the executing orders once a minute and logs every
// order running late, so delays surface in the logs even when nobody is
// watching the board.
type DelayAlertJob struct {
	handler queries.GetDispatchBoardQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDelayAlertJob creates a job for the delay alert sweep.
func NewDelayAlertJob(
	handler queries.GetDispatchBoardQueryHandler,
	logger *slog.Logger,
) *DelayAlertJob {
	return &DelayAlertJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delay_alert_job"),
	}
}

// Start begins the delay alert sweep, running every minute.
func (j *DelayAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetDispatchBoardQuery(time.Now())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Delay alert query creation failed", "error", queryErr)
			return
		}

		board, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Delay alert sweep failed", "error", handleErr)
			return
		}

		for _, entry := range board {
			switch entry.AlertLevel {
			case "critical":
				j.logger.ErrorContext(ctx, "Order is critically late",
					"orderNumber", entry.OrderNumber,
					"company", entry.CompanyName,
					"alert", entry.AlertMessage,
				)
			case "warning":
				j.logger.WarnContext(ctx, "Order is running late",
					"orderNumber", entry.OrderNumber,
					"company", entry.CompanyName,
					"alert", entry.AlertMessage,
				)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delay alert job started (running every minute)")
	return nil
}

// Stop stops the delay alert sweep.
func (j *DelayAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delay alert job stopped")
}

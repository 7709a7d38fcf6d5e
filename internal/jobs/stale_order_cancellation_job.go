package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderCancellationJob cancels PENDING orders that customers abandoned.
// Runs every minute and cancels orders untouched for longer than the TTL.
type StaleOrderCancellationJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderCancellationJob creates a new job for stale order cleanup.
// Uses CancelStaleOrdersCommandHandler to cancel abandoned orders.
func NewStaleOrderCancellationJob(
	handler commands.CancelStaleOrdersCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start begins the cancellation job to run at the start of every minute.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelStaleOrdersCommand(j.ttl)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started (running every minute)")
	return nil
}

// Stop stops the cancellation job.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}

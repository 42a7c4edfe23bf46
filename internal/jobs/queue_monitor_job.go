package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// QueueMonitorJob periodically reports the depth of the pending order queue.
// Pizzaiolos pull work themselves, so the system never assigns orders; the
// monitor only surfaces queues that are growing faster than they drain.
type QueueMonitorJob struct {
	handler       queries.GetPendingPurchasesQueryHandler
	maxPendingAge time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewQueueMonitorJob creates a job that observes the pending queue every few
// seconds. An order pending longer than maxPendingAge triggers a warning.
func NewQueueMonitorJob(
	handler queries.GetPendingPurchasesQueryHandler,
	maxPendingAge time.Duration,
	logger *slog.Logger,
) *QueueMonitorJob {
	return &QueueMonitorJob{
		handler:       handler,
		maxPendingAge: maxPendingAge,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "queue_monitor_job"),
	}
}

// Start begins the queue monitor job, ticking every ten seconds.
func (j *QueueMonitorJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetPendingPurchasesQuery()

		pending, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Queue monitor job failed", "error", err)
			return
		}

		if len(pending) == 0 {
			return
		}

		oldestAge := time.Since(pending[0].CreatedAt)
		j.logger.InfoContext(ctx, "Pending order queue",
			"depth", len(pending),
			"oldestCode", pending[0].Code,
			"oldestAge", oldestAge.Round(time.Second).String(),
		)

		if oldestAge > j.maxPendingAge {
			j.logger.WarnContext(ctx, "Order has been pending too long",
				"code", pending[0].Code,
				"age", oldestAge.Round(time.Second).String(),
				"maxPendingAge", j.maxPendingAge.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue monitor job started (running every ten seconds)")
	return nil
}

// Stop stops the queue monitor job.
func (j *QueueMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue monitor job stopped")
}

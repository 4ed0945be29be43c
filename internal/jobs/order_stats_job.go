package jobs

import (
	"context"
	"log/slog"

	"grubdash/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderStatsJob periodically logs the number of orders per status.
type OrderStatsJob struct {
	handler  queries.GetOrderStatusSummaryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatsJob creates the stats job for the given cron schedule.
func NewOrderStatsJob(
	handler queries.GetOrderStatusSummaryQueryHandler,
	schedule string,
	logger *slog.Logger,
) *OrderStatsJob {
	return &OrderStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_stats_job"),
	}
}

// Start schedules the job. It fails when the schedule cannot be parsed.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started", "schedule", j.schedule)
	return nil
}

// Run computes and logs the summary once.
func (j *OrderStatsJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, queries.NewGetOrderStatusSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2+2*len(summary.ByStatus))
	attrs = append(attrs, "total", summary.Total)
	for status, count := range summary.ByStatus {
		attrs = append(attrs, status, count)
	}
	j.logger.InfoContext(ctx, "Order status summary", attrs...)
}

// Stop stops the job and waits for a running execution to finish.
func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type OrderStatusCountsHandler interface {
	Handle(ctx context.Context, query queries.GetOrderStatusCountsQuery) ([]queries.GetOrderStatusCountsQueryResponse, error)
}

// OrdersByStatusRecorder receives the latest order counts per status.
type OrdersByStatusRecorder interface {
	SetOrdersByStatus(counts map[string]int64)
}

// OrderStatsJob periodically counts stored orders per status and publishes the
// result to the orders-by-status gauge.
type OrderStatsJob struct {
	handler  OrderStatusCountsHandler
	recorder OrdersByStatusRecorder
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatsJob creates the job. schedule is a cron expression with a seconds field.
// A tick that is still running when the next one is due causes that next tick to be skipped.
func NewOrderStatsJob(
	handler OrderStatusCountsHandler,
	recorder OrdersByStatusRecorder,
	schedule string,
	logger *slog.Logger,
) *OrderStatsJob {
	logger = logger.With("component", "order_stats_job")

	return &OrderStatsJob{
		handler:  handler,
		recorder: recorder,
		schedule: schedule,
		timeout:  10 * time.Second,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

// Start schedules the job. The counts are refreshed once immediately so the gauge
// is populated before the first scheduled tick.
func (j *OrderStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.Run()

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job and waits for a running tick to finish.
func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}

// Run refreshes the gauge once.
func (j *OrderStatsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	counts, err := j.handler.Handle(ctx, queries.NewGetOrderStatusCountsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
		return
	}

	byStatus := make(map[string]int64, len(counts))
	for _, c := range counts {
		byStatus[c.Status.String()] = c.Count
	}
	j.recorder.SetOrdersByStatus(byStatus)

	j.logger.DebugContext(ctx, "Order stats refreshed", "statuses", len(byStatus))
}

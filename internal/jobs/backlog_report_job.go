// Package jobs provides scheduled background tasks for the fulfillment
// service, implemented with github.com/robfig/cron/v3.
package jobs

import (
	"context"
	"log/slog"

	"shoplist/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BacklogReportJob periodically logs the number of orders per workflow
// status. The report is read-only and gives operators a view of backlog
// growth without touching any order.
type BacklogReportJob struct {
	handler queries.GetOrderStatusCountsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBacklogReportJob creates a job that reports backlog sizes once a
// minute.
func NewBacklogReportJob(handler queries.GetOrderStatusCountsQueryHandler, logger *slog.Logger) *BacklogReportJob {
	return &BacklogReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "backlog_report_job"),
	}
}

// Start schedules the backlog report to run every minute.
func (j *BacklogReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		counts, err := j.handler.Handle(ctx, queries.NewGetOrderStatusCountsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Backlog report job failed", "error", err)
			return
		}

		attrs := make([]any, 0, len(counts)*2)
		for _, c := range counts {
			attrs = append(attrs, c.Status, c.Count)
		}
		j.logger.InfoContext(ctx, "Order backlog", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog report job started (running every minute)")
	return nil
}

// Stop stops the backlog report job.
func (j *BacklogReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog report job stopped")
}

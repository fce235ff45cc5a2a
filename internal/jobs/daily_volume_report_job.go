package jobs

import (
	"context"
	"log/slog"
	"time"

	"swiftwash/internal/core/application/usecases/queries"
	"swiftwash/internal/core/domain/model/counter"

	"github.com/robfig/cron/v3"
)

// reportSchedule fires shortly after midnight UTC, once the previous
// day's counters have stopped moving.
const reportSchedule = "5 0 * * *"

// DailyVolumeReportJob logs each city's order volume for the previous
// day. The configured counter read model already holds the totals, so
// the report is a single read; operations teams scrape the structured
// log lines.
type DailyVolumeReportJob struct {
	handler queries.DailyCountersReader
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailyVolumeReportJob creates a job that reports per-city volumes
// every day shortly after midnight UTC.
func NewDailyVolumeReportJob(handler queries.DailyCountersReader, logger *slog.Logger) *DailyVolumeReportJob {
	return &DailyVolumeReportJob{
		handler: handler,
		cron:    cron.New(cron.WithLocation(time.UTC)),
		logger:  logger.With("component", "daily_volume_report_job"),
	}
}

// Start schedules the daily report.
func (j *DailyVolumeReportJob) Start() error {
	_, err := j.cron.AddFunc(reportSchedule, func() {
		j.Run(context.Background(), time.Now().UTC().AddDate(0, 0, -1))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily volume report job started")
	return nil
}

// Run reports volumes for the given day. Exposed separately from the
// schedule so the report can be triggered manually.
func (j *DailyVolumeReportJob) Run(ctx context.Context, day time.Time) {
	query, err := queries.NewGetDailyCountersQuery(counter.Day(day))
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily volume report failed to build query", "error", err)
		return
	}

	counters, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily volume report failed", "error", err)
		return
	}

	total := 0
	for _, c := range counters {
		total += c.Volume
		j.logger.InfoContext(ctx, "Daily city volume",
			"day", query.Day(),
			"city", c.CityCode,
			"volume", c.Volume)
	}

	j.logger.InfoContext(ctx, "Daily volume report completed",
		"day", query.Day(),
		"cities", len(counters),
		"total", total)
}

// Stop stops the daily report job.
func (j *DailyVolumeReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily volume report job stopped")
}

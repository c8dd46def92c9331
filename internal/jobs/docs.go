// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderStatsJob - counts stored orders per status and sets the
// ordering_orders_by_status gauge. Status values outside the known lifecycle
// states are reported under their own value.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statusCountsHandler, appMetrics, "*/30 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with seconds. Overlapping ticks are
// skipped rather than queued.
//
// # Error Handling
//
// A failed tick is logged and leaves the gauge at its previous values.
package jobs

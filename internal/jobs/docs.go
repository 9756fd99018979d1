// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the courier service.
//
// # Available Jobs
//
// 1. GeocodeBackfillJob - Runs every minute to resolve coordinates for orders committed without them
// 2. LateOrderWatchJob - Runs every minute to flag picked-up orders past their delivery deadline
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(uowFactory, geocoder, table, lateOrdersHandler, publisher, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use the cron expression "0 * * * * *", firing at the top of every
// minute. Address resolution and lateness detection tolerate this granularity.
//
// # Error Handling
//
// - The backfill job logs and skips orders whose resolution fails; the needs-geocoding flag keeps them in scope for the next run
// - The watch job logs query failures; a failed order-late publish is logged and retried implicitly on the next run
// - Failed job starts will stop any already running jobs
package jobs

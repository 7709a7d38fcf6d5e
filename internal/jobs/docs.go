// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Runs every minute to cancel PENDING orders
// that have not been touched for longer than the configured TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, ttl, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The cancellation job logs run failures; a single order that cannot be
// cancelled is skipped by the handler and never aborts the run.
package jobs

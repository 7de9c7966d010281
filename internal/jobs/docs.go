// Package jobs provides the background work of the storefront backend.
//
// # Available Jobs
//
// 1. CourierDispatcher - a worker pool that creates courier orders for orders
// that were just confirmed. Callers enqueue an order id and return at once;
// each dispatch runs with its own timeout, detached from the request that
// triggered it.
// 2. CourierStatusSyncJob - a cron job (default "@every 1m") that mirrors the
// aggregator's status and share link onto orders with an active courier order.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(dispatcher, syncJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Dispatch failures are logged with the order id and never reach the caller
// - Skipped dispatches (nothing to do, or another dispatch won) are logged at info
// - A full dispatch queue drops the order id and logs it; the order then shows up
// in the awaiting-courier list for a manual retry
// - Failed job starts will stop any already running jobs
package jobs

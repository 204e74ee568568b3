// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. ShipmentProcessingJob - Runs every second to drain the shipment
// notification queue and resolve each shipment to its terminal status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(queue, processShipmentHandler, logger)
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
// The processing job uses the cron expression "* * * * * *" which means it
// runs every second. Each tick polls a bounded batch from the queue, so a
// burst of shipments is worked off across consecutive ticks.
//
// # Error Handling
//
// - Malformed queue messages are logged and discarded
// - Notifications for deleted shipments are logged at warning level
// - All other processing errors are logged and the message is dropped;
//   queue redelivery and the idempotent handler cover transient failures
package jobs

package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentProcessingJob *ShipmentProcessingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the shipment queue and command handler as dependencies to wire up job execution.
func NewJobManager(
	queue ports.ShipmentQueue,
	processShipmentHandler commands.ProcessShipmentCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shipmentProcessingJob: NewShipmentProcessingJob(queue, processShipmentHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentProcessingJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment processing job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentProcessingJob.Stop()
}

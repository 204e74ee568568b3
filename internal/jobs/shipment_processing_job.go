package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

const pollBatchSize = 10

// ShipmentProcessingJob drains the shipment notification queue.
// Runs every second, polling a batch of shipping identifiers and resolving
// each one to its terminal status through ProcessShipmentCommandHandler.
type ShipmentProcessingJob struct {
	queue   ports.ShipmentQueue
	handler commands.ProcessShipmentCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShipmentProcessingJob creates a new job for processing queued shipments.
// Uses ProcessShipmentCommandHandler to resolve each notification every second.
func NewShipmentProcessingJob(
	queue ports.ShipmentQueue,
	handler commands.ProcessShipmentCommandHandler,
	logger *slog.Logger,
) *ShipmentProcessingJob {
	return &ShipmentProcessingJob{
		queue:   queue,
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "shipment_processing_job"),
	}
}

// Start begins the shipment processing job to run every second.
func (j *ShipmentProcessingJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		shippingIDs, err := j.queue.Poll(ctx, pollBatchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Polling shipment queue failed", "error", err)
			return
		}

		for _, rawID := range shippingIDs {
			j.processOne(ctx, rawID)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment processing job started (running every second)")
	return nil
}

// Stop stops the shipment processing job.
func (j *ShipmentProcessingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment processing job stopped")
}

func (j *ShipmentProcessingJob) processOne(ctx context.Context, rawID string) {
	shippingID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		j.logger.ErrorContext(ctx, "Discarding malformed queue message", "shipping_id", rawID, "error", err)
		return
	}

	cmd, err := commands.NewProcessShipmentCommand(shippingID)
	if err != nil {
		j.logger.ErrorContext(ctx, "Discarding unprocessable queue message", "shipping_id", rawID, "error", err)
		return
	}

	if err := j.handler.Handle(ctx, cmd); err != nil {
		// A missing record means the notification outlived its shipment;
		// there is nothing left to process.
		if errors.Is(err, errs.ErrObjectNotFound) {
			j.logger.WarnContext(ctx, "Queued shipment no longer exists", "shipping_id", rawID)
			return
		}
		j.logger.ErrorContext(ctx, "Shipment processing failed", "shipping_id", rawID, "error", err)
	}
}

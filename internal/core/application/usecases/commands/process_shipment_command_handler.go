package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ProcessShipmentCommandHandler resolves a shipment's terminal status: Failed
// when the due date has passed at processing time, Completed otherwise.
//
// The handler is safe under the queue's at-least-once delivery. Processing an
// already-terminal shipment is a no-op re-assertion, and the status write is a
// compare-and-set on Created, so two consumers racing on the same shipping
// identifier cannot produce conflicting terminal states.
type ProcessShipmentCommandHandler struct {
	shipments ports.ShipmentRepository
}

// NewProcessShipmentCommandHandler creates a handler for shipment processing.
func NewProcessShipmentCommandHandler(shipments ports.ShipmentRepository) ProcessShipmentCommandHandler {
	return ProcessShipmentCommandHandler{
		shipments: shipments,
	}
}

// Handle processes the shipment identified by the command.
// A not-found shipping identifier propagates as errs.ErrObjectNotFound.
func (h *ProcessShipmentCommandHandler) Handle(ctx context.Context, cmd ProcessShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.shipments.Get(ctx, cmd.ShippingID())
	if err != nil {
		return err
	}

	if aggregate.Status().IsTerminal() {
		return nil
	}

	next := aggregate.TerminalStatusAt(time.Now().UTC())

	err = h.shipments.UpdateStatus(ctx, cmd.ShippingID(), shipment.StatusCreated, next)
	if errors.Is(err, errs.ErrStatusConflict) {
		// Lost the race to another consumer; a terminal record means the work
		// is already done.
		current, getErr := h.shipments.Get(ctx, cmd.ShippingID())
		if getErr == nil && current.Status().IsTerminal() {
			return nil
		}
		return err
	}

	return err
}

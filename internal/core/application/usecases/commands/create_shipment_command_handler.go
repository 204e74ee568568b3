package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
)

// CreateShipmentCommandHandler handles the business logic for shipment creation:
// it validates the shipping method and due date, persists the record in Created
// status, and enqueues a processing notification.
//
// Side effect ordering is persist-before-publish: a consumer can never dequeue
// a shipping identifier whose record is not yet readable.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(shipmentRepo, shipmentQueue)
//	cmd, _ := NewCreateShipmentCommand("Nova Poshta", itemIDs, orderID, dueDate)
//
//	shippingID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("shipment creation failed: %w", err)
//	}
type CreateShipmentCommandHandler struct {
	shipments ports.ShipmentRepository
	queue     ports.ShipmentQueue
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// The record store and queue are injected; their lifecycle belongs to the
// composing application.
func NewCreateShipmentCommandHandler(
	shipments ports.ShipmentRepository,
	queue ports.ShipmentQueue,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		shipments: shipments,
		queue:     queue,
	}
}

// Handle processes the shipment creation command and returns the generated
// shipping identifier.
//
// Validation order: unknown method first, then the due date rule. Both are
// rejected before any persistence, so a failed create has no side effects.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	method, err := shipment.MethodFromString(cmd.Method())
	if err != nil {
		return kernel.UUID{}, err
	}

	shippingID := kernel.NewUUID()
	aggregate, err := shipment.NewShipment(
		shippingID,
		method,
		cmd.ItemIDs(),
		cmd.OrderID(),
		cmd.DueDate(),
		time.Now().UTC(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.shipments.Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if _, err = h.queue.Publish(ctx, shippingID); err != nil {
		return kernel.UUID{}, err
	}

	return shippingID, nil
}

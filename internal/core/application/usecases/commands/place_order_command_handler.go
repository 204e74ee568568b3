package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// DefaultDueDateGrace is the deadline applied when an order is placed without
// an explicit due date.
const DefaultDueDateGrace = 3 * time.Second

// PlaceOrderCommandHandler is the thin façade binding a cart to the shipment
// lifecycle: it commits the cart to obtain the line-item snapshot, then
// delegates shipment creation. Failures from either step propagate without
// partial recovery.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(createShipmentHandler)
//	cmd, _ := NewPlaceOrderCommand(shoppingCart, "Pickup Point", time.Time{})
//
//	shippingID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	createShipment CreateShipmentCommandHandler
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(createShipment CreateShipmentCommandHandler) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		createShipment: createShipment,
	}
}

// Handle places the order and returns the shipping identifier of the created
// shipment.
//
// The shipping method and due date are checked before the cart commits, so a
// rejected order leaves stock untouched. An empty cart is rejected outright;
// neither the store nor the queue is contacted.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if cmd.Cart().IsEmpty() {
		return kernel.UUID{}, ErrCartIsEmpty
	}

	if _, err := shipment.MethodFromString(cmd.Method()); err != nil {
		return kernel.UUID{}, err
	}

	now := time.Now().UTC()
	dueDate := cmd.DueDate()
	if dueDate.IsZero() {
		dueDate = now.Add(DefaultDueDateGrace)
	}
	if err := shipment.ValidateDueDate(dueDate, now); err != nil {
		return kernel.UUID{}, err
	}

	itemIDs, err := cmd.Cart().Commit()
	if err != nil {
		return kernel.UUID{}, err
	}

	createCmd, err := NewCreateShipmentCommand(cmd.Method(), itemIDs, cmd.OrderID(), dueDate)
	if err != nil {
		return kernel.UUID{}, err
	}

	return h.createShipment.Handle(ctx, createCmd)
}

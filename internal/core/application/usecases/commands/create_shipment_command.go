package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrShippingMethodIsRequired = errors.New("shipping method is required")
	ErrDueDateIsRequired        = errors.New("due date is required")
)

// CreateShipmentCommand represents a request to create a shipment record for
// an already-committed order. It carries the line-item snapshot, the selected
// shipping method label, and the processing deadline.
//
// The constructor checks presence only; the handler owns the business
// validation (method membership, due date in the future), so those rules sit
// in one place for every caller path.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand("Pickup Point", []string{"Widget"}, orderID, dueDate)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	shippingID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	method  string
	itemIDs []string
	orderID kernel.UUID
	dueDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a shipment.
// Validates that the method label and due date are present, the item snapshot
// is non-empty, and the order ID is valid.
func NewCreateShipmentCommand(
	method string,
	itemIDs []string,
	orderID kernel.UUID,
	dueDate time.Time,
) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setMethod(method),
		shipmentCommand.setItemIDs(itemIDs),
		shipmentCommand.setOrderID(orderID),
		shipmentCommand.setDueDate(dueDate),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Method returns the requested shipping method label.
func (c CreateShipmentCommand) Method() string {
	return c.method
}

// ItemIDs returns the order-preserving line-item snapshot.
func (c CreateShipmentCommand) ItemIDs() []string {
	return c.itemIDs
}

// OrderID returns the identifier of the originating order.
func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DueDate returns the processing deadline.
func (c CreateShipmentCommand) DueDate() time.Time {
	return c.dueDate
}

func (c *CreateShipmentCommand) setMethod(method string) error {
	if method == "" {
		return ErrShippingMethodIsRequired
	}

	c.method = method
	return nil
}

func (c *CreateShipmentCommand) setItemIDs(itemIDs []string) error {
	if len(itemIDs) == 0 {
		return shipment.ErrItemIDsAreRequired
	}

	c.itemIDs = make([]string, len(itemIDs))
	copy(c.itemIDs, itemIDs)
	return nil
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return ErrDueDateIsRequired
	}

	c.dueDate = dueDate
	return nil
}

package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrProcessShipmentCommandIsNotConstructed = errors.New(
	"ProcessShipmentCommand must be created via NewProcessShipmentCommand constructor",
)

// ProcessShipmentCommand represents a request to resolve a shipment's terminal
// status. It is issued by queue consumers and may be delivered more than once
// for the same shipping identifier.
type ProcessShipmentCommand struct { //nolint:recvcheck //using for validation
	shippingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessShipmentCommand creates a command to process the given shipment.
func NewProcessShipmentCommand(shippingID kernel.UUID) (ProcessShipmentCommand, error) {
	processCommand := ProcessShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := processCommand.setShippingID(shippingID); err != nil {
		return ProcessShipmentCommand{}, err
	}

	return processCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessShipmentCommand) Validate() error {
	return c.guard.Validate(ErrProcessShipmentCommandIsNotConstructed)
}

// ShippingID returns the shipment to process.
func (c ProcessShipmentCommand) ShippingID() kernel.UUID {
	return c.shippingID
}

func (c *ProcessShipmentCommand) setShippingID(shippingID kernel.UUID) error {
	if err := shippingID.Validate(); err != nil {
		return err
	}

	c.shippingID = shippingID
	return nil
}

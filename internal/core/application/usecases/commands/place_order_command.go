package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCartIsRequired = errors.New("cart is required")
	ErrCartIsEmpty    = errors.New("cart is empty")
)

// PlaceOrderCommand represents a request to convert a cart into a shipment.
// A zero due date means the handler applies the default grace deadline.
//
// The order identifier is generated fresh per command when the caller does not
// supply one; it is never shared between commands.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	cart    *cart.Cart
	method  string
	orderID kernel.UUID
	dueDate time.Time

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order with a generated
// order identifier. dueDate may be the zero time to request the default grace.
func NewPlaceOrderCommand(c *cart.Cart, method string, dueDate time.Time) (PlaceOrderCommand, error) {
	return NewPlaceOrderCommandWithOrderID(c, method, kernel.NewUUID(), dueDate)
}

// NewPlaceOrderCommandWithOrderID creates a command to place an order with a
// caller-supplied order identifier.
func NewPlaceOrderCommandWithOrderID(
	c *cart.Cart,
	method string,
	orderID kernel.UUID,
	dueDate time.Time,
) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		dueDate: dueDate,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCart(c),
		orderCommand.setMethod(method),
		orderCommand.setOrderID(orderID),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through a constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Cart returns the cart to commit.
func (c PlaceOrderCommand) Cart() *cart.Cart {
	return c.cart
}

// Method returns the requested shipping method label.
func (c PlaceOrderCommand) Method() string {
	return c.method
}

// OrderID returns the order identifier.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DueDate returns the requested deadline; zero means "use the default grace".
func (c PlaceOrderCommand) DueDate() time.Time {
	return c.dueDate
}

func (c *PlaceOrderCommand) setCart(shoppingCart *cart.Cart) error {
	if shoppingCart == nil {
		return ErrCartIsRequired
	}

	c.cart = shoppingCart
	return nil
}

func (c *PlaceOrderCommand) setMethod(method string) error {
	if method == "" {
		return ErrShippingMethodIsRequired
	}

	c.method = method
	return nil
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

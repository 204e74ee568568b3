package cart

import (
	"fmt"

	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"
)

// Cart accumulates stock-checked line items before an order is placed.
//
// Entries are keyed by product name, because product identity is the name:
// re-adding a same-named product replaces the requested quantity rather than
// creating a second line, and keeps the product object that was added first.
//
// An entry's quantity was available when it was added; it is re-checked on
// Commit because stock can change in between.
type Cart struct {
	lines map[string]*line
	order []string
}

type line struct {
	product *product.Product
	amount  int
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		lines: make(map[string]*line),
	}
}

// AddItem puts a product into the cart with the requested quantity.
//
// The quantity must be positive and available at the time of the call,
// otherwise an InsufficientStockError names the product. Adding a product
// already in the cart overwrites the requested quantity; it is not additive.
func (c *Cart) AddItem(p *product.Product, amount int) error {
	if p == nil {
		return errs.NewValueIsRequiredError("product")
	}
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is not greater than 0", amount),
		)
	}
	if !p.IsAvailable(amount) {
		return product.NewInsufficientStockError(p.Name(), amount, p.AvailableAmount())
	}

	if existing, ok := c.lines[p.Name()]; ok {
		existing.amount = amount
		return nil
	}

	c.lines[p.Name()] = &line{product: p, amount: amount}
	c.order = append(c.order, p.Name())
	return nil
}

// RemoveItem deletes the product's line. Removing an absent product is a no-op.
func (c *Cart) RemoveItem(p *product.Product) {
	if p == nil {
		return
	}
	if _, ok := c.lines[p.Name()]; !ok {
		return
	}

	delete(c.lines, p.Name())
	for i, name := range c.order {
		if name == p.Name() {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Contains reports whether the cart holds a line for the product's name.
func (c *Cart) Contains(p *product.Product) bool {
	if p == nil {
		return false
	}
	_, ok := c.lines[p.Name()]
	return ok
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total returns the sum of price times quantity over all lines.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, l := range c.lines {
		total += l.product.Price() * float64(l.amount)
	}
	return total
}

// Commit buys every line and clears the cart, returning the item identifiers
// in the order the lines were added. The returned sequence becomes the
// shipment's line-item snapshot.
//
// Commit is two-phase: availability is verified for every line before any
// stock is decremented, so an insufficient line fails the whole commit and
// leaves all stock and the cart untouched.
func (c *Cart) Commit() ([]string, error) {
	for _, name := range c.order {
		l := c.lines[name]
		if !l.product.IsAvailable(l.amount) {
			return nil, product.NewInsufficientStockError(name, l.amount, l.product.AvailableAmount())
		}
	}

	itemIDs := make([]string, 0, len(c.order))
	for _, name := range c.order {
		l := c.lines[name]
		if err := l.product.Buy(l.amount); err != nil {
			return nil, err
		}
		itemIDs = append(itemIDs, l.product.String())
	}

	c.lines = make(map[string]*line)
	c.order = nil
	return itemIDs, nil
}

package product

import (
	"errors"
	"fmt"
	"sync"

	"fulfillment/internal/pkg/errs"
)

// ErrInsufficientStock is returned when a purchase or cart addition requests
// more units than the product currently has available.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError carries the details of a failed stock check so the
// caller can report which product was short and by how much.
// It unwraps to ErrInsufficientStock for classification with errors.Is.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

// NewInsufficientStockError creates an InsufficientStockError for the given product.
func NewInsufficientStockError(productName string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductName: productName,
		Requested:   requested,
		Available:   available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s has only %d items, requested %d",
		ErrInsufficientStock, e.ProductName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Product represents a stock-tracked sellable item in the catalog.
//
// Product follows these invariants:
//   - The name is required, non-empty, and is the product's identity
//   - The price is non-negative
//   - The available amount is a non-negative integer and never goes below zero
//
// Identity is the name alone: two products with the same name are considered
// the same product regardless of price. This is a deliberate business rule,
// not an accident — any mapping keyed by product collapses same-named entries.
//
// The availability check and the decrement in Buy happen under one lock, so
// concurrent buyers of the same product cannot oversell it.
type Product struct {
	name  string
	price float64

	mu              sync.Mutex
	availableAmount int
}

// NewProduct creates a Product with validation.
//
// Parameters:
//   - name: the product identity (required, non-empty)
//   - price: unit price (must not be negative)
//   - availableAmount: units in stock (must not be negative)
//
// Returns a validation error describing the offending value if any input is invalid.
func NewProduct(name string, price float64, availableAmount int) (*Product, error) {
	p := &Product{}

	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setAvailableAmount(availableAmount),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Name returns the product's identifying name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() float64 {
	return p.price
}

// AvailableAmount returns the units currently in stock.
func (p *Product) AvailableAmount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.availableAmount
}

// IsAvailable reports whether at least requestedAmount units are in stock.
// It has no side effects. The answer can go stale as soon as it is returned;
// Buy re-checks under the same lock before decrementing.
func (p *Product) IsAvailable(requestedAmount int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.availableAmount >= requestedAmount
}

// Buy decrements the available amount by requestedAmount.
//
// The check and the decrement are a single atomic step: concurrent calls for
// the same product serialize, and stock never goes negative. On failure the
// stock is left unchanged and an InsufficientStockError names the product.
func (p *Product) Buy(requestedAmount int) error {
	if requestedAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"requestedAmount",
			fmt.Errorf("%d is not greater than 0", requestedAmount),
		)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if requestedAmount > p.availableAmount {
		return NewInsufficientStockError(p.name, requestedAmount, p.availableAmount)
	}

	p.availableAmount -= requestedAmount
	return nil
}

// IsEqual compares two products by name only.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.name == other.name
}

// String returns the product name. The name doubles as the item identifier
// recorded in shipment line-item snapshots.
func (p *Product) String() string {
	return p.name
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%f is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setAvailableAmount(availableAmount int) error {
	if availableAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"availableAmount",
			fmt.Errorf("%d is negative", availableAmount),
		)
	}
	p.availableAmount = availableAmount
	return nil
}

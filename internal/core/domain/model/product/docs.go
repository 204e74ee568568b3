// Package product provides the catalog item entity for the fulfillment system.
//
// The package includes:
//   - Product: a stock-tracked sellable item whose identity is its name
//   - InsufficientStockError: the typed failure for over-requested stock
//
// Key business rules:
//   - Product identity and equality derive from the name only
//   - Available stock never goes negative; the availability check and the
//     decrement in Buy form one atomic step under concurrent access
package product

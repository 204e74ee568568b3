// Package cart provides the shopping cart that aggregates requested catalog
// items with quantities before an order is placed.
//
// Key business rules:
//   - Lines are keyed by product name (product identity is the name)
//   - Adding an already-present product overwrites its quantity
//   - Commit verifies availability for every line before decrementing any,
//     then clears the cart and returns the line-item snapshot in insertion order
package cart

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: a validated command value object
// created through its constructor, and a handler that performs validation,
// collaborator calls, and persistence.
//
// The shipment lifecycle engine lives here:
//   - CreateShipmentCommandHandler validates method and due date, persists the
//     Created record, then publishes the queue notification (persist-before-publish)
//   - ProcessShipmentCommandHandler resolves the terminal status with a
//     compare-and-set write, tolerating duplicate queue deliveries
//   - PlaceOrderCommandHandler is the order façade binding a cart commit to
//     shipment creation
//
// Handlers receive the record store and queue ports through their
// constructors; the composing application owns collaborator lifecycles.
package commands

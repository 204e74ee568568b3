// Package shipment provides domain entities and business logic for the
// shipment lifecycle in the fulfillment system. It implements the Shipment
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Shipment: the aggregate root holding the line-item snapshot and lifecycle status
//   - Status: a state machine that enforces valid shipment status transitions
//   - Method: the closed set of supported shipping methods
//
// Key business rules:
//   - Shipments must have valid identifiers, a supported method, a non-empty
//     item snapshot, and a due date strictly in the future at creation
//   - Status follows a defined workflow: Created -> Completed or Created -> Failed,
//     resolved by comparing the due date against the processing time
//   - Completed and Failed are terminal; reprocessing a terminal shipment is a no-op
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment

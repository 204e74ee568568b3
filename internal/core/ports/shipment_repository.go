package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment records.
// The store is keyed by shipping identifier and guarantees single-record
// atomicity; no cross-record transactions are assumed.
type ShipmentRepository interface {
	// Add persists a new shipment record.
	// The shipment must be valid and not already exist in the store.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment record by its shipping identifier.
	// Returns an error unwrapping to errs.ErrObjectNotFound when no record exists.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// UpdateStatus transitions the record's status from expected to next as a
	// single atomic compare-and-set. When the record's current status is not
	// expected, the update is refused with an error unwrapping to
	// errs.ErrStatusConflict, so concurrent consumers cannot race two
	// conflicting terminal states onto one record.
	UpdateStatus(ctx context.Context, id kernel.UUID, expected, next shipment.Status) error
}

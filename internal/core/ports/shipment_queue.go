package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// ShipmentQueue defines the at-least-once delivery channel that notifies
// workers of shipments awaiting processing. Messages carry the shipping
// identifier as an opaque payload; no ordering is guaranteed, and a message
// may be redelivered, so consumers must tolerate duplicates.
type ShipmentQueue interface {
	// Publish enqueues a notification for the given shipping identifier and
	// returns the transport's message identifier.
	Publish(ctx context.Context, shippingID kernel.UUID) (string, error)

	// Poll retrieves up to maxBatch shipping identifier payloads, blocking up
	// to a bounded wait when the queue is empty. An empty result means "no
	// message currently available", not an error.
	Poll(ctx context.Context, maxBatch int) ([]string, error)
}

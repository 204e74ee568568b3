// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetShipmentStatusQueryIsNotConstructed = errors.New(
		"GetShipmentStatusQuery must be created via NewGetShipmentStatusQuery constructor",
	)
)

// GetShipmentStatusQuery retrieves the current status of a single shipment.
// Reading the status never changes it, so the query can be repeated freely
// while a shipment is being processed.
//
// Example:
//
//	query, err := queries.NewGetShipmentStatusQuery(shippingID)
//	if err != nil {
//	    return err
//	}
//	handler := queries.NewGetShipmentStatusQueryHandler(db)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shipment status: %w", err)
//	}
//
//	fmt.Printf("Shipment %s is %s\n", response.ShippingID, response.Status)
type GetShipmentStatusQuery struct {
	guard guard.ConstructorGuard

	ShippingID kernel.UUID
}

// NewGetShipmentStatusQuery creates a query for the given shipping identifier.
func NewGetShipmentStatusQuery(shippingID kernel.UUID) (GetShipmentStatusQuery, error) {
	if err := shippingID.Validate(); err != nil {
		return GetShipmentStatusQuery{}, err
	}

	return GetShipmentStatusQuery{
		guard:      guard.NewConstructorGuard(),
		ShippingID: shippingID,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentStatusQueryIsNotConstructed if validation fails.
func (q GetShipmentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentStatusQueryIsNotConstructed)
}

// GetShipmentStatusQueryResponse carries the shipment status read model.
type GetShipmentStatusQueryResponse struct {
	ShippingID kernel.UUID
	Status     string
}

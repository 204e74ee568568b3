package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// ListShippingMethodsQueryHandler returns the catalogue of shipping methods.
// The catalogue lives in the domain model, so no storage access is needed.
type ListShippingMethodsQueryHandler struct{}

// NewListShippingMethodsQueryHandler creates a handler for shipping method queries.
func NewListShippingMethodsQueryHandler() ListShippingMethodsQueryHandler {
	return ListShippingMethodsQueryHandler{}
}

// Handle executes the query and returns the shipping methods in their
// presentation order.
func (h ListShippingMethodsQueryHandler) Handle(
	_ context.Context,
	query ListShippingMethodsQuery,
) ([]ListShippingMethodsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	methods := shipment.AvailableMethods()
	responses := make([]ListShippingMethodsQueryResponse, 0, len(methods))
	for _, method := range methods {
		responses = append(responses, ListShippingMethodsQueryResponse{Name: method.String()})
	}

	return responses, nil
}

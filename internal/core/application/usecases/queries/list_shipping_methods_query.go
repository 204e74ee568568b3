package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrListShippingMethodsQueryIsNotConstructed = errors.New(
		"ListShippingMethodsQuery must be created via NewListShippingMethodsQuery constructor",
	)
)

// ListShippingMethodsQuery retrieves the shipping methods offered at checkout.
// The set is fixed and the response ordering is stable across calls.
type ListShippingMethodsQuery struct {
	guard guard.ConstructorGuard
}

// NewListShippingMethodsQuery creates a query to list the available shipping methods.
// This is a parameterless query.
func NewListShippingMethodsQuery() ListShippingMethodsQuery {
	return ListShippingMethodsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListShippingMethodsQueryIsNotConstructed if validation fails.
func (q ListShippingMethodsQuery) Validate() error {
	return q.guard.Validate(ErrListShippingMethodsQueryIsNotConstructed)
}

// ListShippingMethodsQueryResponse names a single shipping method offered at checkout.
type ListShippingMethodsQueryResponse struct {
	Name string
}

package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListShippingMethodsQuery_Valid(t *testing.T) {
	query := queries.NewListShippingMethodsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestListShippingMethodsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListShippingMethodsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListShippingMethodsQueryIsNotConstructed)
}

package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("should create valid command with generated order ID", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(cart.NewCart(), "Pickup Point", time.Time{})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.NoError(t, cmd.OrderID().Validate())
		assert.True(t, cmd.DueDate().IsZero())
	})

	t.Run("each command gets its own order ID", func(t *testing.T) {
		first, err := commands.NewPlaceOrderCommand(cart.NewCart(), "Pickup Point", time.Time{})
		require.NoError(t, err)
		second, err := commands.NewPlaceOrderCommand(cart.NewCart(), "Pickup Point", time.Time{})
		require.NoError(t, err)

		assert.False(t, first.OrderID().IsEqual(second.OrderID()))
	})

	t.Run("should accept caller-supplied order ID", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewPlaceOrderCommandWithOrderID(
			cart.NewCart(), "Pickup Point", orderID, time.Time{},
		)

		require.NoError(t, err)
		assert.True(t, cmd.OrderID().IsEqual(orderID))
	})

	t.Run("should fail with nil cart", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(nil, "Pickup Point", time.Time{})

		require.ErrorIs(t, err, commands.ErrCartIsRequired)
	})

	t.Run("should fail with empty method", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(cart.NewCart(), "", time.Time{})

		require.ErrorIs(t, err, commands.ErrShippingMethodIsRequired)
	})

	t.Run("unconstructed command fails validation", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}

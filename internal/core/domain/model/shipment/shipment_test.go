package shipment_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipment(t *testing.T) {
	validID := kernel.NewUUID()
	validOrderID := kernel.NewUUID()
	validItems := []string{"Widget"}
	now := time.Now().UTC()
	validDueDate := now.Add(5 * time.Minute)

	t.Run("should create valid shipment with all valid parameters", func(t *testing.T) {
		s, err := shipment.NewShipment(
			validID, shipment.MethodPickupPoint, validItems, validOrderID, validDueDate, now,
		)

		require.NoError(t, err)
		assert.NotNil(t, s)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(validID))
		assert.True(t, s.OrderID().IsEqual(validOrderID))
		assert.Equal(t, shipment.MethodPickupPoint, s.Method())
		assert.Equal(t, []string{"Widget"}, s.ItemIDs())
		assert.Equal(t, shipment.StatusCreated, s.Status())
		assert.Equal(t, validDueDate, s.DueDate())
	})

	t.Run("should fail with invalid shipping UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		s, err := shipment.NewShipment(
			invalidID, shipment.MethodPickupPoint, validItems, validOrderID, validDueDate, now,
		)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with unknown method", func(t *testing.T) {
		s, err := shipment.NewShipment(
			validID, shipment.MethodUnknown, validItems, validOrderID, validDueDate, now,
		)

		require.Error(t, err)
		assert.Nil(t, s)
		require.ErrorIs(t, err, shipment.ErrShippingMethodIsNotAvailable)
	})

	t.Run("should fail with empty item snapshot", func(t *testing.T) {
		s, err := shipment.NewShipment(
			validID, shipment.MethodPickupPoint, nil, validOrderID, validDueDate, now,
		)

		require.Error(t, err)
		assert.Nil(t, s)
		require.ErrorIs(t, err, shipment.ErrItemIDsAreRequired)
	})

	t.Run("should fail with blank item identifier", func(t *testing.T) {
		s, err := shipment.NewShipment(
			validID, shipment.MethodPickupPoint, []string{"Widget", ""}, validOrderID, validDueDate, now,
		)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should fail with due date in the past", func(t *testing.T) {
		s, err := shipment.NewShipment(
			validID, shipment.MethodPickupPoint, validItems, validOrderID, now.Add(-time.Second), now,
		)

		require.Error(t, err)
		assert.Nil(t, s)
		require.ErrorIs(t, err, shipment.ErrDueDateIsInThePast)
	})

	t.Run("should fail with due date exactly now", func(t *testing.T) {
		s, err := shipment.NewShipment(
			validID, shipment.MethodPickupPoint, validItems, validOrderID, now, now,
		)

		require.Error(t, err)
		assert.Nil(t, s)
		require.ErrorIs(t, err, shipment.ErrDueDateIsInThePast)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		s, err := shipment.NewShipment(
			invalidID, shipment.MethodUnknown, nil, validOrderID, now, now,
		)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "UUID must be created")
		require.ErrorIs(t, err, shipment.ErrShippingMethodIsNotAvailable)
		require.ErrorIs(t, err, shipment.ErrItemIDsAreRequired)
		require.ErrorIs(t, err, shipment.ErrDueDateIsInThePast)
	})

	t.Run("item snapshot is copied, not aliased", func(t *testing.T) {
		items := []string{"Widget", "Gadget"}
		s, err := shipment.NewShipment(
			validID, shipment.MethodNovaPoshta, items, validOrderID, validDueDate, now,
		)
		require.NoError(t, err)

		items[0] = "Mutated"
		got := s.ItemIDs()
		assert.Equal(t, "Widget", got[0])

		got[1] = "AlsoMutated"
		assert.Equal(t, "Gadget", s.ItemIDs()[1])
	})
}

func TestRestoreShipment(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()
	pastDue := time.Now().UTC().Add(-time.Hour)

	t.Run("restores a past-due record without due date validation", func(t *testing.T) {
		s, err := shipment.RestoreShipment(
			id, shipment.MethodUkrPoshta, []string{"Widget"}, orderID, shipment.StatusCreated, pastDue,
		)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.StatusCreated, s.Status())
		assert.Equal(t, pastDue, s.DueDate())
	})

	t.Run("restores terminal statuses", func(t *testing.T) {
		s, err := shipment.RestoreShipment(
			id, shipment.MethodUkrPoshta, []string{"Widget"}, orderID, shipment.StatusFailed, pastDue,
		)

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusFailed, s.Status())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		s, err := shipment.RestoreShipment(
			id, shipment.MethodUkrPoshta, []string{"Widget"}, orderID, shipment.StatusUnknown, pastDue,
		)

		require.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestShipment_Validate(t *testing.T) {
	t.Run("zero value shipment fails validation", func(t *testing.T) {
		var s shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})

	t.Run("nil shipment fails validation", func(t *testing.T) {
		var s *shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_TerminalStatusAt(t *testing.T) {
	now := time.Now().UTC()
	s, err := shipment.NewShipment(
		kernel.NewUUID(), shipment.MethodMeestExpress, []string{"Widget"}, kernel.NewUUID(),
		now.Add(5*time.Minute), now,
	)
	require.NoError(t, err)

	t.Run("completed when processed before the due date", func(t *testing.T) {
		assert.Equal(t, shipment.StatusCompleted, s.TerminalStatusAt(now.Add(time.Minute)))
	})

	t.Run("completed when processed exactly at the due date", func(t *testing.T) {
		assert.Equal(t, shipment.StatusCompleted, s.TerminalStatusAt(s.DueDate()))
	})

	t.Run("failed when processed after the due date", func(t *testing.T) {
		assert.Equal(t, shipment.StatusFailed, s.TerminalStatusAt(now.Add(10*time.Minute)))
	})

	t.Run("has no side effect", func(t *testing.T) {
		s.TerminalStatusAt(now.Add(10 * time.Minute))
		assert.Equal(t, shipment.StatusCreated, s.Status())
	})
}

func TestShipment_Transitions(t *testing.T) {
	now := time.Now().UTC()
	newShipment := func(t *testing.T) *shipment.Shipment {
		t.Helper()
		s, err := shipment.NewShipment(
			kernel.NewUUID(), shipment.MethodNovaPoshta, []string{"Widget"}, kernel.NewUUID(),
			now.Add(time.Hour), now,
		)
		require.NoError(t, err)
		return s
	}

	t.Run("created shipment can complete", func(t *testing.T) {
		s := newShipment(t)

		require.NoError(t, s.Complete())
		assert.Equal(t, shipment.StatusCompleted, s.Status())
	})

	t.Run("created shipment can fail", func(t *testing.T) {
		s := newShipment(t)

		require.NoError(t, s.Fail())
		assert.Equal(t, shipment.StatusFailed, s.Status())
	})

	t.Run("no transition out of terminal states", func(t *testing.T) {
		s := newShipment(t)
		require.NoError(t, s.Complete())

		require.Error(t, s.Complete())
		require.Error(t, s.Fail())
		assert.Equal(t, shipment.StatusCompleted, s.Status())
	})
}

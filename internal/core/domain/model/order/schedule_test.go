package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/core/domain/model/order"
)

func TestNewSchedule(t *testing.T) {
	t.Run("immediate without times", func(t *testing.T) {
		s, err := order.NewSchedule(order.ScheduleImmediate, nil, nil)
		require.NoError(t, err)
		assert.NoError(t, s.Validate())
		assert.NoError(t, s.ValidateForCommit())
	})

	t.Run("deferred without pickup time passes loose validation only", func(t *testing.T) {
		s, err := order.NewSchedule(order.ScheduleDeferred, nil, nil)
		require.NoError(t, err)
		assert.NoError(t, s.Validate())
		assert.Error(t, s.ValidateForCommit())
	})

	t.Run("deferred with pickup time commits", func(t *testing.T) {
		pickupAt := time.Now().Add(2 * time.Hour)
		s, err := order.NewSchedule(order.ScheduleDeferred, &pickupAt, nil)
		require.NoError(t, err)
		assert.NoError(t, s.ValidateForCommit())
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := order.NewSchedule(order.ScheduleUnknown, nil, nil)
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var s order.Schedule
		assert.ErrorIs(t, s.Validate(), order.ErrScheduleIsNotConstructed)
	})
}

func TestSchedule_EffectivePickupTime(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("immediate picks up now", func(t *testing.T) {
		s, err := order.NewSchedule(order.ScheduleImmediate, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, now, s.EffectivePickupTime(now))
	})

	t.Run("in one hour adds an hour", func(t *testing.T) {
		s, err := order.NewSchedule(order.ScheduleInOneHour, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, now.Add(time.Hour), s.EffectivePickupTime(now))
	})

	t.Run("deferred uses the explicit time", func(t *testing.T) {
		pickupAt := now.Add(5 * time.Hour)
		s, err := order.NewSchedule(order.ScheduleDeferred, &pickupAt, nil)
		require.NoError(t, err)
		assert.Equal(t, pickupAt, s.EffectivePickupTime(now))
	})

	t.Run("deferred without time falls back to now", func(t *testing.T) {
		s, err := order.NewSchedule(order.ScheduleDeferred, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, now, s.EffectivePickupTime(now))
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("free text only needs geocoding", func(t *testing.T) {
		addr, err := order.NewAddress("12 rue Oberkampf, Paris")
		require.NoError(t, err)
		assert.True(t, addr.NeedsGeocoding())
		assert.Empty(t, addr.PostalCode())
	})

	t.Run("blank text is rejected", func(t *testing.T) {
		_, err := order.NewAddress("   ")
		assert.Error(t, err)
	})

	t.Run("resolved address carries coordinates", func(t *testing.T) {
		addr := mustResolvedAddress(t, "12 rue Oberkampf, Paris", "Paris", "75011", 48.8649, 2.3708)
		assert.False(t, addr.NeedsGeocoding())
		assert.Equal(t, "75011", addr.PostalCode())
		require.NotNil(t, addr.Point())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var addr order.Address
		assert.ErrorIs(t, addr.Validate(), order.ErrAddressIsNotConstructed)
	})
}

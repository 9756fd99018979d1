package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/pkg/errs"
)

func completeDraft() commands.Draft {
	price := int64(4400)
	lat, lng := 48.8559, 2.3571
	return commands.Draft{
		Reference:        "CMD-0042",
		PickupText:       "10 rue de Rivoli, 75004 Paris",
		PickupCity:       "Paris 04",
		PickupPostalCode: "75004",
		PickupLatitude:   &lat,
		PickupLongitude:  &lng,
		DeliveryText:     "2 av. de Paris, 78000 Versailles",
		ScheduleType:     "IMMEDIATE",
		Vehicle:          "MOTO",
		Formula:          "EXPRESS",
		PriceHTCents:     &price,
	}
}

func TestDraft_ToCommand(t *testing.T) {
	t.Run("complete draft converts", func(t *testing.T) {
		cmd, err := completeDraft().ToCommand()
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, "CMD-0042", cmd.Reference())
		require.False(t, cmd.PickupAddress().NeedsGeocoding())
		require.True(t, cmd.DeliveryAddress().NeedsGeocoding())
		require.Equal(t, int64(4400), cmd.PriceHTCents())
	})

	t.Run("generates an order id when absent", func(t *testing.T) {
		cmd, err := completeDraft().ToCommand()
		require.NoError(t, err)
		require.NoError(t, cmd.OrderID().Validate())
	})

	t.Run("missing pickup text", func(t *testing.T) {
		d := completeDraft()
		d.PickupText = ""
		_, err := d.ToCommand()
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing price", func(t *testing.T) {
		d := completeDraft()
		d.PriceHTCents = nil
		_, err := d.ToCommand()
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unquoted formula", func(t *testing.T) {
		d := completeDraft()
		d.Formula = ""
		_, err := d.ToCommand()
		require.Error(t, err)
	})

	t.Run("deferred schedule requires pickup time", func(t *testing.T) {
		d := completeDraft()
		d.ScheduleType = "DEFERRED"
		_, err := d.ToCommand()
		require.Error(t, err)

		pickupAt := time.Now().Add(3 * time.Hour)
		d.PickupAt = &pickupAt
		cmd, err := d.ToCommand()
		require.NoError(t, err)
		require.NotNil(t, cmd.Schedule().PickupAt())
	})

	t.Run("half coordinates fall back to unresolved", func(t *testing.T) {
		d := completeDraft()
		d.PickupLongitude = nil
		cmd, err := d.ToCommand()
		require.NoError(t, err)
		require.True(t, cmd.PickupAddress().NeedsGeocoding())
	})
}

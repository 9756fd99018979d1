package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
)

func TestNewDriver(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		vehicle   order.VehicleType
		wantErr   bool
	}{
		{"valid moto driver", "Karim", "Benali", order.VehicleMoto, false},
		{"valid vl driver without first name", "", "Moreau", order.VehicleVL, false},
		{"missing last name", "Karim", "  ", order.VehicleMoto, true},
		{"invalid vehicle", "Karim", "Benali", order.VehicleUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := driver.NewDriver(kernel.NewUUID(), tt.firstName, tt.lastName, "0600000000", tt.vehicle)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, d.Validate())
			assert.False(t, d.IsOnline())
			assert.Equal(t, tt.vehicle, d.Vehicle())
		})
	}
}

func TestDriver_FullName(t *testing.T) {
	d, err := driver.NewDriver(kernel.NewUUID(), "Karim", "Benali", "", order.VehicleMoto)
	require.NoError(t, err)
	assert.Equal(t, "Karim Benali", d.FullName())

	d, err = driver.NewDriver(kernel.NewUUID(), "", "Moreau", "", order.VehicleVL)
	require.NoError(t, err)
	assert.Equal(t, "Moreau", d.FullName())
}

func TestDriver_OnlineToggle(t *testing.T) {
	d, err := driver.NewDriver(kernel.NewUUID(), "Karim", "Benali", "", order.VehicleMoto)
	require.NoError(t, err)

	d.GoOnline()
	assert.True(t, d.IsOnline())

	d.GoOffline()
	assert.False(t, d.IsOnline())
}

func TestRestoreDriver(t *testing.T) {
	id := kernel.NewUUID()
	d, err := driver.RestoreDriver(id, "Karim", "Benali", "0600000000", order.VehicleMoto, true)
	require.NoError(t, err)

	assert.True(t, d.IsOnline())
	assert.True(t, d.ID().IsEqual(id))
}

func TestDriver_Validate(t *testing.T) {
	var d *driver.Driver
	assert.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)

	zero := &driver.Driver{}
	assert.ErrorIs(t, zero.Validate(), driver.ErrDriverIsNotConstructed)
}

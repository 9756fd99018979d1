package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/core/domain/model/order"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{"pending is valid", order.StatusPending, false},
		{"assigned is valid", order.StatusAssigned, false},
		{"picked_up is valid", order.StatusPickedUp, false},
		{"delivered is valid", order.StatusDelivered, false},
		{"cancelled is valid", order.StatusCancelled, false},
		{"unknown is invalid", order.StatusUnknown, true},
		{"out of range is invalid", order.Status(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatusFromCode(t *testing.T) {
	t.Run("round-trips every valid status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusPending,
			order.StatusAssigned,
			order.StatusPickedUp,
			order.StatusDelivered,
			order.StatusCancelled,
		} {
			parsed, err := order.StatusFromCode(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown code", func(t *testing.T) {
		_, err := order.StatusFromCode("shipped")
		assert.Error(t, err)
	})
}

func TestStatus_Accept(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		want    order.Status
		wantErr bool
	}{
		{"pending can be accepted", order.StatusPending, order.StatusAssigned, false},
		{"assigned cannot be accepted again", order.StatusAssigned, 0, true},
		{"picked_up cannot be accepted", order.StatusPickedUp, 0, true},
		{"delivered cannot be accepted", order.StatusDelivered, 0, true},
		{"cancelled cannot be accepted", order.StatusCancelled, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Accept()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_Dispatch(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		want    order.Status
		wantErr bool
	}{
		{"pending can be dispatched", order.StatusPending, order.StatusAssigned, false},
		{"assigned can be re-dispatched", order.StatusAssigned, order.StatusAssigned, false},
		{"picked_up cannot be dispatched", order.StatusPickedUp, 0, true},
		{"delivered cannot be dispatched", order.StatusDelivered, 0, true},
		{"cancelled cannot be dispatched", order.StatusCancelled, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Dispatch()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_PickUp(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		wantErr bool
	}{
		{"assigned can be picked up", order.StatusAssigned, false},
		{"pending cannot be picked up", order.StatusPending, true},
		{"picked_up cannot be picked up again", order.StatusPickedUp, true},
		{"delivered cannot be picked up", order.StatusDelivered, true},
		{"cancelled cannot be picked up", order.StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.PickUp()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.StatusPickedUp, got)
		})
	}
}

func TestStatus_Deliver(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		wantErr bool
	}{
		{"picked_up can be delivered", order.StatusPickedUp, false},
		{"pending cannot be delivered", order.StatusPending, true},
		{"assigned cannot be delivered", order.StatusAssigned, true},
		{"delivered cannot be delivered again", order.StatusDelivered, true},
		{"cancelled cannot be delivered", order.StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Deliver()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.StatusDelivered, got)
		})
	}
}

func TestStatus_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		wantErr bool
	}{
		{"pending can be cancelled", order.StatusPending, false},
		{"assigned can be cancelled", order.StatusAssigned, false},
		{"picked_up cannot be cancelled", order.StatusPickedUp, true},
		{"delivered cannot be cancelled", order.StatusDelivered, true},
		{"cancelled cannot be cancelled again", order.StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Cancel()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.StatusCancelled, got)
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusAssigned.IsTerminal())
	assert.False(t, order.StatusPickedUp.IsTerminal())
}

func TestStatus_ValidateCanHaveDriver(t *testing.T) {
	tests := []struct {
		name      string
		status    order.Status
		hasDriver bool
		wantErr   bool
	}{
		{"pending without driver", order.StatusPending, false, false},
		{"pending with driver", order.StatusPending, true, true},
		{"assigned without driver", order.StatusAssigned, false, false},
		{"assigned with driver", order.StatusAssigned, true, false},
		{"picked_up with driver", order.StatusPickedUp, true, false},
		{"picked_up without driver", order.StatusPickedUp, false, true},
		{"delivered with driver", order.StatusDelivered, true, false},
		{"delivered without driver", order.StatusDelivered, false, true},
		{"cancelled without driver", order.StatusCancelled, false, false},
		{"cancelled with driver", order.StatusCancelled, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.ValidateCanHaveDriver(tt.hasDriver)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

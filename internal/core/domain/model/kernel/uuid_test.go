package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/core/domain/model/kernel"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	assert.NoError(t, id.Validate())
	assert.Len(t, id.String(), 36)

	other := kernel.NewUUID()
	assert.False(t, id.IsEqual(other))
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid string round-trips", func(t *testing.T) {
		const raw = "550e8400-e29b-41d4-a716-446655440000"

		id, err := kernel.UUIDFromString(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("invalid string returns error", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		assert.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID
	assert.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_IsEqual(t *testing.T) {
	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)
	same, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)

	assert.True(t, id.IsEqual(same))
	assert.False(t, id.IsEqual(kernel.NewUUID()))
}

package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_GetSetRemove(t *testing.T) {
	store := NewKVStore()

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("k", "v1"))
	value, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", value)

	require.NoError(t, store.Set("k", "v2"))
	value, _, _ = store.Get("k")
	assert.Equal(t, "v2", value)

	require.NoError(t, store.Remove("k"))
	_, ok, _ = store.Get("k")
	assert.False(t, ok)

	// Removing an absent key is not an error.
	require.NoError(t, store.Remove("k"))
}

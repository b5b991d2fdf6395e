package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_KeysMatching(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(0)
	for _, k := range []string{"inventory:2:WH1", "inventory:1:WH1", "inventory:1:WH2", "history:1:WH1"} {
		require.NoError(t, m.Set(ctx, k, "x"))
	}

	keys, err := m.KeysMatching(ctx, "inventory:*:WH1")

	require.NoError(t, err)
	assert.Equal(t, []string{"inventory:1:WH1", "inventory:2:WH1"}, keys)
}

func TestMemoryStore_KeysMatchingEscapedPattern(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(0)
	for _, k := range []string{"inventory:1:A[1", "inventory:2:A1", "inventory:3:A*"} {
		require.NoError(t, m.Set(ctx, k, "x"))
	}

	keys, err := m.KeysMatching(ctx, `inventory:*:A\[1`)
	require.NoError(t, err)
	assert.Equal(t, []string{"inventory:1:A[1"}, keys)

	keys, err = m.KeysMatching(ctx, `inventory:*:A\*`)
	require.NoError(t, err)
	assert.Equal(t, []string{"inventory:3:A*"}, keys)
}

func TestMemoryStore_Lists(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(2)

	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, m.ListAppend(ctx, "history:1:WH1", v))
	}

	got, err := m.ListRange(ctx, "history:1:WH1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, got)

	empty, err := m.ListRange(ctx, "history:2:WH1")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(0)

	_, found, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.Set(ctx, "k", "v"))
	v, found, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v)

	require.NoError(t, m.Delete(ctx, "k"))
	_, found, _ = m.Get(ctx, "k")
	assert.False(t, found)
}

package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vortexgear/storefront/internal/storage/sqlite"
)

func openStore(t *testing.T, path string) *sqlite.Store {
	t.Helper()

	store, err := sqlite.Open(t.Context(), path)
	require.NoError(t, err, "Failed to open sqlite store")

	return store
}

func TestStore(t *testing.T) {
	ctx := t.Context()

	t.Run("Missing Key", func(t *testing.T) {
		store := openStore(t, filepath.Join(t.TempDir(), "kv.db"))
		defer store.Close()

		value, found, err := store.Get(ctx, "vortex_cart")

		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("Set Overwrites", func(t *testing.T) {
		store := openStore(t, filepath.Join(t.TempDir(), "kv.db"))
		defer store.Close()

		require.NoError(t, store.Set(ctx, "vortex_cart", "first"))
		require.NoError(t, store.Set(ctx, "vortex_cart", "second"))

		value, found, err := store.Get(ctx, "vortex_cart")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "second", value)
	})

	t.Run("Remove", func(t *testing.T) {
		store := openStore(t, filepath.Join(t.TempDir(), "kv.db"))
		defer store.Close()

		require.NoError(t, store.Set(ctx, "vortex_user", "u"))
		require.NoError(t, store.Remove(ctx, "vortex_user"))
		require.NoError(t, store.Remove(ctx, "vortex_user"))

		_, found, err := store.Get(ctx, "vortex_user")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Survives Reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "kv.db")

		first := openStore(t, path)
		require.NoError(t, first.Set(ctx, "vortex_orders", "[1]"))
		require.NoError(t, first.Close())

		second := openStore(t, path)
		defer second.Close()

		value, found, err := second.Get(ctx, "vortex_orders")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "[1]", value)
		assert.NoError(t, second.Ping(ctx))
	})
}

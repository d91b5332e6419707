package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repository "github.com/vortexgear/storefront/internal/repositories"
	service "github.com/vortexgear/storefront/internal/services"
)

func TestWishlistService(t *testing.T) {
	ctx := t.Context()
	mouse := testProduct("m1", 49.99)

	t.Run("Success - Toggle Adds Then Removes", func(t *testing.T) {
		// Arrange
		wishlist, err := service.NewWishlistService(ctx, repository.NewWishlistRepo(newFlakyKV()))
		require.NoError(t, err)

		// Act
		added, err := wishlist.ToggleWishlist(ctx, mouse)
		require.NoError(t, err)

		// Assert
		assert.True(t, added)
		assert.True(t, wishlist.IsInWishlist("m1"))
		require.Len(t, wishlist.Entries(), 1)
		assert.False(t, wishlist.Entries()[0].AddedAt.IsZero())

		added, err = wishlist.ToggleWishlist(ctx, mouse)
		require.NoError(t, err)
		assert.False(t, added)
		assert.False(t, wishlist.IsInWishlist("m1"))
		assert.Empty(t, wishlist.Entries())
	})

	t.Run("Success - Persisted", func(t *testing.T) {
		kv := newFlakyKV()
		wishlist, err := service.NewWishlistService(ctx, repository.NewWishlistRepo(kv))
		require.NoError(t, err)
		_, err = wishlist.ToggleWishlist(ctx, mouse)
		require.NoError(t, err)

		restored, err := service.NewWishlistService(ctx, repository.NewWishlistRepo(kv))

		require.NoError(t, err)
		assert.True(t, restored.IsInWishlist("m1"))
	})

	t.Run("Failure - Storage Error", func(t *testing.T) {
		kv := newFlakyKV()
		wishlist, err := service.NewWishlistService(ctx, repository.NewWishlistRepo(kv))
		require.NoError(t, err)
		kv.setErr = errStorage

		_, err = wishlist.ToggleWishlist(ctx, mouse)

		assert.ErrorIs(t, err, errStorage)
		assert.False(t, wishlist.IsInWishlist("m1"))
	})
}

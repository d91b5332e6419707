package redis_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-redis/redismock/v9"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vortexgear/storefront/internal/storage/redis"
)

func setup(t *testing.T) (*redis.Store, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	return redis.New(client), mock
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	testKey := "vortex_cart"

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		store, mock := setup(t)
		mock.ExpectGet(testKey).SetVal(`{"version":1}`)

		// Act
		value, found, err := store.Get(ctx, testKey)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `{"version":1}`, value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Key Not Found", func(t *testing.T) {
		// Arrange
		store, mock := setup(t)
		mock.ExpectGet(testKey).SetErr(goredis.Nil)

		// Act
		value, found, err := store.Get(ctx, testKey)

		// Assert
		require.NoError(t, err, "a missing key is not an error")
		assert.False(t, found)
		assert.Empty(t, value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		store, mock := setup(t)
		expectedErr := errors.New("redis connection error")
		mock.ExpectGet(testKey).SetErr(expectedErr)

		// Act
		_, found, err := store.Get(ctx, testKey)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), fmt.Sprintf("failed to get key %s from redis", testKey))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		store, mock := setup(t)
		mock.ExpectSet("vortex_user", "payload", 0).SetVal("OK")

		err := store.Set(ctx, "vortex_user", "payload")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		store, mock := setup(t)
		expectedErr := errors.New("readonly replica")
		mock.ExpectSet("vortex_user", "payload", 0).SetErr(expectedErr)

		err := store.Set(ctx, "vortex_user", "payload")

		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRemove(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		store, mock := setup(t)
		mock.ExpectDel("vortex_user").SetVal(1)

		require.NoError(t, store.Remove(ctx, "vortex_user"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Missing Key", func(t *testing.T) {
		store, mock := setup(t)
		mock.ExpectDel("vortex_user").SetVal(0)

		require.NoError(t, store.Remove(ctx, "vortex_user"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		store, mock := setup(t)
		expectedErr := errors.New("connection reset")
		mock.ExpectDel("vortex_user").SetErr(expectedErr)

		err := store.Remove(ctx, "vortex_user")

		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
	})
}

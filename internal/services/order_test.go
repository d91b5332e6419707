package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appErrors "github.com/vortexgear/storefront/internal/errors"
	"github.com/vortexgear/storefront/internal/models"
	repository "github.com/vortexgear/storefront/internal/repositories"
	service "github.com/vortexgear/storefront/internal/services"
)

func newLedger(t *testing.T, kv *flakyKV) *service.OrderService {
	t.Helper()

	orders, err := service.NewOrderService(t.Context(), repository.NewOrderRepository(kv))
	require.NoError(t, err)

	return orders
}

func TestOrderService(t *testing.T) {
	ctx := t.Context()

	first := models.Order{ID: "tx_1", UserID: "u1", Total: 10.1, Status: models.OrderStatusPending, Date: "2024-01-01T00:00:00Z"}
	second := models.Order{ID: "tx_2", UserID: "u2", Total: 20.2, Status: models.OrderStatusPending, Date: "2024-01-02T00:00:00Z"}
	third := models.Order{ID: "tx_3", UserID: "u1", Total: 0.2, Status: models.OrderStatusPending, Date: "2024-01-03T00:00:00Z"}

	t.Run("Success - Append And List In Order", func(t *testing.T) {
		// Arrange
		ledger := newLedger(t, newFlakyKV())

		// Act
		for _, o := range []models.Order{first, second, third} {
			require.NoError(t, ledger.CreateOrder(ctx, o))
		}

		// Assert
		assert.Equal(t, []models.Order{first, second, third}, ledger.ListOrders())
		assert.Equal(t, []models.Order{third, first}, ledger.OrdersForUser("u1"))
		assert.Empty(t, ledger.OrdersForUser("nobody"))
		assert.Equal(t, 30.5, ledger.Revenue())
	})

	t.Run("Success - Find Strips Hash", func(t *testing.T) {
		ledger := newLedger(t, newFlakyKV())
		require.NoError(t, ledger.CreateOrder(ctx, first))

		found, ok := ledger.FindOrder("#tx_1")
		assert.True(t, ok)
		assert.Equal(t, first, found)

		_, ok = ledger.FindOrder("tx_9")
		assert.False(t, ok)
	})

	t.Run("Success - Duplicate Ids Are Kept", func(t *testing.T) {
		ledger := newLedger(t, newFlakyKV())

		require.NoError(t, ledger.CreateOrder(ctx, first))
		require.NoError(t, ledger.CreateOrder(ctx, first))

		assert.Len(t, ledger.ListOrders(), 2)
	})

	t.Run("Success - Persisted", func(t *testing.T) {
		kv := newFlakyKV()
		require.NoError(t, newLedger(t, kv).CreateOrder(ctx, second))

		assert.Equal(t, []models.Order{second}, newLedger(t, kv).ListOrders())
	})

	t.Run("Failure - Storage Error", func(t *testing.T) {
		kv := newFlakyKV()
		ledger := newLedger(t, kv)
		kv.setErr = errStorage

		err := ledger.CreateOrder(ctx, first)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeStorageError, appErr.Code)
		assert.Empty(t, ledger.ListOrders())
	})

	t.Run("Empty Ledger", func(t *testing.T) {
		ledger := newLedger(t, newFlakyKV())

		assert.Empty(t, ledger.ListOrders())
		assert.Equal(t, 0.0, ledger.Revenue())
	})
}

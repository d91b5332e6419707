package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vortexgear/storefront/internal/api/handlers"
	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/testutils"
)

func TestAddItem(t *testing.T) {
	t.Run("Success - Repeated Add Increments Quantity", func(t *testing.T) {
		// Arrange
		app := setupApp(t, nil)
		cartHandler := handlers.NewCartHandler(app)
		product, _ := app.Catalog.FindProduct("cj_keyboard_11")

		// Act
		for range 2 {
			recorder := httptest.NewRecorder()
			cartHandler.AddItem()(recorder, jsonRequest(t, http.MethodPost, "/api/v1/cart/items", models.AddItemRequest{ProductID: product.ID}, nil))
			require.Equal(t, http.StatusOK, recorder.Code)
		}

		// Assert
		recorder := httptest.NewRecorder()
		cartHandler.GetCart()(recorder, testutils.CreateTestRequest(http.MethodGet, "/api/v1/cart", nil, nil))

		var cart models.CartResponse
		testutils.DecodeAPIResponse(t, recorder, &cart)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, 2, cart.ItemCount)
		assert.InDelta(t, product.Price*2, cart.Total, 0.001)
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		cartHandler := handlers.NewCartHandler(setupApp(t, nil))
		recorder := httptest.NewRecorder()

		cartHandler.AddItem()(recorder, jsonRequest(t, http.MethodPost, "/api/v1/cart/items", models.AddItemRequest{ProductID: "ghost"}, nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Failure - Missing Product ID", func(t *testing.T) {
		cartHandler := handlers.NewCartHandler(setupApp(t, nil))
		recorder := httptest.NewRecorder()

		cartHandler.AddItem()(recorder, jsonRequest(t, http.MethodPost, "/api/v1/cart/items", models.AddItemRequest{}, nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestRemoveAndClear(t *testing.T) {
	app := setupApp(t, nil)
	cartHandler := handlers.NewCartHandler(app)
	_, err := app.AddToCart(t.Context(), "cj_mouse_1")
	require.NoError(t, err)
	_, err = app.AddToCart(t.Context(), "cj_chair_35")
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	cartHandler.RemoveItem()(recorder, testutils.CreateTestRequest(http.MethodDelete, "/api/v1/cart/items/cj_mouse_1", nil, map[string]string{"id": "cj_mouse_1"}))

	var cart models.CartResponse
	testutils.DecodeAPIResponse(t, recorder, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "cj_chair_35", cart.Items[0].ID)

	// Removing an absent line is a no-op.
	recorder = httptest.NewRecorder()
	cartHandler.RemoveItem()(recorder, testutils.CreateTestRequest(http.MethodDelete, "/api/v1/cart/items/ghost", nil, map[string]string{"id": "ghost"}))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	cartHandler.ClearCart()(recorder, testutils.CreateTestRequest(http.MethodDelete, "/api/v1/cart", nil, nil))

	testutils.DecodeAPIResponse(t, recorder, &cart)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}

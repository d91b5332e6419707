package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vortexgear/storefront/internal/api/handlers"
	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/storefront"
	"github.com/vortexgear/storefront/internal/testutils"
)

// placeOrder -> checks out a single product as whoever is logged in
func placeOrder(t *testing.T, app *storefront.App, productID string) *models.Order {
	t.Helper()

	_, err := app.AddToCart(t.Context(), productID)
	require.NoError(t, err)

	req := validCheckout()
	order, err := app.PlaceOrder(t.Context(), &req)
	require.NoError(t, err)

	return order
}

func TestListMyOrders(t *testing.T) {
	t.Run("Success - Newest First", func(t *testing.T) {
		// Arrange
		app := setupApp(t, nil)
		orderHandler := handlers.NewOrderHandler(app)
		_, err := app.Login(t.Context(), "player@vortex.gg")
		require.NoError(t, err)
		first := placeOrder(t, app, "cj_mouse_1")
		second := placeOrder(t, app, "cj_mouse_2")
		recorder := httptest.NewRecorder()

		// Act
		orderHandler.ListMyOrders()(recorder, testutils.CreateTestRequest(http.MethodGet, "/api/v1/orders", nil, nil))

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var history models.OrderHistoryResponse
		testutils.DecodeAPIResponse(t, recorder, &history)
		require.Len(t, history.Orders, 2)
		assert.Equal(t, 2, history.Total)
		assert.Equal(t, second.ID, history.Orders[0].ID)
		assert.Equal(t, first.ID, history.Orders[1].ID)
	})

	t.Run("Failure - Not Logged In", func(t *testing.T) {
		orderHandler := handlers.NewOrderHandler(setupApp(t, nil))
		recorder := httptest.NewRecorder()

		orderHandler.ListMyOrders()(recorder, testutils.CreateTestRequest(http.MethodGet, "/api/v1/orders", nil, nil))

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestGetOrder(t *testing.T) {
	app := setupApp(t, nil)
	orderHandler := handlers.NewOrderHandler(app)

	_, err := app.Login(t.Context(), "owner@vortex.gg")
	require.NoError(t, err)
	order := placeOrder(t, app, "cj_chair_35")

	get := func(id string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		orderHandler.GetOrder()(recorder, testutils.CreateTestRequest(http.MethodGet, "/api/v1/orders/"+id, nil, map[string]string{"id": id}))
		return recorder
	}

	t.Run("Success - Owner With Hash Prefix", func(t *testing.T) {
		recorder := get("#" + order.ID)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var found models.Order
		testutils.DecodeAPIResponse(t, recorder, &found)
		assert.Equal(t, order.ID, found.ID)
	})

	t.Run("Failure - Other Customer", func(t *testing.T) {
		_, err := app.Login(t.Context(), "someone@vortex.gg")
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, get(order.ID).Code)
	})

	t.Run("Success - Admin", func(t *testing.T) {
		_, err := app.Login(t.Context(), "admin@vortex.gg")
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, get(order.ID).Code)
	})

	t.Run("Failure - Unknown Order", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get("tx_missing").Code)
	})
}

func TestListAllOrders(t *testing.T) {
	t.Run("Success - Admin Sees Revenue", func(t *testing.T) {
		app := setupApp(t, nil)
		orderHandler := handlers.NewOrderHandler(app)
		guest := placeOrder(t, app, "cj_mouse_1")
		_, err := app.Login(t.Context(), "admin@vortex.gg")
		require.NoError(t, err)
		recorder := httptest.NewRecorder()

		orderHandler.ListAllOrders()(recorder, testutils.CreateTestRequest(http.MethodGet, "/api/v1/admin/orders", nil, nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp models.AdminOrdersResponse
		testutils.DecodeAPIResponse(t, recorder, &resp)
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, 1, resp.Pending)
		assert.InDelta(t, guest.Total, resp.Revenue, 0.001)
	})

	t.Run("Failure - Customer Denied", func(t *testing.T) {
		app := setupApp(t, nil)
		orderHandler := handlers.NewOrderHandler(app)
		_, err := app.Login(t.Context(), "player@vortex.gg")
		require.NoError(t, err)
		recorder := httptest.NewRecorder()

		orderHandler.ListAllOrders()(recorder, testutils.CreateTestRequest(http.MethodGet, "/api/v1/admin/orders", nil, nil))

		assert.Equal(t, http.StatusForbidden, recorder.Code)

		resp := testutils.DecodeAPIResponse(t, recorder, nil)
		assert.Equal(t, "Access denied", resp.Error.Message)
	})
}

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vortexgear/storefront/internal/api/handlers"
	appErrors "github.com/vortexgear/storefront/internal/errors"
	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/testutils"
)

func TestListProducts(t *testing.T) {
	t.Run("Success - All Products", func(t *testing.T) {
		// Arrange
		productHandler := handlers.NewProductHandler(setupApp(t, nil))
		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/products", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		productHandler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var products []models.Product
		resp := testutils.DecodeAPIResponse(t, recorder, &products)
		assert.True(t, resp.Success)
		assert.Len(t, products, 50)
	})

	t.Run("Success - Filtered By Category", func(t *testing.T) {
		productHandler := handlers.NewProductHandler(setupApp(t, nil))
		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/products?category=chair", nil, nil)
		recorder := httptest.NewRecorder()

		productHandler.ListProducts()(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var products []models.Product
		testutils.DecodeAPIResponse(t, recorder, &products)
		assert.Len(t, products, 6)
		for _, p := range products {
			assert.Equal(t, models.CategoryChair, p.Category)
		}
	})

	t.Run("Failure - Unknown Category", func(t *testing.T) {
		productHandler := handlers.NewProductHandler(setupApp(t, nil))
		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/products?category=toaster", nil, nil)
		recorder := httptest.NewRecorder()

		productHandler.ListProducts()(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		resp := testutils.DecodeAPIResponse(t, recorder, nil)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeBadRequest, resp.Error.Code)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		productHandler := handlers.NewProductHandler(setupApp(t, nil))
		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/products/cj_mouse_1", nil, map[string]string{"id": "cj_mouse_1"})
		recorder := httptest.NewRecorder()

		productHandler.GetProduct()(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var product models.Product
		testutils.DecodeAPIResponse(t, recorder, &product)
		assert.Equal(t, "cj_mouse_1", product.ID)
		assert.Equal(t, models.CategoryMouse, product.Category)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		productHandler := handlers.NewProductHandler(setupApp(t, nil))
		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/products/nope", nil, map[string]string{"id": "nope"})
		recorder := httptest.NewRecorder()

		productHandler.GetProduct()(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		resp := testutils.DecodeAPIResponse(t, recorder, nil)
		assert.Equal(t, "Product not found", resp.Error.Message)
	})
}

func TestFeaturedAndCategories(t *testing.T) {
	app := setupApp(t, nil)
	productHandler := handlers.NewProductHandler(app)

	recorder := httptest.NewRecorder()
	productHandler.FeaturedProducts()(recorder, testutils.CreateTestRequest(http.MethodGet, "/api/v1/products/featured", nil, nil))

	var featured []models.Product
	testutils.DecodeAPIResponse(t, recorder, &featured)
	assert.Equal(t, app.Catalog.ListProducts()[:6], featured)

	recorder = httptest.NewRecorder()
	productHandler.ListCategories()(recorder, testutils.CreateTestRequest(http.MethodGet, "/api/v1/categories", nil, nil))

	var categories []models.CategoryInfo
	testutils.DecodeAPIResponse(t, recorder, &categories)
	assert.Len(t, categories, len(models.Categories))
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/vortexgear/storefront/internal/api/middleware"
	"github.com/vortexgear/storefront/internal/errors"
	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/storefront"
	"github.com/vortexgear/storefront/internal/utils/response"
)

type ProductHandler struct {
	app *storefront.App
}

func NewProductHandler(app *storefront.App) *ProductHandler {
	return &ProductHandler{app: app}
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Lists the catalog, optionally filtered by category. "all" or no filter returns every product.
//	@Tags			Products
//	@Produce		json
//	@Param			category	query		string					false	"Category id or all"
//	@Success		200			{array}		models.Product
//	@Failure		400			{object}	response.ErrorResponse	"Unknown category"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		filter := r.URL.Query().Get("category")
		if filter != "" && filter != models.CategoryFilterAll && !models.Category(filter).Valid() {
			logger.Warn("Unknown category filter", slog.String("category", filter))
			response.Error(w, errors.BadRequestError("Unknown category").WithDetail(filter))
			return
		}

		response.Success(w, http.StatusOK, h.app.Catalog.ListByCategory(filter))
	}
}

func (h *ProductHandler) FeaturedProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.app.FeaturedProducts())
	}
}

// GetProduct godoc
//	@Summary		Get a product
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	models.Product
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")

		product, ok := h.app.Catalog.FindProduct(id)
		if !ok {
			logger.Warn("Product not found", slog.String("productId", id))
			response.Error(w, errors.NotFoundError("Product not found"))
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.app.Catalog.Categories())
	}
}

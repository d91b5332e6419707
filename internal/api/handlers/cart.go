package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vortexgear/storefront/internal/api/middleware"
	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/storefront"
	"github.com/vortexgear/storefront/internal/utils"
	"github.com/vortexgear/storefront/internal/utils/response"
)

type CartHandler struct {
	app       *storefront.App
	validator *validator.Validate
}

func NewCartHandler(app *storefront.App) *CartHandler {
	return &CartHandler{app: app, validator: validator.New()}
}

func (h *CartHandler) cartResponse() models.CartResponse {
	items, total := h.app.Cart.Snapshot()

	count := 0
	for _, item := range items {
		count += item.Quantity
	}

	return models.CartResponse{Items: items, ItemCount: count, Total: total}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.cartResponse())
	}
}

// AddItem godoc
//	@Summary		Add a product to the cart
//	@Description	Adds one unit. Adding a product already in the cart increments its quantity.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Product to add"
//	@Success		200		{object}	models.CartResponse
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		500		{object}	response.ErrorResponse	"Storage error"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		logger = logger.With(slog.String("productId", req.ProductID))

		line, err := h.app.AddToCart(r.Context(), req.ProductID)
		if err != nil {
			logger.Error("Failed to add item to cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int("quantity", line.Quantity))
		response.Success(w, http.StatusOK, h.cartResponse())
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("productId", r.PathValue("id")))

		if err := h.app.Cart.RemoveFromCart(r.Context(), r.PathValue("id")); err != nil {
			logger.Error("Failed to remove item from cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item removed from cart")
		response.Success(w, http.StatusOK, h.cartResponse())
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.app.Cart.ClearCart(r.Context()); err != nil {
			logger.Error("Failed to clear cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, h.cartResponse())
	}
}

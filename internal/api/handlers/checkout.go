package handlers

import (
	"log/slog"
	"net/http"

	"github.com/vortexgear/storefront/internal/api/middleware"
	"github.com/vortexgear/storefront/internal/errors"
	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/storefront"
	"github.com/vortexgear/storefront/internal/utils"
	"github.com/vortexgear/storefront/internal/utils/response"
)

type CheckoutHandler struct {
	app *storefront.App
}

func NewCheckoutHandler(app *storefront.App) *CheckoutHandler {
	return &CheckoutHandler{app: app}
}

func (h *CheckoutHandler) GetStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.app.Checkout.Status())
	}
}

// PlaceOrder godoc
//	@Summary		Place an order
//	@Description	Validates shipping details, authorizes the cart total with the payment method reference and records the order.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CheckoutRequest	true	"Checkout form"
//	@Success		201			{object}	models.Order
//	@Failure		400			{object}	response.ErrorResponse	"Validation error or empty cart"
//	@Failure		402			{object}	response.ErrorResponse	"Payment failed"
//	@Failure		409			{object}	response.ErrorResponse	"Authorization already in flight"
//	@Failure		500			{object}	response.ErrorResponse	"Order could not be recorded"
//	@Router			/checkout [post]
func (h *CheckoutHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid checkout body", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError(err.Error()).WithError(err))
			return
		}

		order, err := h.app.PlaceOrder(r.Context(), &req)
		if err != nil {
			logger.Warn("Checkout failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout completed", slog.String("orderId", order.ID), slog.Float64("total", order.Total))
		response.Success(w, http.StatusCreated, order)
	}
}

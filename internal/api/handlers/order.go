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

type OrderHandler struct {
	app *storefront.App
}

func NewOrderHandler(app *storefront.App) *OrderHandler {
	return &OrderHandler{app: app}
}

// ListMyOrders godoc
//	@Summary		List my orders
//	@Description	Returns the logged-in user's orders, newest first.
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{object}	models.OrderHistoryResponse
//	@Failure		403	{object}	response.ErrorResponse	"Login required"
//	@Router			/orders [get]
func (h *OrderHandler) ListMyOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		orders, err := h.app.MyOrders()
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Order history requested without a session")
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.OrderHistoryResponse{Orders: orders, Total: len(orders)})
	}
}

// GetOrder godoc
//	@Summary		Get an order
//	@Description	Admins can read any order. Customers can read their own orders and guest orders.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID, with or without a leading #"
//	@Success		200	{object}	models.Order
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Router			/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")

		order, ok := h.app.Orders.FindOrder(id)
		if !ok || !h.canRead(order) {
			logger.Warn("Order not found", slog.String("orderId", id))
			response.Error(w, errors.NotFoundError("Order not found"))
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

func (h *OrderHandler) canRead(order models.Order) bool {

	if order.UserID == models.GuestUserID {
		return true
	}

	user, ok := h.app.Session.CurrentUser()

	return ok && (user.IsAdmin() || user.ID == order.UserID)
}

// ListAllOrders godoc
//	@Summary		List every order (admin)
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	models.AdminOrdersResponse
//	@Failure		403	{object}	response.ErrorResponse	"Access denied"
//	@Router			/admin/orders [get]
func (h *OrderHandler) ListAllOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		resp, err := h.app.AdminOrders()
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Admin orders denied")
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/vortexgear/storefront/internal/api/middleware"
	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/storefront"
	"github.com/vortexgear/storefront/internal/utils/response"
)

type WishlistHandler struct {
	app *storefront.App
}

func NewWishlistHandler(app *storefront.App) *WishlistHandler {
	return &WishlistHandler{app: app}
}

func (h *WishlistHandler) GetWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.app.Wishlist.Entries())
	}
}

// ToggleItem godoc
//	@Summary		Toggle a product in the wishlist
//	@Tags			Wishlist
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	models.WishlistToggleResponse
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Router			/wishlist/{id} [post]
func (h *WishlistHandler) ToggleItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("productId", id))

		added, err := h.app.ToggleWishlist(r.Context(), id)
		if err != nil {
			logger.Error("Failed to toggle wishlist", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Wishlist toggled", slog.Bool("inWishlist", added))
		response.Success(w, http.StatusOK, models.WishlistToggleResponse{ProductID: id, InWishlist: added})
	}
}

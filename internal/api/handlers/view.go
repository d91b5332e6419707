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

type ViewHandler struct {
	app       *storefront.App
	validator *validator.Validate
}

func NewViewHandler(app *storefront.App) *ViewHandler {
	return &ViewHandler{app: app, validator: validator.New()}
}

func (h *ViewHandler) GetView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, storefront.Describe(h.app.Router.Current()))
	}
}

// Navigate godoc
//	@Summary		Change the current view
//	@Description	Unknown views, and product pages for unknown products, resolve to home.
//	@Tags			View
//	@Accept			json
//	@Produce		json
//	@Param			view	body		models.NavigateRequest	true	"Target view"
//	@Success		200		{object}	models.ViewResponse
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Router			/view [put]
func (h *ViewHandler) Navigate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.NavigateRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid navigate input")
			return
		}

		view := h.app.NavigateTo(req)

		logger.Debug("Navigated", slog.String("requested", req.View), slog.String("view", string(view.Name())))
		response.Success(w, http.StatusOK, storefront.Describe(view))
	}
}

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

type SessionHandler struct {
	app       *storefront.App
	validator *validator.Validate
}

func NewSessionHandler(app *storefront.App) *SessionHandler {
	return &SessionHandler{app: app, validator: validator.New()}
}

func (h *SessionHandler) GetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		resp := models.SessionResponse{}
		if user, ok := h.app.Session.CurrentUser(); ok {
			resp.LoggedIn = true
			resp.User = &user
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// Login godoc
//	@Summary		Log in
//	@Description	Starts a session for the given email. No password is checked; emails containing "admin" get the admin role.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			login	body		models.LoginRequest	true	"Email"
//	@Success		200		{object}	models.SessionResponse
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		500		{object}	response.ErrorResponse	"Storage error"
//	@Router			/session [post]
func (h *SessionHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		user, err := h.app.Login(r.Context(), req.Email)
		if err != nil {
			logger.Error("Failed to log in", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("User logged in", slog.String("userId", user.ID), slog.String("role", string(user.Role)))
		response.Success(w, http.StatusOK, models.SessionResponse{LoggedIn: true, User: &user})
	}
}

func (h *SessionHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		h.app.Logout(r.Context())

		middleware.LoggerFromContext(r.Context()).Info("User logged out")
		response.Success(w, http.StatusOK, models.SessionResponse{LoggedIn: false})
	}
}

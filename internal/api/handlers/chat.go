package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vortexgear/storefront/internal/api/middleware"
	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/internal/storefront"
	"github.com/vortexgear/storefront/internal/utils"
	"github.com/vortexgear/storefront/internal/utils/response"
)

type ChatHandler struct {
	app       *storefront.App
	validator *validator.Validate
}

func NewChatHandler(app *storefront.App) *ChatHandler {
	return &ChatHandler{app: app, validator: validator.New()}
}

func (h *ChatHandler) GetTranscript() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		messages, product := h.app.Chat.Transcript()

		resp := models.ChatTranscriptResponse{Messages: messages}
		if product != nil {
			resp.ProductID = product.ID
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// SendMessage godoc
//	@Summary		Ask the assistant
//	@Description	Appends the message and the assistant's reply to the transcript. Assistant failures come back as a reply, not an error.
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Param			message	body		models.ChatRequest	true	"Message"
//	@Success		201		{object}	models.ChatMessage
//	@Failure		400		{object}	response.ErrorResponse	"Empty message"
//	@Router			/chat/messages [post]
func (h *ChatHandler) SendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ChatRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid chat input")
			return
		}

		reply, err := h.app.Chat.Send(r.Context(), req.Text)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, reply)
	}
}

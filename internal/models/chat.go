package models

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

type ChatRequest struct {
	Text string `json:"text" validate:"required"`
}

type ChatTranscriptResponse struct {
	Messages  []ChatMessage `json:"messages"`
	ProductID string        `json:"product_id,omitempty"`
}

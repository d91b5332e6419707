package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/vortexgear/storefront/internal/errors"
	"github.com/vortexgear/storefront/internal/metrics"
	"github.com/vortexgear/storefront/internal/models"
	"go.opentelemetry.io/otel/attribute"
)

const (
	ChatGreeting      = "Systems online. I am Vortex AI. Ready to upgrade your setup?"
	ChatOffline       = "AI Assistant is offline (Missing API Key)."
	ChatInterference  = "Connection interference detected. Please try again."
	ChatEmptyResponse = "I'm having trouble connecting to the Vortex mainframe."
)

// ErrGeneratorUnavailable is returned by a TextGenerator that has no credentials.
var ErrGeneratorUnavailable = stderrors.New("text generator unavailable")

// TextGenerator produces a free-text reply for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatService is the advisory chat. It never surfaces generator failures to
// the caller; they become model messages in the transcript.
type ChatService struct {
	mu         sync.Mutex
	transcript []models.ChatMessage
	product    *models.Product

	// epoch changes whenever the transcript is reset so late replies can be dropped.
	epoch int

	generator TextGenerator
	policy    *bluemonday.Policy
	timeout   time.Duration
}

// NewChatService builds the chat. generator may be nil, which keeps the
// assistant offline.
func NewChatService(generator TextGenerator, timeout time.Duration) *ChatService {
	return &ChatService{
		transcript: []models.ChatMessage{{Role: models.ChatRoleModel, Text: ChatGreeting}},
		generator:  generator,
		policy:     bluemonday.StrictPolicy(),
		timeout:    timeout,
	}
}

// Focus resets the transcript for a product conversation.
func (s *ChatService) Focus(product models.Product) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.product != nil && s.product.ID == product.ID {
		return
	}

	s.product = &product
	s.epoch++
	s.transcript = []models.ChatMessage{{
		Role: models.ChatRoleModel,
		Text: fmt.Sprintf("Accessing data for %s... Ask me anything about specs or performance.", product.Name),
	}}
}

// Unfocus drops the product context and keeps the transcript.
func (s *ChatService) Unfocus() {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.product = nil
}

func (s *ChatService) Transcript() ([]models.ChatMessage, *models.Product) {

	s.mu.Lock()
	defer s.mu.Unlock()

	var product *models.Product
	if s.product != nil {
		p := *s.product
		product = &p
	}

	return append([]models.ChatMessage{}, s.transcript...), product
}

// Send appends the user's message and the assistant's reply. Only blank input
// is rejected.
func (s *ChatService) Send(ctx context.Context, text string) (models.ChatMessage, error) {

	text = strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
	if text == "" {
		return models.ChatMessage{}, errors.AddValidationError("text", "message cannot be empty")
	}

	s.mu.Lock()
	s.transcript = append(s.transcript, models.ChatMessage{Role: models.ChatRoleUser, Text: text})
	epoch := s.epoch
	product := s.product
	s.mu.Unlock()

	reply := models.ChatMessage{Role: models.ChatRoleModel, Text: s.generate(ctx, text, product)}

	s.mu.Lock()
	if s.epoch == epoch {
		s.transcript = append(s.transcript, reply)
	}
	s.mu.Unlock()

	return reply, nil
}

func (s *ChatService) generate(ctx context.Context, text string, product *models.Product) string {

	if s.generator == nil {
		metrics.ChatRepliesTotal.WithLabelValues(metrics.OutcomeOffline).Inc()
		return ChatOffline
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ctx, span := tracer.Start(ctx, "chat.generate")
	defer span.End()

	if product != nil {
		span.SetAttributes(attribute.String("product.id", product.ID))
	}

	reply, err := s.generator.Generate(ctx, BuildAdvicePrompt(text, product))

	switch {
	case stderrors.Is(err, ErrGeneratorUnavailable):
		metrics.ChatRepliesTotal.WithLabelValues(metrics.OutcomeOffline).Inc()
		return ChatOffline
	case err != nil:
		slog.Error("Text generation failed", slog.String("error", err.Error()))
		span.RecordError(err)
		metrics.ChatRepliesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return ChatInterference
	case strings.TrimSpace(reply) == "":
		metrics.ChatRepliesTotal.WithLabelValues(metrics.OutcomeEmpty).Inc()
		return ChatEmptyResponse
	}

	metrics.ChatRepliesTotal.WithLabelValues(metrics.OutcomeReply).Inc()

	return reply
}

// BuildAdvicePrompt wraps the user's question with the store persona and the
// product being viewed, if any.
func BuildAdvicePrompt(query string, product *models.Product) string {

	productContext := "The user is browsing the main store."
	if product != nil {
		productContext = fmt.Sprintf(
			"The user is currently looking at: %s.\nPrice: $%.2f.\nSpecs: %s.\nDescription: %s.",
			product.Name, product.Price, strings.Join(product.Specs, ", "), product.Description,
		)
	}

	var b strings.Builder
	b.WriteString("You are 'Vortex AI', a helpful, witty, and knowledgeable gaming hardware expert assistant for an online store named Vortex.\n\n")
	b.WriteString("Context:\n")
	b.WriteString(productContext)
	b.WriteString("\n\nUser Query: \"")
	b.WriteString(query)
	b.WriteString("\"\n\n")
	b.WriteString("Task: Answer the user's question. If they ask about the product, explain why it's good for gaming.\n")
	b.WriteString("Keep it concise (under 3 sentences) and use gaming terminology where appropriate.\n")
	b.WriteString("Be enthusiastic but professional.\n")

	return b.String()
}

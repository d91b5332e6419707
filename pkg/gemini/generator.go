package gemini

import (
	"context"
	"errors"
	"fmt"

	service "github.com/vortexgear/storefront/internal/services"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

// ErrMissingAPIKey is service.ErrGeneratorUnavailable so the chat can tell an
// unconfigured assistant from a failing one.
var ErrMissingAPIKey = fmt.Errorf("gemini API key is required: %w", service.ErrGeneratorUnavailable)

// Generator answers chat prompts with a Gemini model.
type Generator struct {
	client *genai.Client
	model  string
}

type Option func(*genai.ClientConfig)

// WithBaseURL points the client at another endpoint, e.g. a proxy.
func WithBaseURL(url string) Option {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPOptions.BaseURL = url
	}
}

func NewGenerator(ctx context.Context, apiKey, model string, opts ...Option) (*Generator, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	if model == "" {
		model = DefaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Generator{client: client, model: model}, nil
}

// Generate returns the model's text. An empty string is a valid result.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if resp == nil {
		return "", errors.New("generate content: empty response")
	}

	return resp.Text(), nil
}

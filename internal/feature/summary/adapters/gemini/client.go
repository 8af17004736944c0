// Package gemini provides the Google Gemini text generation client.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"dashboard_backend/internal/feature/summary/usecase"
)

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-2.5-flash"
)

// GeminiGenerator generates issue-timeline summaries through the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

var _ usecase.TimelineGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a GeminiGenerator using ADC. The environment
// must provide GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT and
// GOOGLE_CLOUD_LOCATION. An empty model selects DefaultModel.
func NewGeminiGenerator(ctx context.Context, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate produces a completion for the prompt.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}

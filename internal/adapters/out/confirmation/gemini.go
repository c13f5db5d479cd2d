package confirmation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"intake/internal/core/domain/model/order"
	"intake/internal/core/ports"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

var errEmptyResponse = errors.New("la réponse du modèle est vide")

// ContentGenerator is the part of the genai client the generator uses; *genai.Models implements it.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// NewGeminiClient connects to the Gemini API backend with an API key.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client, nil
}

// GeminiGenerator writes the confirmation with a Gemini model and returns its text verbatim.
//
// Example:
//
//	client, err := NewGeminiClient(ctx, apiKey)
//	if err != nil {
//	    return err
//	}
//	generator := NewGeminiGenerator(client.Models, DefaultModel, 30*time.Second, logger)
type GeminiGenerator struct {
	models  ContentGenerator
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

func NewGeminiGenerator(models ContentGenerator, model string, timeout time.Duration, logger *slog.Logger) *GeminiGenerator {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiGenerator{
		models:  models,
		model:   model,
		timeout: timeout,
		logger:  logger.With("component", "gemini-generator"),
	}
}

// Generate returns a *ports.GenerationError when the call fails, times out or yields no text.
func (g *GeminiGenerator) Generate(ctx context.Context, details order.OrderDetails) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(BuildPrompt(details)), nil)
	if err != nil {
		return "", ports.NewGenerationError(err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ports.NewGenerationError(errEmptyResponse)
	}

	g.logger.DebugContext(ctx, "confirmation generated",
		"model", g.model,
		"elapsed", time.Since(started))
	return text, nil
}

package confirmation_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"intake/internal/adapters/out/confirmation"
	"intake/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type MockContentGenerator struct{ mock.Mock }

func (m *MockContentGenerator) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	args := m.Called(ctx, model, contents, config)
	resp, _ := args.Get(0).(*genai.GenerateContentResponse)
	return resp, args.Error(1)
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func promptOf(contents []*genai.Content) string {
	if len(contents) == 0 || len(contents[0].Parts) == 0 {
		return ""
	}
	return contents[0].Parts[0].Text
}

func TestGeminiGenerator_Generate(t *testing.T) {
	order := details("Ne pas empiler", "jean@example.fr")

	t.Run("returns the model text verbatim", func(t *testing.T) {
		models := new(MockContentGenerator)
		models.On("GenerateContent", mock.Anything, "gemini-2.5-flash",
			mock.MatchedBy(func(c []*genai.Content) bool {
				return promptOf(c) == confirmation.BuildPrompt(order)
			}), mock.Anything).
			Return(textResponse("**Merci Jean !** DK2-AB12-CD34"), nil).Once()

		g := confirmation.NewGeminiGenerator(models, "", time.Second, slog.Default())
		message, err := g.Generate(t.Context(), order)

		require.NoError(t, err)
		assert.Equal(t, "**Merci Jean !** DK2-AB12-CD34", message)
		models.AssertExpectations(t)
	})

	t.Run("wraps API errors", func(t *testing.T) {
		models := new(MockContentGenerator)
		models.On("GenerateContent", mock.Anything, "custom-model", mock.Anything, mock.Anything).
			Return(nil, errors.New("quota exceeded")).Once()

		g := confirmation.NewGeminiGenerator(models, "custom-model", time.Second, slog.Default())
		_, err := g.Generate(t.Context(), order)

		require.ErrorIs(t, err, ports.ErrGenerationFailed)
		assert.Equal(t, "L'assistant IA n'a pas pu générer de confirmation. Cause : quota exceeded", err.Error())
	})

	t.Run("rejects an empty answer", func(t *testing.T) {
		models := new(MockContentGenerator)
		models.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(textResponse("  "), nil).Once()

		g := confirmation.NewGeminiGenerator(models, "", time.Second, slog.Default())
		_, err := g.Generate(t.Context(), order)

		var generationErr *ports.GenerationError
		require.ErrorAs(t, err, &generationErr)
	})

	t.Run("applies the timeout", func(t *testing.T) {
		models := new(MockContentGenerator)
		models.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				<-args.Get(0).(context.Context).Done()
			}).
			Return(nil, context.DeadlineExceeded).Once()

		g := confirmation.NewGeminiGenerator(models, "", 20*time.Millisecond, slog.Default())
		_, err := g.Generate(t.Context(), order)

		require.ErrorIs(t, err, context.DeadlineExceeded)
		require.ErrorIs(t, err, ports.ErrGenerationFailed)
	})
}

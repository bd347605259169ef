package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/adal-azamat/lifesim/pkg/chat"
)

// GeminiService implements LLMService using the Google Gemini API.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *slog.Logger
}

func NewGeminiService(ctx context.Context, apiKey string, modelName string, logger *slog.Logger) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"

	return &GeminiService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (g *GeminiService) InitModel(ctx context.Context, modelName string) error {
	return nil
}

// Close releases the underlying API client.
func (g *GeminiService) Close() error {
	return g.client.Close()
}

// GenerateStory flattens the message array into a single prompt and
// requests a JSON response from Gemini.
func (g *GeminiService) GenerateStory(ctx context.Context, messages []chat.ChatMessage) (string, error) {
	var sb strings.Builder
	for _, msg := range messages {
		switch msg.Role {
		case chat.ChatRoleSystem:
			sb.WriteString(msg.Content)
		case chat.ChatRoleUser:
			sb.WriteString("Игрок: " + msg.Content)
		case chat.ChatRoleAgent:
			sb.WriteString("Рассказчик: " + msg.Content)
		}
		sb.WriteString("\n\n")
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(sb.String()))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response part type from gemini")
	}

	return string(text), nil
}

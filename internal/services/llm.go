package services

import (
	"context"

	"github.com/adal-azamat/lifesim/pkg/chat"
)

// LLMService defines the interface for interacting with a language
// model provider.
type LLMService interface {
	// InitModel initializes the model on startup.
	InitModel(ctx context.Context, modelName string) error

	// GenerateStory produces the raw model output for the given
	// message array. Transport and API failures are returned as
	// errors; callers decide how to recover.
	GenerateStory(ctx context.Context, messages []chat.ChatMessage) (string, error)
}

package services

import (
	"context"
	"sync"

	"github.com/adal-azamat/lifesim/pkg/chat"
)

// MockLLMAPI is a mock implementation of LLMService for testing
type MockLLMAPI struct {
	InitModelFunc     func(ctx context.Context, modelName string) error
	GenerateStoryFunc func(ctx context.Context, messages []chat.ChatMessage) (string, error)

	// Track calls for testing
	InitModelCalls     []string
	GenerateStoryCalls []GenerateStoryCall

	mu sync.Mutex // protects all fields above
}

type GenerateStoryCall struct {
	Messages []chat.ChatMessage
}

// NewMockLLMAPI creates a new mock LLM service
func NewMockLLMAPI() *MockLLMAPI {
	return &MockLLMAPI{
		InitModelCalls:     make([]string, 0),
		GenerateStoryCalls: make([]GenerateStoryCall, 0),
	}
}

// InitModel mocks model initialization
func (m *MockLLMAPI) InitModel(ctx context.Context, modelName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InitModelCalls = append(m.InitModelCalls, modelName)

	if m.InitModelFunc != nil {
		return m.InitModelFunc(ctx, modelName)
	}
	return nil
}

// GenerateStory mocks story generation
func (m *MockLLMAPI) GenerateStory(ctx context.Context, messages []chat.ChatMessage) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GenerateStoryCalls = append(m.GenerateStoryCalls, GenerateStoryCall{
		Messages: messages,
	})

	if m.GenerateStoryFunc != nil {
		return m.GenerateStoryFunc(ctx, messages)
	}

	// Default behavior - a well-formed story beat
	return `{"consequence":"Вы сделали выбор.","nextEvent":"Наступает новый день."}`, nil
}

// SetGenerateStoryError configures the mock to fail story generation
func (m *MockLLMAPI) SetGenerateStoryError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GenerateStoryFunc = func(ctx context.Context, messages []chat.ChatMessage) (string, error) {
		return "", err
	}
}

// Reset clears all call tracking
func (m *MockLLMAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InitModelCalls = make([]string, 0)
	m.GenerateStoryCalls = make([]GenerateStoryCall, 0)
	m.InitModelFunc = nil
	m.GenerateStoryFunc = nil
}

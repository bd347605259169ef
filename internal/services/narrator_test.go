package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adal-azamat/lifesim/pkg/chat"
	"github.com/adal-azamat/lifesim/pkg/life"
	"github.com/adal-azamat/lifesim/pkg/state"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))
}

func TestNarrator_NextBeat(t *testing.T) {
	gs := state.New(10, life.LocSchool)

	tests := []struct {
		name         string
		mockSetup    func(*MockLLMAPI)
		expected     *StoryBeat
		wantFallback bool
	}{
		{
			name: "well-formed response",
			mockSetup: func(m *MockLLMAPI) {
				m.GenerateStoryFunc = func(ctx context.Context, messages []chat.ChatMessage) (string, error) {
					return `{"consequence":"Учитель похвалил вас.","nextEvent":"Дома вас ждёт ужин.","stats_change":{"hardwork_professionalism":5}}`, nil
				}
			},
			expected: &StoryBeat{
				Consequence: "Учитель похвалил вас.",
				NextEvent:   "Дома вас ждёт ужин.",
				StatsChange: map[string]int{"hardwork_professionalism": 5},
			},
		},
		{
			name: "response wrapped in markdown fences",
			mockSetup: func(m *MockLLMAPI) {
				m.GenerateStoryFunc = func(ctx context.Context, messages []chat.ChatMessage) (string, error) {
					return "```json\n{\"consequence\":\"Ок.\",\"nextEvent\":\"Дальше.\"}\n```", nil
				}
			},
			expected: &StoryBeat{Consequence: "Ок.", NextEvent: "Дальше."},
		},
		{
			name: "transport failure falls back",
			mockSetup: func(m *MockLLMAPI) {
				m.SetGenerateStoryError(errors.New("connection refused"))
			},
			wantFallback: true,
		},
		{
			name: "malformed JSON falls back",
			mockSetup: func(m *MockLLMAPI) {
				m.GenerateStoryFunc = func(ctx context.Context, messages []chat.ChatMessage) (string, error) {
					return "Извините, я не могу ответить в формате JSON.", nil
				}
			},
			wantFallback: true,
		},
		{
			name: "empty JSON object falls back",
			mockSetup: func(m *MockLLMAPI) {
				m.GenerateStoryFunc = func(ctx context.Context, messages []chat.ChatMessage) (string, error) {
					return "{}", nil
				}
			},
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLLM := NewMockLLMAPI()
			tt.mockSetup(mockLLM)

			narrator := NewNarrator(mockLLM, DefaultGatewayTimeout, testLogger())
			beat := narrator.NextBeat(context.Background(), gs, "Ответить у доски", life.LocHome)

			require.NotNil(t, beat, "NextBeat must never return nil")
			if tt.wantFallback {
				assert.Equal(t, FallbackConsequence, beat.Consequence)
				assert.Equal(t, FallbackNextEvent, beat.NextEvent)
				assert.Empty(t, beat.StatsChange)
			} else {
				assert.Equal(t, tt.expected, beat)
			}
		})
	}
}

func TestNarrator_Timeout(t *testing.T) {
	mockLLM := NewMockLLMAPI()
	mockLLM.GenerateStoryFunc = func(ctx context.Context, messages []chat.ChatMessage) (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(5 * time.Second):
			return `{"consequence":"x","nextEvent":"y"}`, nil
		}
	}

	narrator := NewNarrator(mockLLM, 50*time.Millisecond, testLogger())

	start := time.Now()
	beat := narrator.NextBeat(context.Background(), state.New(0, life.LocHomeWithParents), "Закричать", life.LocHomeWithParents)

	assert.Less(t, time.Since(start), 2*time.Second, "timeout should cut the call short")
	assert.Equal(t, FallbackConsequence, beat.Consequence)
}

func TestNarrator_PromptContents(t *testing.T) {
	mockLLM := NewMockLLMAPI()
	narrator := NewNarrator(mockLLM, DefaultGatewayTimeout, testLogger())

	gs := state.New(7, life.LocSchool)
	narrator.NextBeat(context.Background(), gs, "Подраться", life.LocOutside)

	require.Len(t, mockLLM.GenerateStoryCalls, 1)
	messages := mockLLM.GenerateStoryCalls[0].Messages
	require.NotEmpty(t, messages)
	assert.Equal(t, chat.ChatRoleSystem, messages[0].Role)
	assert.Contains(t, messages[0].Content, life.LocOutside)
	assert.Equal(t, "Подраться", messages[len(messages)-1].Content)
}

func TestParseStoryBeat(t *testing.T) {
	beat, err := parseStoryBeat(`  {"consequence":"a","nextEvent":"b"}  `)
	require.NoError(t, err)
	assert.Equal(t, "a", beat.Consequence)

	_, err = parseStoryBeat("not json at all")
	assert.Error(t, err)
}

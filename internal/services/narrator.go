package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/adal-azamat/lifesim/pkg/prompts"
	"github.com/adal-azamat/lifesim/pkg/state"
)

// DefaultGatewayTimeout bounds one narrative generation call.
const DefaultGatewayTimeout = 30 * time.Second

// Fallback narrative used when the model call fails or returns
// unparsable content. The turn still completes with this beat.
const (
	FallbackConsequence = "Вы сделали свой выбор, но туман будущего скрывает последствия (Ошибка ИИ)."
	FallbackNextEvent   = "Жизнь продолжается. Что вы будете делать дальше?"
)

// StoryBeat is the structured result of one narrative generation:
// the consequence of the player's choice, the next event, and optional
// stat deltas proposed by the model. StatsChange is untrusted input;
// the stat reconciler validates keys and bounds before it touches state.
type StoryBeat struct {
	Consequence string         `json:"consequence"`
	NextEvent   string         `json:"nextEvent"`
	StatsChange map[string]int `json:"stats_change,omitempty"`
}

// Narrator wraps an LLMService as the narrative gateway for the turn
// pipeline. It builds the prompt, enforces a hard timeout, and parses
// the model's JSON. Any failure is substituted with the fixed fallback
// beat so a turn always completes; NextBeat never returns an error.
type Narrator struct {
	llm     LLMService
	timeout time.Duration
	logger  *slog.Logger
}

func NewNarrator(llm LLMService, timeout time.Duration, logger *slog.Logger) *Narrator {
	if timeout <= 0 {
		timeout = DefaultGatewayTimeout
	}
	return &Narrator{
		llm:     llm,
		timeout: timeout,
		logger:  logger,
	}
}

// NextBeat generates the story beat for one turn.
func (n *Narrator) NextBeat(ctx context.Context, gs *state.GameState, userChoice, nextLocation string) *StoryBeat {
	messages, err := prompts.BuildMessages(gs, userChoice, nextLocation)
	if err != nil {
		n.logger.Error("Failed to build prompt", "error", err)
		return fallbackBeat()
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	raw, err := n.llm.GenerateStory(ctx, messages)
	if err != nil {
		n.logger.Error("Narrative generation failed, using fallback", "error", err)
		return fallbackBeat()
	}

	beat, err := parseStoryBeat(raw)
	if err != nil {
		n.logger.Error("Failed to parse narrative response, using fallback",
			"error", err, "response_length", len(raw))
		return fallbackBeat()
	}

	return beat
}

func fallbackBeat() *StoryBeat {
	return &StoryBeat{
		Consequence: FallbackConsequence,
		NextEvent:   FallbackNextEvent,
	}
}

// parseStoryBeat decodes a model response into a StoryBeat. Markdown
// code fences around the JSON object are tolerated.
func parseStoryBeat(raw string) (*StoryBeat, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var beat StoryBeat
	if err := json.Unmarshal([]byte(cleaned), &beat); err != nil {
		return nil, err
	}
	if beat.Consequence == "" && beat.NextEvent == "" {
		return nil, errEmptyBeat
	}
	return &beat, nil
}

var errEmptyBeat = errors.New("story beat has neither consequence nor next event")

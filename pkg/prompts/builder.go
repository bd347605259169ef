package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adal-azamat/lifesim/pkg/chat"
	"github.com/adal-azamat/lifesim/pkg/state"
)

// Builder constructs the message array for one narrative generation
// call using a fluent interface. It separates prompt building from the
// turn pipeline in the handler.
type Builder struct {
	gs           *state.GameState
	userChoice   string
	nextLocation string
	historyLimit int
	messages     []chat.ChatMessage
}

// New creates a new prompt builder with default settings.
func New() *Builder {
	return &Builder{
		historyLimit: 10, // default history window
		messages:     make([]chat.ChatMessage, 0),
	}
}

// WithGameState sets the current game state.
func (b *Builder) WithGameState(gs *state.GameState) *Builder {
	b.gs = gs
	return b
}

// WithUserChoice sets the player's free-text choice for this turn.
func (b *Builder) WithUserChoice(choice string) *Builder {
	b.userChoice = choice
	return b
}

// WithNextLocation sets the already-selected location of the next event.
func (b *Builder) WithNextLocation(location string) *Builder {
	b.nextLocation = location
	return b
}

// WithHistoryLimit sets the history window size.
func (b *Builder) WithHistoryLimit(limit int) *Builder {
	b.historyLimit = limit
	return b
}

// Build constructs the final message array for LLM consumption.
func (b *Builder) Build() ([]chat.ChatMessage, error) {
	if b.gs == nil {
		return nil, fmt.Errorf("gamestate is required")
	}
	if b.userChoice == "" {
		return nil, fmt.Errorf("user choice is required")
	}

	b.messages = make([]chat.ChatMessage, 0, 3+b.historyLimit)

	if err := b.addSystemPrompt(); err != nil {
		return nil, fmt.Errorf("error building system prompt: %w", err)
	}
	b.addHistory()
	b.addUserMessage()

	return b.messages, nil
}

// addSystemPrompt combines narration rules, player status, and the
// response format contract into one system message.
func (b *Builder) addSystemPrompt() error {
	statsJSON, err := json.Marshal(b.gs.Player.Stats)
	if err != nil {
		return fmt.Errorf("error marshaling stats: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(SystemPrompt)
	sb.WriteString("\n\nТекущее состояние игрока:\n")
	sb.WriteString(fmt.Sprintf("- Возраст: %d\n", b.gs.Player.Age))
	sb.WriteString(fmt.Sprintf("- Текущая локация: %s\n", b.gs.World.Location))
	sb.WriteString(fmt.Sprintf("- Время суток: %s\n", b.gs.World.Time))
	sb.WriteString(fmt.Sprintf("- Характеристики: %s\n", statsJSON))
	if b.nextLocation != "" {
		sb.WriteString(fmt.Sprintf("\nЛокация следующего события: %s\n", b.nextLocation))
	}
	sb.WriteString("\n" + ResponseFormatPrompt)

	b.messages = append(b.messages, chat.ChatMessage{
		Role:    chat.ChatRoleSystem,
		Content: sb.String(),
	})
	return nil
}

// addHistory adds the windowed session history.
func (b *Builder) addHistory() {
	h := b.gs.History
	if len(h) == 0 {
		return
	}
	if len(h) > b.historyLimit {
		h = h[len(h)-b.historyLimit:]
	}
	b.messages = append(b.messages, h...)
}

// addUserMessage adds the current choice as the final user message.
func (b *Builder) addUserMessage() {
	b.messages = append(b.messages, chat.ChatMessage{
		Role:    chat.ChatRoleUser,
		Content: b.userChoice,
	})
}

// BuildMessages is a convenience function for the common case.
func BuildMessages(gs *state.GameState, userChoice, nextLocation string) ([]chat.ChatMessage, error) {
	return New().
		WithGameState(gs).
		WithUserChoice(userChoice).
		WithNextLocation(nextLocation).
		Build()
}

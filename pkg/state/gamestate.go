package state

import (
	"encoding/json"

	"github.com/adal-azamat/lifesim/pkg/chat"
	"github.com/adal-azamat/lifesim/pkg/stats"
)

// Default world time. The world clock is carried in state and surfaced
// to the model, but the turn pipeline does not drive it.
const DefaultTime = "day"

// PlayerState tracks age progression and stats for one session.
type PlayerState struct {
	Age               int         `json:"age"`
	EventsThisYear    int         `json:"events_this_year"`
	MaxEventsThisYear int         `json:"max_events_this_year"`
	Stats             stats.Sheet `json:"stats"`
}

// WorldState is the player's surroundings for the current event.
type WorldState struct {
	Location string `json:"location"`
	Time     string `json:"time"`
}

// GameState is the full serialized state of a life simulation session.
// History is append-only: every turn adds exactly one user entry and
// one assistant entry (or a terminal entry on game over).
type GameState struct {
	History []chat.ChatMessage `json:"history"`
	Player  PlayerState        `json:"player_state"`
	World   WorldState         `json:"world_state"`
}

// New returns the initial state for a fresh session.
func New(age int, location string) *GameState {
	return &GameState{
		History: make([]chat.ChatMessage, 0),
		Player: PlayerState{
			Age:   age,
			Stats: stats.Initial(),
		},
		World: WorldState{
			Location: location,
			Time:     DefaultTime,
		},
	}
}

// Empty returns the empty-shaped state used to recover a session whose
// stored state blob failed to parse.
func Empty() *GameState {
	return &GameState{
		History: make([]chat.ChatMessage, 0),
	}
}

// Parse decodes a stored state blob. On any decode failure it returns
// the empty-shaped state and false, so a corrupt blob degrades to a
// fresh default state instead of aborting the turn.
func Parse(raw []byte) (*GameState, bool) {
	if len(raw) == 0 {
		return Empty(), false
	}
	var gs GameState
	if err := json.Unmarshal(raw, &gs); err != nil {
		return Empty(), false
	}
	return &gs, true
}

// Marshal serializes the state for storage.
func (gs *GameState) Marshal() ([]byte, error) {
	return json.Marshal(gs)
}

// AppendTurn records one completed turn in the history.
func (gs *GameState) AppendTurn(userChoice, narratorResponse string) {
	gs.History = append(gs.History,
		chat.ChatMessage{Role: chat.ChatRoleUser, Content: userChoice},
		chat.ChatMessage{Role: chat.ChatRoleAgent, Content: narratorResponse},
	)
}

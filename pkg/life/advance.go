package life

import (
	"fmt"

	"github.com/adal-azamat/lifesim/pkg/chat"
	"github.com/adal-azamat/lifesim/pkg/state"
	"github.com/adal-azamat/lifesim/pkg/stats"
)

// EnsureInitialized backfills fields that older or recovered session
// states may be missing, so the turn pipeline can run on defaults.
func EnsureInitialized(d *Dice, gs *state.GameState) {
	if gs.History == nil {
		gs.History = make([]chat.ChatMessage, 0)
	}
	if gs.Player.MaxEventsThisYear <= 0 {
		gs.Player.MaxEventsThisYear = d.YearQuota()
	}
	if gs.Player.Stats == nil {
		gs.Player.Stats = make(stats.Sheet)
	}
	if gs.World.Time == "" {
		gs.World.Time = state.DefaultTime
	}
}

// Advance counts one event toward the current year. When the year's
// quota is reached it increments age, resets the counter, redraws the
// quota for the next year, and returns an age marker for display.
// Runs exactly once per turn, before the next location is selected.
func Advance(d *Dice, p *state.PlayerState) (ageMarker string) {
	p.EventsThisYear++
	if p.EventsThisYear >= p.MaxEventsThisYear {
		p.Age++
		p.EventsThisYear = 0
		p.MaxEventsThisYear = d.YearQuota()
		return fmt.Sprintf("%d год", p.Age)
	}
	return ""
}

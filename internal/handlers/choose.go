package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/adal-azamat/lifesim/internal/services"
	"github.com/adal-azamat/lifesim/internal/storage"
	"github.com/adal-azamat/lifesim/pkg/life"
	"github.com/adal-azamat/lifesim/pkg/state"
	"github.com/adal-azamat/lifesim/pkg/stats"
)

type ChooseRequest struct {
	SessionID  uuid.UUID `json:"session_id"`
	UserChoice string    `json:"user_choice"`
}

func (cr *ChooseRequest) Validate() error {
	if cr.SessionID == uuid.Nil {
		return errors.New("session_id is required")
	}
	if strings.TrimSpace(cr.UserChoice) == "" {
		return errors.New("user_choice is required")
	}
	return nil
}

type ChooseResponse struct {
	Response    string      `json:"response"`
	Consequence string      `json:"consequence"`
	NextEvent   string      `json:"nextEvent"`
	Stats       stats.Sheet `json:"stats"`
	AgeMarker   *string     `json:"ageMarker"`
	GameOver    bool        `json:"gameOver,omitempty"`
}

// ChooseHandler runs one full turn: advance the age counters, pick the
// next location, generate the story beat, reconcile stat deltas, check
// for game over, and persist the updated session.
type ChooseHandler struct {
	dice     *life.Dice
	store    storage.SessionStore
	audit    storage.AuditLog
	narrator *services.Narrator
	logger   *slog.Logger
}

func NewChooseHandler(dice *life.Dice, store storage.SessionStore, audit storage.AuditLog, narrator *services.Narrator, logger *slog.Logger) *ChooseHandler {
	return &ChooseHandler{
		dice:     dice,
		store:    store,
		audit:    audit,
		narrator: narrator,
		logger:   logger,
	}
}

// ServeHTTP handles POST /choose.
func (h *ChooseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ChooseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid choose request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body. Expected JSON with 'session_id' and 'user_choice' fields.")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	session, err := h.store.LoadSession(r.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Сессия не найдена")
			return
		}
		h.logger.Error("Failed to load session", "session_id", req.SessionID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Ошибка обработки выбора")
		return
	}

	gs, ok := state.Parse(session.State)
	if !ok {
		// Corrupt or legacy blob: proceed on an empty-shaped state
		// rather than aborting the session.
		h.logger.Warn("Stored state failed to parse, reinitializing", "session_id", session.ID)
	}
	life.EnsureInitialized(h.dice, gs)

	// Age progression runs exactly once per turn, before the next
	// location is selected.
	var ageMarker *string
	if marker := life.Advance(h.dice, &gs.Player); marker != "" {
		ageMarker = &marker
	}

	nextLocation := h.dice.Location(gs.Player.Age)

	beat := h.narrator.NextBeat(r.Context(), gs, req.UserChoice, nextLocation)
	fullResponse := beat.Consequence + "\n\n" + beat.NextEvent

	gs.World.Location = nextLocation

	if skipped := gs.Player.Stats.Apply(beat.StatsChange); len(skipped) > 0 {
		h.logger.Warn("Ignoring unknown stat keys from model",
			"session_id", session.ID, "keys", skipped)
	}

	gameOver, reason := stats.Evaluate(gs.Player.Stats)

	response := fullResponse
	nextEvent := beat.NextEvent
	if gameOver {
		response = beat.Consequence + "\n\n" + reason
		nextEvent = reason
	}
	gs.AppendTurn(req.UserChoice, response)

	raw, err := gs.Marshal()
	if err != nil {
		h.logger.Error("Failed to marshal state", "session_id", session.ID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Ошибка обработки выбора")
		return
	}
	session.State = raw
	session.Story += "\n\n> " + req.UserChoice + "\n\n" + response

	if err := h.store.SaveSession(r.Context(), session); err != nil {
		h.logger.Error("Failed to save session", "session_id", session.ID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Ошибка обработки выбора")
		return
	}

	// Audit failures are logged but do not fail the turn.
	if err := h.audit.AppendChoice(r.Context(), &storage.ChoiceRecord{
		SessionID:  session.ID,
		UserChoice: req.UserChoice,
		AIResponse: response,
	}); err != nil {
		h.logger.Error("Failed to append audit record", "session_id", session.ID, "error", err)
	}

	h.logger.Info("Turn processed",
		"session_id", session.ID,
		"age", gs.Player.Age,
		"location", nextLocation,
		"game_over", gameOver)

	writeJSON(w, h.logger, http.StatusOK, ChooseResponse{
		Response:    response,
		Consequence: beat.Consequence,
		NextEvent:   nextEvent,
		Stats:       gs.Player.Stats,
		AgeMarker:   ageMarker,
		GameOver:    gameOver,
	})
}

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/adal-azamat/lifesim/internal/storage"
	"github.com/adal-azamat/lifesim/pkg/life"
	"github.com/adal-azamat/lifesim/pkg/state"
)

// DefaultUsername is used when the start request carries no name.
const DefaultUsername = "Guest"

type StartRequest struct {
	Username string `json:"username"`
	Age      int    `json:"age"`
}

type StartResponse struct {
	SessionID uuid.UUID `json:"sessionId"`
	Story     string    `json:"story"`
}

// StartHandler creates a new user and game session.
type StartHandler struct {
	dice   *life.Dice
	store  storage.SessionStore
	audit  storage.AuditLog
	logger *slog.Logger
}

func NewStartHandler(dice *life.Dice, store storage.SessionStore, audit storage.AuditLog, logger *slog.Logger) *StartHandler {
	return &StartHandler{
		dice:   dice,
		store:  store,
		audit:  audit,
		logger: logger,
	}
}

// ServeHTTP handles POST /start.
func (h *StartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid start request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body. Expected JSON with 'username' and 'age' fields.")
		return
	}

	if req.Age < 0 {
		writeError(w, h.logger, http.StatusBadRequest, "Age must be a non-negative integer.")
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = DefaultUsername
	} else {
		username = cases.Title(language.Und, cases.NoLower).String(username)
	}

	userID, err := h.audit.CreateUser(r.Context(), username)
	if err != nil {
		h.logger.Error("Failed to create user", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Ошибка при создании сессии")
		return
	}

	startLocation := h.dice.Location(req.Age)
	startStory := life.StartStory(username, req.Age, startLocation)

	gs := state.New(req.Age, startLocation)
	life.EnsureInitialized(h.dice, gs)

	raw, err := gs.Marshal()
	if err != nil {
		h.logger.Error("Failed to marshal initial state", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Ошибка при создании сессии")
		return
	}

	session := &storage.Session{
		ID:       uuid.New(),
		UserID:   userID,
		Username: username,
		Story:    startStory,
		State:    raw,
	}

	if err := h.store.CreateSession(r.Context(), session); err != nil {
		h.logger.Error("Failed to create session", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Ошибка при создании сессии")
		return
	}

	h.logger.Info("Session created",
		"session_id", session.ID,
		"username", username,
		"age", req.Age,
		"location", startLocation)

	writeJSON(w, h.logger, http.StatusOK, StartResponse{
		SessionID: session.ID,
		Story:     startStory,
	})
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/adal-azamat/lifesim/internal/storage"
)

type SessionResponse struct {
	Session *storage.Session       `json:"session"`
	Choices []storage.ChoiceRecord `json:"choices"`
}

// SessionHandler returns a stored session record with its audit log.
type SessionHandler struct {
	store  storage.SessionStore
	audit  storage.AuditLog
	logger *slog.Logger
}

func NewSessionHandler(store storage.SessionStore, audit storage.AuditLog, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		store:  store,
		audit:  audit,
		logger: logger,
	}
}

// ServeHTTP handles GET /session/{id}.
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.logger.Warn("Invalid session ID", "id", idStr, "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	session, err := h.store.LoadSession(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Сессия не найдена")
			return
		}
		h.logger.Error("Failed to load session", "session_id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Ошибка получения данных сессии")
		return
	}

	choices, err := h.audit.ListChoices(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to list choices", "session_id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Ошибка получения данных сессии")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, SessionResponse{
		Session: session,
		Choices: choices,
	})
}

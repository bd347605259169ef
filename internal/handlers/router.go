package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/adal-azamat/lifesim/internal/middleware"
	"github.com/adal-azamat/lifesim/internal/services"
	"github.com/adal-azamat/lifesim/internal/storage"
	"github.com/adal-azamat/lifesim/pkg/life"
)

// NewRouter wires the API routes.
func NewRouter(dice *life.Dice, store storage.SessionStore, audit storage.AuditLog, narrator *services.Narrator, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(logger))

	r.Method(http.MethodGet, "/health", NewHealthHandler(store, logger))
	r.Method(http.MethodPost, "/start", NewStartHandler(dice, store, audit, logger))
	r.Method(http.MethodPost, "/choose", NewChooseHandler(dice, store, audit, narrator, logger))
	r.Method(http.MethodGet, "/session/{id}", NewSessionHandler(store, audit, logger))

	return r
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler(t *testing.T) {
	env := newTestEnv(t, 1)
	sessionID := startSession(t, env, "Ann", 0)

	stubBeat(env, `{"consequence":"Ок.","nextEvent":"Дальше."}`)
	rec := env.do(t, http.MethodPost, "/choose", ChooseRequest{SessionID: sessionID, UserChoice: "Закричать"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/session/"+sessionID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotNil(t, resp.Session)
	assert.Equal(t, sessionID, resp.Session.ID)
	assert.Equal(t, "Ann", resp.Session.Username)
	assert.Contains(t, resp.Session.Story, "Закричать")

	require.Len(t, resp.Choices, 1)
	assert.Equal(t, "Закричать", resp.Choices[0].UserChoice)
}

func TestSessionHandler_NotFound(t *testing.T) {
	env := newTestEnv(t, 1)

	rec := env.do(t, http.MethodGet, "/session/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "Сессия не найдена", errResp.Error)
}

func TestSessionHandler_InvalidID(t *testing.T) {
	env := newTestEnv(t, 1)

	rec := env.do(t, http.MethodGet, "/session/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		env := newTestEnv(t, 1)
		rec := env.do(t, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "healthy", resp.Components["storage"])
	})

	t.Run("degraded", func(t *testing.T) {
		env := newTestEnv(t, 1)
		env.store.PingError = errors.New("redis down")

		rec := env.do(t, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "degraded", resp.Status)
	})
}

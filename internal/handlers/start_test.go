package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adal-azamat/lifesim/internal/services"
	"github.com/adal-azamat/lifesim/internal/storage"
	"github.com/adal-azamat/lifesim/pkg/life"
	"github.com/adal-azamat/lifesim/pkg/state"
	"github.com/adal-azamat/lifesim/pkg/stats"
)

type testEnv struct {
	router  http.Handler
	store   *storage.MockSessionStore
	audit   *storage.MockAuditLog
	mockLLM *services.MockLLMAPI
}

func newTestEnv(t *testing.T, seed uint64) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))

	store := storage.NewMockSessionStore()
	audit := storage.NewMockAuditLog()
	mockLLM := services.NewMockLLMAPI()
	narrator := services.NewNarrator(mockLLM, services.DefaultGatewayTimeout, logger)
	dice := life.NewSeededDice(seed)

	return &testEnv{
		router:  NewRouter(dice, store, audit, narrator, logger),
		store:   store,
		audit:   audit,
		mockLLM: mockLLM,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBody.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &reqBody)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestStartHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "newborn start",
			body:           StartRequest{Username: "Ann", Age: 0},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "older start",
			body:           StartRequest{Username: "Азамат", Age: 16},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing username defaults to Guest",
			body:           StartRequest{Age: 0},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "negative age",
			body:           StartRequest{Username: "Ann", Age: -1},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Age must be a non-negative integer.",
		},
		{
			name:           "invalid JSON body",
			body:           "not json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body. Expected JSON with 'username' and 'age' fields.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, 1)
			rec := env.do(t, http.MethodPost, "/start", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedError != "" {
				var errResp ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedError, errResp.Error)
				return
			}

			var resp StartResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEqual(t, uuid.Nil, resp.SessionID)
			assert.NotEmpty(t, resp.Story)
		})
	}
}

func TestStartHandler_NewbornStoryAndState(t *testing.T) {
	env := newTestEnv(t, 1)
	rec := env.do(t, http.MethodPost, "/start", StartRequest{Username: "Ann", Age: 0})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Story, "0 лет")

	stored, err := env.store.LoadSession(t.Context(), resp.SessionID)
	require.NoError(t, err)

	gs, ok := state.Parse(stored.State)
	require.True(t, ok)
	assert.Equal(t, 0, gs.Player.Age)
	assert.Equal(t, life.LocHomeWithParents, gs.World.Location)
	assert.Equal(t, stats.Initial(), gs.Player.Stats)
	assert.Contains(t, []int{2, 3}, gs.Player.MaxEventsThisYear)

	// User recorded in the audit log
	assert.Equal(t, []string{"Ann"}, env.audit.Users)
}

func TestStartHandler_RequestedAgeAndLocation(t *testing.T) {
	env := newTestEnv(t, 1)
	rec := env.do(t, http.MethodPost, "/start", StartRequest{Username: "Ann", Age: 20})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Story, "20 лет")

	stored, err := env.store.LoadSession(t.Context(), resp.SessionID)
	require.NoError(t, err)
	gs, ok := state.Parse(stored.State)
	require.True(t, ok)
	assert.Equal(t, 20, gs.Player.Age)
	assert.Contains(t, []string{life.LocUniversity, life.LocWork, life.LocHomePersonal}, gs.World.Location)
}

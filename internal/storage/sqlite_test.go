package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAudit(t *testing.T) *SQLiteAudit {
	t.Helper()

	audit, err := OpenSQLiteAudit(":memory:", testLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = audit.Close()
	})
	return audit
}

func TestSQLiteAudit_CreateUser(t *testing.T) {
	audit := newTestAudit(t)
	ctx := context.Background()

	id1, err := audit.CreateUser(ctx, "Ann")
	require.NoError(t, err)
	id2, err := audit.CreateUser(ctx, "Азамат")
	require.NoError(t, err)

	assert.Greater(t, id1, int64(0))
	assert.Greater(t, id2, id1)
}

func TestSQLiteAudit_AppendAndListChoices(t *testing.T) {
	audit := newTestAudit(t)
	ctx := context.Background()

	sessionID := uuid.New()
	otherID := uuid.New()

	first := &ChoiceRecord{SessionID: sessionID, UserChoice: "Закричать", AIResponse: "Родители пришли."}
	require.NoError(t, audit.AppendChoice(ctx, first))
	assert.Greater(t, first.ID, int64(0))

	require.NoError(t, audit.AppendChoice(ctx, &ChoiceRecord{
		SessionID: sessionID, UserChoice: "Уснуть", AIResponse: "Вы спите.",
	}))
	require.NoError(t, audit.AppendChoice(ctx, &ChoiceRecord{
		SessionID: otherID, UserChoice: "Другое", AIResponse: "Другой ответ.",
	}))

	choices, err := audit.ListChoices(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, choices, 2)

	// Insertion order is preserved.
	assert.Equal(t, "Закричать", choices[0].UserChoice)
	assert.Equal(t, "Уснуть", choices[1].UserChoice)
	assert.Equal(t, sessionID, choices[0].SessionID)
	assert.False(t, choices[0].CreatedAt.IsZero())
	assert.False(t, choices[1].CreatedAt.IsZero())
}

func TestSQLiteAudit_ChoiceTimestamps(t *testing.T) {
	audit := newTestAudit(t)
	ctx := context.Background()

	sessionID := uuid.New()
	before := time.Now().UTC().Add(-time.Minute)

	require.NoError(t, audit.AppendChoice(ctx, &ChoiceRecord{
		SessionID: sessionID, UserChoice: "Пойти в школу", AIResponse: "Вы пошли в школу.",
	}))

	choices, err := audit.ListChoices(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, choices, 1)

	require.False(t, choices[0].CreatedAt.IsZero())
	assert.True(t, choices[0].CreatedAt.After(before),
		"created_at %v should be recent", choices[0].CreatedAt)
	assert.True(t, choices[0].CreatedAt.Before(time.Now().UTC().Add(time.Minute)))
}

func TestParseAuditTime(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{
			name: "rfc3339",
			raw:  "2026-08-31T13:12:10Z",
			want: time.Date(2026, 8, 31, 13, 12, 10, 0, time.UTC),
		},
		{
			name: "space separated",
			raw:  "2026-08-31 13:12:10",
			want: time.Date(2026, 8, 31, 13, 12, 10, 0, time.UTC),
		},
		{
			name:    "garbage",
			raw:     "not a timestamp",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := parseAuditTime(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(ts), "got %v, want %v", ts, tt.want)
		})
	}
}

func TestSQLiteAudit_ListChoicesEmpty(t *testing.T) {
	audit := newTestAudit(t)

	choices, err := audit.ListChoices(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, choices)
}

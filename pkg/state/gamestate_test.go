package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adal-azamat/lifesim/pkg/chat"
	"github.com/adal-azamat/lifesim/pkg/stats"
)

func TestNew(t *testing.T) {
	gs := New(5, "Детский сад")

	assert.Equal(t, 5, gs.Player.Age)
	assert.Equal(t, 0, gs.Player.EventsThisYear)
	assert.Equal(t, stats.Initial(), gs.Player.Stats)
	assert.Equal(t, "Детский сад", gs.World.Location)
	assert.Equal(t, DefaultTime, gs.World.Time)
	assert.NotNil(t, gs.History)
	assert.Empty(t, gs.History)
}

func TestParse_RoundTrip(t *testing.T) {
	gs := New(10, "Школа")
	gs.AppendTurn("Сделать домашнее задание", "Вы справились с заданием.")

	data, err := gs.Marshal()
	require.NoError(t, err)

	parsed, ok := Parse(data)
	require.True(t, ok)
	assert.Equal(t, gs, parsed)
}

func TestParse_MalformedBlob(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty", nil},
		{"not JSON", []byte("{{{ definitely not json")},
		{"wrong shape", []byte(`"just a string"`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs, ok := Parse(tt.raw)
			assert.False(t, ok)
			require.NotNil(t, gs)
			assert.NotNil(t, gs.History)
			assert.Equal(t, 0, gs.Player.Age)
		})
	}
}

func TestAppendTurn(t *testing.T) {
	gs := New(0, "Дома (с родителями)")

	gs.AppendTurn("Закричать", "Родители подошли к кроватке.")

	require.Len(t, gs.History, 2)
	assert.Equal(t, chat.ChatMessage{Role: chat.ChatRoleUser, Content: "Закричать"}, gs.History[0])
	assert.Equal(t, chat.ChatRoleAgent, gs.History[1].Role)

	gs.AppendTurn("Уснуть", "Вы сладко спите.")
	assert.Len(t, gs.History, 4)
}

package buzzin_test

import (
	"testing"

	"github.com/guslan/buzzin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels(t *testing.T) {
	r, err := buzzin.NewRegistry([]string{"Ann", "Bob"}, "Max")
	require.NoError(t, err)

	tests := []struct {
		lang     string
		state    buzzin.State
		expected string
	}{
		{"en", buzzin.ConfiguringParticipant{Slot: 1}, "Choose a device for Bob"},
		{"en", buzzin.ConfiguringModerator{}, "Choose a device for the host, Max"},
		{"en", buzzin.InPlay{}, "Game in progress"},
		{"en", buzzin.Answering{Slot: 0}, "Ann is answering"},
		{"ru", buzzin.ConfiguringParticipant{Slot: 0}, "Выберите устройство для: Ann"},
		{"ru", buzzin.ConfiguringModerator{}, "Выберите устройство для ведущего: Max"},
		{"ru", buzzin.InPlay{}, "Игра идет"},
		{"ru", buzzin.Answering{Slot: 1}, "Отвечает Bob"},
		// unknown languages fall back to English
		{"not a language", buzzin.InPlay{}, "Game in progress"},
		// out of range slots have no label
		{"en", buzzin.Answering{Slot: 5}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, buzzin.NewLabels(tt.lang).Describe(tt.state, r))
		})
	}
}

func TestDefaultNames(t *testing.T) {
	en := buzzin.NewLabels("en")
	assert.Equal(t, "Player 1", en.PlayerName(0))
	assert.Equal(t, "Host", en.ModeratorName())

	ru := buzzin.NewLabels("ru")
	assert.Equal(t, "Игрок 2", ru.PlayerName(1))
	assert.Equal(t, "Ведущий", ru.ModeratorName())
}

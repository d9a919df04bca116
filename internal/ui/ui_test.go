package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lee/internal/assistant"
	"lee/internal/geo"
	"lee/internal/notes"
	"lee/internal/weather"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	store := notes.NewStore(filepath.Join(t.TempDir(), "notes.txt"))
	d := assistant.New(assistant.Config{}, store, geo.NewResolver(), weather.NewClient(weather.Config{}), nil)

	m := New(Options{Dispatcher: d, Notes: store}).(model)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(model)
}

func TestTypedTurnRendersBothSides(t *testing.T) {
	m := newTestModel(t)

	m.textarea.SetValue("saat kaç")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)

	joined := ""
	for _, line := range m.transcript {
		joined += line + "\n"
	}
	assert.Contains(t, joined, "Sen:")
	assert.Contains(t, joined, "Lee:")
	assert.Contains(t, joined, "Şu an saat")
}

func TestExitSchedulesQuit(t *testing.T) {
	m := newTestModel(t)

	m.textarea.SetValue("kapat")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)

	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestHeardNothingYieldsApology(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(heardMsg{text: ""})
	m = next.(model)

	last := ""
	for _, line := range m.transcript {
		if line != "" {
			last = line
		}
	}
	assert.Contains(t, last, assistant.ReplyDidNotCatch)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "kısa", truncate("kısa", 10))
	assert.Equal(t, "uzun bir…", truncate("uzun bir not satırı", 9))
}

// Package ui renders the chat window: a viewport transcript, a text
// input, a notes side panel and a live clock. All shared state lives
// in the model and is only touched from the Update loop; everything
// blocking runs as a tea.Cmd and comes back as a message.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"lee/internal/assistant"
	"lee/internal/ipc"
)

// Listener performs one microphone capture turn.
type Listener interface {
	Listen(ctx context.Context) (string, error)
}

// Speaker voices reply text.
type Speaker interface {
	Say(ctx context.Context, text string) error
	ToggleVoice() string
}

// NotesReader feeds the side panel.
type NotesReader interface {
	LastN(n int) ([]string, error)
}

type Options struct {
	Dispatcher *assistant.Dispatcher
	Session    *assistant.Session
	Notes      NotesReader
	Listener   Listener // nil disables the microphone
	Speaker    Speaker  // nil disables speech output
	Ctrl       <-chan ipc.ControlMessage
	NoteCount  int
}

type model struct {
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	opts Options

	transcript []string
	noteLines  []string

	listening bool
	busy      bool
	quitting  bool
	ready     bool

	clock  time.Time
	status string

	width  int
	height int
}

func New(opts Options) tea.Model {
	ta := textarea.New()
	ta.Placeholder = "Bir şey yaz, ya da ctrl+l ile konuş..."
	ta.ShowLineNumbers = false
	ta.SetHeight(1)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	if opts.NoteCount <= 0 {
		opts.NoteCount = 12
	}

	return model{
		textarea: ta,
		spinner:  sp,
		opts:     opts,
		clock:    time.Now(),
		status:   "Hazır.",
	}
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, clockTick()}
	if m.opts.Session != nil {
		cmds = append(cmds, waitPrompt(m.opts.Session))
	}
	if m.opts.Ctrl != nil {
		cmds = append(cmds, waitCtrl(m.opts.Ctrl))
	}
	return tea.Batch(cmds...)
}

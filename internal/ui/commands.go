package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lee/internal/assistant"
	"lee/internal/ipc"
)

type (
	clockTickMsg time.Time
	teaPromptMsg string
	ctrlMsg      ipc.ControlMessage
	heardMsg     struct {
		text string
		err  error
	}
	lookupMsg  string
	spokenMsg  struct{ err error }
	quitNowMsg struct{}
)

// The grace delay between the farewell reply and process exit, so the
// farewell is still seen and spoken.
const exitGrace = 1500 * time.Millisecond

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func waitPrompt(s *assistant.Session) tea.Cmd {
	return func() tea.Msg {
		q, ok := <-s.Prompts()
		if !ok {
			return nil
		}
		return teaPromptMsg(q)
	}
}

func waitCtrl(ch <-chan ipc.ControlMessage) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return ctrlMsg(msg)
	}
}

func listenCmd(l Listener) tea.Cmd {
	return func() tea.Msg {
		text, err := l.Listen(context.Background())
		return heardMsg{text: text, err: err}
	}
}

func lookupCmd(f func(context.Context) string) tea.Cmd {
	return func() tea.Msg {
		return lookupMsg(f(context.Background()))
	}
}

func speakCmd(s Speaker, text string) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		return spokenMsg{err: s.Say(context.Background(), text)}
	}
}

func quitAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return quitNowMsg{}
	})
}

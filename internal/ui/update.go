package ui

import (
	"fmt"
	"strings"
	"time"

	log "log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"lee/internal/assistant"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		taCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	m.spinner, spCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		if !m.ready {
			m.ready = true
			m.refreshNotes()
		}
		m.viewport.SetContent(strings.Join(m.transcript, "\n"))
		m.viewport.GotoBottom()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+l":
			return m.startListening(spCmd)

		case "ctrl+g":
			on := !m.opts.Dispatcher.WakeGating()
			m.opts.Dispatcher.SetWakeGating(on)
			if on {
				m.addChat("Sistem", "Uyandırma kelimesi açık: 'Lee' demen gerek.")
			} else {
				m.addChat("Sistem", "Uyandırma kelimesi kapalı.")
			}
			return m, spCmd

		case "ctrl+t":
			if m.opts.Speaker != nil {
				voice := m.opts.Speaker.ToggleVoice()
				m.addChat("Sistem", fmt.Sprintf("Ses değişti (%s).", voice))
				return m, tea.Batch(spCmd, speakCmd(m.opts.Speaker, "Ses değiştirildi."))
			}
			return m, spCmd

		case "enter":
			if m.quitting {
				return m, spCmd
			}
			typed := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if typed == "" {
				return m, spCmd
			}
			m.addChat("Sen", typed)
			return m.handleUtterance(typed, spCmd)
		}

	case clockTickMsg:
		m.clock = time.Time(msg)
		return m, tea.Batch(spCmd, clockTick())

	case teaPromptMsg:
		m.addChat("Lee", string(msg))
		return m, tea.Batch(spCmd,
			speakCmd(m.opts.Speaker, string(msg)),
			waitPrompt(m.opts.Session))

	case ctrlMsg:
		return m.handleControl(msg.Cmd, spCmd)

	case heardMsg:
		m.listening = false
		m.status = "Hazır."
		text := msg.text
		if msg.err != nil {
			// Unreachable recognizer collapses to "nothing heard".
			log.Warn("capture failed", "err", msg.err)
			text = ""
		}
		if text != "" {
			m.addChat("Sen", text)
		}
		return m.handleUtterance(text, spCmd)

	case lookupMsg:
		m.busy = false
		m.status = "Hazır."
		m.addChat("Lee", string(msg))
		return m, tea.Batch(spCmd, speakCmd(m.opts.Speaker, string(msg)))

	case spokenMsg:
		if msg.err != nil {
			log.Warn("speech output failed", "err", msg.err)
		}
		return m, spCmd

	case quitNowMsg:
		return m, tea.Quit
	}

	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(taCmd, vpCmd, spCmd)
}

// handleUtterance pushes one utterance (typed or heard) through the
// dispatcher and schedules the side effects its reply asks for.
func (m model) handleUtterance(raw string, extra tea.Cmd) (tea.Model, tea.Cmd) {
	rep := m.opts.Dispatcher.Dispatch(raw)

	m.addChat("Lee", rep.Text)
	cmds := []tea.Cmd{extra, speakCmd(m.opts.Speaker, rep.Text)}

	if rep.Deferred != nil {
		m.busy = true
		m.status = "Bakıyorum..."
		cmds = append(cmds, lookupCmd(rep.Deferred), m.spinner.Tick)
	}

	m.refreshNotes()

	if rep.Status == assistant.StatusExit {
		m.quitting = true
		m.status = "Kapanıyor..."
		cmds = append(cmds, quitAfter(exitGrace))
	}

	return m, tea.Batch(cmds...)
}

func (m model) startListening(extra tea.Cmd) (tea.Model, tea.Cmd) {
	if m.opts.Listener == nil {
		m.addChat("Sistem", "Mikrofon bu oturumda kapalı.")
		return m, extra
	}
	if m.listening || m.quitting {
		return m, extra
	}
	m.listening = true
	m.status = "Dinliyorum... konuş, sonra dur."
	return m, tea.Batch(extra, listenCmd(m.opts.Listener), m.spinner.Tick)
}

func (m model) handleControl(cmd string, extra tea.Cmd) (tea.Model, tea.Cmd) {
	rearm := waitCtrl(m.opts.Ctrl)

	switch cmd {
	case "listen":
		model, c := m.startListening(extra)
		return model, tea.Batch(c, rearm)
	case "tea":
		q := m.opts.Session.Ask()
		m.addChat("Lee", q)
		return m, tea.Batch(extra, speakCmd(m.opts.Speaker, q), rearm)
	case "quit":
		m.quitting = true
		return m, tea.Batch(extra, quitAfter(300*time.Millisecond))
	default:
		log.Warn("unknown control command", "cmd", cmd)
		return m, tea.Batch(extra, rearm)
	}
}

func (m *model) addChat(who, text string) {
	style := sysStyle
	switch who {
	case "Sen":
		style = youStyle
	case "Lee":
		style = leeStyle
	}

	ts := time.Now().Format("15:04")
	m.transcript = append(m.transcript,
		fmt.Sprintf("%s %s", style.Render("["+ts+"] "+who+":"), text), "")

	if m.ready {
		m.viewport.SetContent(strings.Join(m.transcript, "\n"))
		m.viewport.GotoBottom()
	}
}

func (m *model) refreshNotes() {
	if m.opts.Notes == nil {
		return
	}
	lines, err := m.opts.Notes.LastN(m.opts.NoteCount)
	if err != nil {
		log.Warn("notes panel refresh failed", "err", err)
		return
	}
	m.noteLines = lines
}

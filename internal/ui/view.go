package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 34

func (m *model) layout() {
	chatWidth := m.width - sidebarWidth - 4
	if chatWidth < 20 {
		chatWidth = 20
	}
	chatHeight := m.height - 9
	if chatHeight < 3 {
		chatHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(chatWidth, chatHeight)
	} else {
		m.viewport.Width = chatWidth
		m.viewport.Height = chatHeight
	}
	m.textarea.SetWidth(m.width - 6)
}

func (m model) View() string {
	if !m.ready {
		return "Başlatılıyor..."
	}

	header := m.buildHeader()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		" ",
		m.buildNotesPanel(),
	)
	status := m.buildStatus()
	input := inputBoxStyle.Width(m.width - 4).Render(m.textarea.View())
	footer := footerStyle.Render(
		"  enter gönder • ctrl+l dinle • ctrl+g uyandırma • ctrl+t ses • ctrl+c çık")

	return strings.Join([]string{header, body, status, input, footer}, "\n")
}

func (m model) buildHeader() string {
	left := headerStyle.Render(" Lee ") +
		subtitleStyle.Render("Dijital Asistan • Türkçe")
	right := clockStyle.Render(m.clock.Format("15:04:05")) +
		subtitleStyle.Render("  "+m.clock.Format("02.01.2006"))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m model) buildStatus() string {
	if m.listening || m.busy {
		return statusStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), m.status))
	}
	return statusStyle.Render(m.status)
}

func (m model) buildNotesPanel() string {
	var b strings.Builder
	b.WriteString(notesTitleStyle.Render("Notlar"))
	b.WriteString("\n")
	if len(m.noteLines) == 0 {
		b.WriteString(subtitleStyle.Render("Henüz not yok."))
	} else {
		for _, line := range m.noteLines {
			b.WriteString(truncate(line, sidebarWidth-4))
			b.WriteString("\n")
		}
	}
	return notesBoxStyle.Width(sidebarWidth).Height(m.viewport.Height).Render(b.String())
}

func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return string(r[:w-1]) + "…"
}

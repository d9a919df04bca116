package ui

import "github.com/charmbracelet/lipgloss"

// Palette, loosely the light-blue scheme of the desktop build.
var (
	accentBlue = lipgloss.Color("#2563EB")
	softBlue   = lipgloss.Color("#93C5FD")
	slateGray  = lipgloss.Color("#64748B")
	brightText = lipgloss.Color("#F8FAFC")
	warmYellow = lipgloss.Color("#FDE68A")
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(accentBlue).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(slateGray)

	clockStyle = lipgloss.NewStyle().
			Foreground(brightText).
			Bold(true)

	youStyle = lipgloss.NewStyle().
			Foreground(warmYellow).
			Bold(true)

	leeStyle = lipgloss.NewStyle().
			Foreground(accentBlue).
			Bold(true)

	sysStyle = lipgloss.NewStyle().
			Foreground(slateGray).
			Italic(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(slateGray).
			Padding(0, 1)

	notesTitleStyle = lipgloss.NewStyle().
			Foreground(softBlue).
			Bold(true)

	notesBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(slateGray).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentBlue).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(slateGray)
)

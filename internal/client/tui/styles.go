package tui

import "github.com/charmbracelet/lipgloss"

var (
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	clockStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("221"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	alertStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	weatherStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
)

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	cellStyle   = lipgloss.NewStyle().Width(3).Align(lipgloss.Center)
	cursorStyle = cellStyle.Reverse(true)
	xStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87"))
	oStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FD7FF"))
	gridStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	statusStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	winnerStyle  = statusStyle.Foreground(lipgloss.Color("#FFD700"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	currentStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	panelStyle = lipgloss.NewStyle().Padding(0, 2)
)

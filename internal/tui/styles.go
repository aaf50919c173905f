package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("12")
	danger = lipgloss.Color("9")

	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(accent)
	frameStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false).Padding(1, 2).MarginLeft(1)
	helpStyle       = lipgloss.NewStyle().Faint(true).MarginLeft(2)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(danger)
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	typeStyle       = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(danger).Padding(1, 2)
)

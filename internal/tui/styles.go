package tui

import "github.com/charmbracelet/lipgloss"

var (
	brandStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	buttonStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("33")).Padding(0, 2)
	disabledStyle   = lipgloss.NewStyle().Faint(true).Padding(0, 2)
	linkStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true)
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

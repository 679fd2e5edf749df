package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/focusdeck/focusdeck/internal/constants"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	timerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(24).
			Align(lipgloss.Center)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	dayCellStyles = map[constants.CompletionStatus]lipgloss.Style{
		constants.StatusRed:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		constants.StatusYellow:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		constants.StatusLightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		constants.StatusDeepGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		constants.StatusFuture:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
)

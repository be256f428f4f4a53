package tui

import "github.com/charmbracelet/lipgloss"

// Global styles used across views
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(lipgloss.Color("170")).
				Bold(true)

	// Detail view styles
	groupHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("cyan")).
				Bold(true)

	errorLevelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("red")).
			Bold(true)

	warnLevelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("yellow"))

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func levelStyle(level string) lipgloss.Style {
	switch level {
	case "error", "fatal":
		return errorLevelStyle
	case "warn", "warning":
		return warnLevelStyle
	}
	return timestampStyle
}

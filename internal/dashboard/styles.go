package dashboard

import "github.com/charmbracelet/lipgloss"

// Palette shared across the status table.
var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorSuccess = lipgloss.Color("#04B575")
	ColorError   = lipgloss.Color("#FF5F87")
	ColorMuted   = lipgloss.Color("#626262")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	headerStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	footerStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	activeStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	failedStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	connectingStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	pointsStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

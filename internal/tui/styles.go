package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	gridFg    = lipgloss.Color("#3B4658")
	draftFg   = lipgloss.Color("#E05252")
	resultFg  = lipgloss.Color("#3FB950")
	cursorFg  = lipgloss.Color("#FFA500")
	borderCol = lipgloss.Color("#243141")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	gridStyle   = lipgloss.NewStyle().Foreground(gridFg)
	polyStyle   = lipgloss.NewStyle().Foreground(baseFg)
	draftStyle  = lipgloss.NewStyle().Foreground(draftFg)
	resultStyle = lipgloss.NewStyle().Foreground(resultFg)
	cursorStyle = lipgloss.NewStyle().Foreground(cursorFg).Bold(true)
)

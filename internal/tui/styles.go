// Package tui provides the terminal user interface for interactive
// generation runs: a live progress dashboard plus the styled summary also
// used by plain (non-TTY) runs.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - consistent colors used throughout the TUI
var (
	PrimaryColor = lipgloss.Color("#00D7FF") // Cyan - branding, in-progress states
	SuccessColor = lipgloss.Color("#5AF78E") // Green - complete states
	WarningColor = lipgloss.Color("#F3F99D") // Yellow - cancelling
	ErrorColor   = lipgloss.Color("#FF5C57") // Red - failed states
	MutedColor   = lipgloss.Color("#6C7086") // Gray - pending, muted text
	BorderColor  = lipgloss.Color("#45475A") // Dark gray - borders, dividers
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)

	mutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	successStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	errorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)

	stateRunningStyle    = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)
	stateCancellingStyle = lipgloss.NewStyle().Bold(true).Foreground(WarningColor)
	stateCompleteStyle   = lipgloss.NewStyle().Bold(true).Foreground(SuccessColor)
	stateErrorStyle      = lipgloss.NewStyle().Bold(true).Foreground(ErrorColor)

	progressBarFillStyle  = lipgloss.NewStyle().Foreground(SuccessColor)
	progressBarEmptyStyle = lipgloss.NewStyle().Foreground(MutedColor)

	summaryPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BorderColor).
				Padding(0, 1)
)

// Status icons
const (
	IconDone       = "✓"
	IconInProgress = "●"
	IconPending    = "○"
	IconFailed     = "✗"
)

// stateStyle returns the style for an app state badge.
func stateStyle(state AppState) lipgloss.Style {
	switch state {
	case StateRunning:
		return stateRunningStyle
	case StateCancelling:
		return stateCancellingStyle
	case StateComplete:
		return stateCompleteStyle
	case StateError:
		return stateErrorStyle
	default:
		return mutedStyle
	}
}

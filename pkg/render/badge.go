// Package render turns a session into terminal output: a compact listing for everyday
// use and a Markdown print view.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/agenda/pkg/core"
)

var (
	colorGreen   = lipgloss.AdaptiveColor{Light: "#166534", Dark: "#86EFAC"}
	colorYellow  = lipgloss.AdaptiveColor{Light: "#854D0E", Dark: "#FDE047"}
	colorRed     = lipgloss.AdaptiveColor{Light: "#991B1B", Dark: "#FCA5A5"}
	colorBlue    = lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#93C5FD"}
	colorNeutral = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#D1D5DB"}
	colorTitle   = lipgloss.AdaptiveColor{Light: "#4338CA", Dark: "#A5B4FC"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

var (
	badgeBase  = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(colorTitle).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// StatusColor maps a status to its badge color. Values from older records that are no
// longer known fall back to the neutral color.
func StatusColor(s core.Status) lipgloss.TerminalColor {
	switch s {
	case core.StatusCompleted, core.StatusDone:
		return colorGreen
	case core.StatusInProgress, core.StatusPending:
		return colorYellow
	case core.StatusBlocked:
		return colorRed
	case core.StatusOpen:
		return colorBlue
	}
	return colorNeutral
}

// PriorityColor maps a priority to its badge color, with the same neutral fallback.
func PriorityColor(p core.Priority) lipgloss.TerminalColor {
	switch p {
	case core.PriorityHigh:
		return colorRed
	case core.PriorityMedium:
		return colorYellow
	case core.PriorityLow:
		return colorGreen
	}
	return colorNeutral
}

// StatusBadge renders s as a colored badge.
func StatusBadge(s core.Status) string {
	return badgeBase.Foreground(StatusColor(s)).Render(string(s))
}

// PriorityBadge renders p as a colored badge.
func PriorityBadge(p core.Priority) string {
	return badgeBase.Foreground(PriorityColor(p)).Render(string(p))
}

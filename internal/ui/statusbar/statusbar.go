// Package statusbar renders the one-line footer of the interactive board
package statusbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/todoboard/internal/types"
	"github.com/riordanpawley/todoboard/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	width  int
	info   string
	styles *styles.Styles
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithInfo returns a copy showing info (counts, active filters) on the right
func (sb StatusBar) WithInfo(info string) StatusBar {
	sb.info = info
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	parts := []string{sb.styles.StatusMode.Render(sb.mode.String())}

	separator := sb.styles.StatusHint.Render(" │ ")
	if hints := GetHints(sb.mode); hints != "" {
		parts = append(parts, separator, sb.styles.StatusHint.Render(hints))
	}
	if sb.info != "" {
		parts = append(parts, separator, sb.styles.StatusInfo.Render(sb.info))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	if sb.width > 2 {
		// stay on one line; padding takes two cells
		content = ansi.Truncate(content, sb.width-2, "…")
	}
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}

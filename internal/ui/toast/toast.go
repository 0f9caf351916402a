// Package toast renders transient notifications in the board's corner
package toast

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/todoboard/internal/types"
	"github.com/riordanpawley/todoboard/internal/ui/styles"
)

// maxWidth caps a toast's width regardless of terminal size
const maxWidth = 40

// ToastRenderer handles rendering of toast notifications
type ToastRenderer struct {
	styles *styles.Styles
}

// New creates a new ToastRenderer with the given styles
func New(styles *styles.Styles) *ToastRenderer {
	return &ToastRenderer{
		styles: styles,
	}
}

// Render stacks the toasts vertically, right-aligned.
// Returns empty string if no toasts to display.
func (r *ToastRenderer) Render(toasts []types.Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	toastWidth := min(width/3, maxWidth)
	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, r.styleForLevel(t.Level).Width(toastWidth).Render(t.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// Prune drops toasts that have expired at now
func Prune(toasts []types.Toast, now time.Time) []types.Toast {
	live := toasts[:0]
	for _, t := range toasts {
		if !t.Expired(now) {
			live = append(live, t)
		}
	}
	return live
}

func (r *ToastRenderer) styleForLevel(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return r.styles.ToastSuccess
	case types.ToastWarning:
		return r.styles.ToastWarning
	case types.ToastError:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}

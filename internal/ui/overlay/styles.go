package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/todoboard/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the base overlay container style
	Overlay lipgloss.Style
	// Title is the overlay title style
	Title lipgloss.Style
	// Header is the style for section headers inside a panel
	Header lipgloss.Style
	// Label is the right-aligned field label style
	Label lipgloss.Style
	// Value is the default field value style
	Value lipgloss.Style
	// Key is the style for keybinding hints
	Key lipgloss.Style
	// Missing marks references that name no task
	Missing lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		Header: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(styles.Teal).
			Width(10).
			Align(lipgloss.Right),

		Value: lipgloss.NewStyle().
			Foreground(styles.Text),

		Key: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Missing: lipgloss.NewStyle().
			Foreground(styles.Mauve).
			Italic(true),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),
	}
}

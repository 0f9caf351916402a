// Package styles holds the lipgloss theme shared by the terminal report and the TUI
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/todoboard/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Report
	Banner      lipgloss.Style
	BannerTitle lipgloss.Style
	Dim         lipgloss.Style
	Bold        lipgloss.Style
	Table       lipgloss.Style
	TableHeader lipgloss.Style
	TableBorder lipgloss.Style
	Cell        lipgloss.Style
	TaskID      lipgloss.Style
	TaskTitle   lipgloss.Style

	// Section headers
	CriticalHeader lipgloss.Style
	BlockedHeader  lipgloss.Style
	MissingHeader  lipgloss.Style
	ReadyHeader    lipgloss.Style

	// Columns layout
	Column             lipgloss.Style
	ColumnHeader       lipgloss.Style
	ColumnHeaderActive lipgloss.Style
	Card               lipgloss.Style
	CardActive         lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Detail pane
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	Label        lipgloss.Style
	Separator    lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Banner: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Sky).
			Padding(0, 1),

		BannerTitle: lipgloss.NewStyle().
			Foreground(Sky).
			Bold(true),

		Dim: lipgloss.NewStyle().
			Foreground(Overlay1),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Table: lipgloss.NewStyle().
			MarginLeft(1),

		TableHeader: lipgloss.NewStyle().
			Foreground(Sky).
			Bold(true).
			Padding(0, 1),

		TableBorder: lipgloss.NewStyle().
			Foreground(Surface2),

		Cell: lipgloss.NewStyle().
			Foreground(Text).
			Padding(0, 1),

		TaskID: lipgloss.NewStyle().
			Foreground(Sapphire).
			Bold(true),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Text),

		CriticalHeader: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true).
			MarginTop(1),

		BlockedHeader: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true).
			MarginTop(1),

		MissingHeader: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true).
			MarginTop(1),

		ReadyHeader: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true).
			MarginTop(1),

		Column: lipgloss.NewStyle().
			PaddingLeft(1),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(Overlay1),

		ColumnHeaderActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface0),

		CardActive: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(Subtext0).
			Width(12),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		ToastInfo: lipgloss.NewStyle().
			Background(Surface1).
			Foreground(Text).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			Background(Green).
			Foreground(Base).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			Background(Yellow).
			Foreground(Base).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			Background(Red).
			Foreground(Base).
			Padding(0, 1),
	}
}

// Priority returns the foreground style for a priority
func (s *Styles) Priority(p domain.Priority) lipgloss.Style {
	color := PriorityColors[min(p.Rank(), len(PriorityColors)-1)]
	style := lipgloss.NewStyle().Foreground(color)
	if p == domain.P0 {
		style = style.Bold(true)
	}
	return style
}

// PriorityBadge returns a filled badge style for a priority
func (s *Styles) PriorityBadge(p domain.Priority) lipgloss.Style {
	color := PriorityColors[min(p.Rank(), len(PriorityColors)-1)]
	return lipgloss.NewStyle().
		Foreground(Base).
		Background(color).
		Padding(0, 1).
		Bold(true)
}

// Status returns the appropriate style for a task status
func (s *Styles) Status(status domain.Status) lipgloss.Style {
	color, ok := StatusColors[status]
	if !ok {
		color = Subtext0
	}
	return lipgloss.NewStyle().Foreground(color)
}

// Progress colours a completion percentage: green when done, yellow past half
func (s *Styles) Progress(percent float64) lipgloss.Style {
	switch {
	case percent >= 100:
		return lipgloss.NewStyle().Foreground(Green)
	case percent > 50:
		return lipgloss.NewStyle().Foreground(Yellow)
	default:
		return lipgloss.NewStyle().Foreground(Red)
	}
}

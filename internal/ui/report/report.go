// Package report renders a resolved board as a terminal summary.
//
// Two renderers share one interface: a styled one built on lipgloss tables
// for interactive terminals, and a plain tabwriter one for pipes, files and
// NO_COLOR environments. Select picks between them.
package report

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/riordanpawley/todoboard/internal/core/board"
	"github.com/riordanpawley/todoboard/internal/domain"
)

// Renderer writes board summaries
type Renderer interface {
	RenderBoard(w io.Writer, b *board.Board) error
	RenderReady(w io.Writer, ready []domain.Task) error
}

// Options controls report layout
type Options struct {
	// MissingLimit caps the unresolved dependency listing
	MissingLimit int
	// TitleWidth is the display width titles are cut to
	TitleWidth int
}

// DefaultOptions returns the standard layout
func DefaultOptions() Options {
	return Options{MissingLimit: 15, TitleWidth: 45}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.MissingLimit <= 0 {
		o.MissingLimit = d.MissingLimit
	}
	if o.TitleWidth <= 0 {
		o.TitleWidth = d.TitleWidth
	}
	return o
}

// Select returns the styled renderer when w is a terminal and NO_COLOR is
// unset, otherwise the plain renderer
func Select(w io.Writer, opts Options) Renderer {
	if IsTerminal(w) && os.Getenv("NO_COLOR") == "" {
		return NewStyled(opts)
	}
	return NewPlain(opts)
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NoReadyMessage is printed when nothing is actionable
const NoReadyMessage = "No actionable tasks. All tasks are blocked, in-progress, or completed."

func truncate(s string, width int) string {
	return ansi.Truncate(s, width, "")
}

func byID(tasks []domain.Task) []domain.Task {
	sorted := slices.Clone(tasks)
	slices.SortFunc(sorted, func(a, b domain.Task) int {
		return strings.Compare(a.ID, b.ID)
	})
	return sorted
}

// blockerList formats what holds a blocked task: incomplete dependencies
// first, then unresolved references marked with "?"
func blockerList(b *board.Board, t domain.Task) string {
	var parts []string
	for _, d := range b.Blockers(t) {
		parts = append(parts, d.ID)
	}
	for _, ref := range b.Unresolved(t) {
		parts = append(parts, ref+"?")
	}
	return strings.Join(parts, ", ")
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

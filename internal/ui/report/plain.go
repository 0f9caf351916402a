package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/riordanpawley/todoboard/internal/core/board"
	"github.com/riordanpawley/todoboard/internal/domain"
)

// Plain renders uncoloured text suitable for pipes and log files
type Plain struct {
	opts Options
}

// NewPlain creates a plain renderer
func NewPlain(opts Options) *Plain {
	return &Plain{opts: opts.normalized()}
}

// RenderBoard writes the summary, critical tasks, blocked tasks, unresolved
// dependencies and per-file progress
func (p *Plain) RenderBoard(w io.Writer, b *board.Board) error {
	var out strings.Builder
	stats := b.Stats
	rule := strings.Repeat("=", 52)

	fmt.Fprintf(&out, "\n%s\n", rule)
	fmt.Fprintf(&out, "   PROJECT BOARD  (%d tasks, %d files, %.1f%% done)\n", stats.Total, stats.FilesWithTasks, stats.PercentDone())
	fmt.Fprintf(&out, "%s\n", rule)
	fmt.Fprintf(&out, "  ✅ Completed   %d\n", stats.Completed)
	fmt.Fprintf(&out, "  🟢 Ready       %d\n", stats.Ready)
	fmt.Fprintf(&out, "  📋 Not Started %d\n", stats.NotStarted)
	fmt.Fprintf(&out, "  🔄 In Progress %d\n", stats.InProgress)
	fmt.Fprintf(&out, "  🔴 Blocked     %d\n", stats.Blocked)
	fmt.Fprintf(&out, "  🔴 P0 Pending  %d\n", stats.P0Pending)
	fmt.Fprintf(&out, "  🟠 P1 Pending  %d\n", stats.P1Pending)
	fmt.Fprintf(&out, "%s\n", strings.Repeat("-", 52))

	if critical := byID(b.Critical()); len(critical) > 0 {
		fmt.Fprintf(&out, "\n  P0 CRITICAL (%d):\n", len(critical))
		for _, t := range critical {
			fmt.Fprintf(&out, "    %s: %s  [%s]  @%s\n", t.ID, truncate(t.Title, p.opts.TitleWidth), t.Status, t.Owner)
		}
	}

	if blocked := byID(b.Blocked()); len(blocked) > 0 {
		fmt.Fprintf(&out, "\n  BLOCKED (%d):\n", len(blocked))
		for _, t := range blocked {
			fmt.Fprintf(&out, "    %s <- %s\n", t.ID, dashIfEmpty(blockerList(b, t)))
		}
	}

	if missing := stats.MissingDeps; len(missing) > 0 {
		fmt.Fprintf(&out, "\n  UNRESOLVED DEPS (%d):\n", len(missing))
		for _, m := range missing[:min(len(missing), p.opts.MissingLimit)] {
			fmt.Fprintf(&out, "    %s -> %s\n", m.TaskID, m.DepID)
		}
		if extra := len(missing) - p.opts.MissingLimit; extra > 0 {
			fmt.Fprintf(&out, "    ... +%d more\n", extra)
		}
	}

	fmt.Fprintf(&out, "\n  PER-FILE PROGRESS:\n")
	tw := tabwriter.NewWriter(&out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "    FILE\tDONE\tTOTAL\t%")
	for _, fp := range b.FileProgress() {
		fmt.Fprintf(tw, "    %s\t%d\t%d\t%.0f%%\n", fp.File, fp.Done, fp.Total, fp.Percent())
	}
	tw.Flush()
	out.WriteString("\n")

	_, err := io.WriteString(w, out.String())
	return err
}

// RenderReady writes the actionable tasks as a fixed-width table
func (p *Plain) RenderReady(w io.Writer, ready []domain.Task) error {
	if len(ready) == 0 {
		_, err := fmt.Fprintln(w, NoReadyMessage)
		return err
	}

	var out strings.Builder
	rule := strings.Repeat("-", 80)

	fmt.Fprintf(&out, "\nREADY FOR ASSIGNMENT - %d task(s)\n", len(ready))
	fmt.Fprintln(&out, rule)
	tw := tabwriter.NewWriter(&out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRI\tTITLE\tOWNER\tEFFORT\tFILE")
	for _, t := range ready {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Priority, truncate(t.Title, p.opts.TitleWidth), t.Owner, dashIfEmpty(t.Effort), t.SourceFile)
	}
	tw.Flush()
	out.WriteString("\n")

	_, err := io.WriteString(w, out.String())
	return err
}

var _ Renderer = (*Plain)(nil)

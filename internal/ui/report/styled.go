package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/riordanpawley/todoboard/internal/core/board"
	"github.com/riordanpawley/todoboard/internal/domain"
	"github.com/riordanpawley/todoboard/internal/ui/styles"
)

// Styled renders coloured tables for interactive terminals
type Styled struct {
	opts   Options
	styles *styles.Styles
}

// NewStyled creates a styled renderer using the shared theme
func NewStyled(opts Options) *Styled {
	return &Styled{opts: opts.normalized(), styles: styles.New()}
}

// RenderBoard writes the banner, summary, critical tasks, blocked tasks,
// unresolved dependencies and per-file progress
func (s *Styled) RenderBoard(w io.Writer, b *board.Board) error {
	sections := []string{
		s.banner(b.Stats),
		s.summary(b.Stats),
	}
	if section := s.critical(b); section != "" {
		sections = append(sections, section)
	}
	if section := s.blocked(b); section != "" {
		sections = append(sections, section)
	}
	if section := s.missing(b.Stats); section != "" {
		sections = append(sections, section)
	}
	sections = append(sections, s.fileProgress(b))

	_, err := fmt.Fprintf(w, "\n%s\n\n", lipgloss.JoinVertical(lipgloss.Left, sections...))
	return err
}

// RenderReady writes the actionable tasks as a table
func (s *Styled) RenderReady(w io.Writer, ready []domain.Task) error {
	if len(ready) == 0 {
		_, err := fmt.Fprintln(w, NoReadyMessage)
		return err
	}

	header := s.styles.ReadyHeader.Render(fmt.Sprintf("🟢 READY FOR ASSIGNMENT — %d task(s)", len(ready)))

	rows := make([][]string, 0, len(ready))
	for _, t := range ready {
		rows = append(rows, []string{
			t.ID,
			t.Priority.String(),
			truncate(t.Title, s.opts.TitleWidth),
			t.Owner,
			dashIfEmpty(t.Effort),
			t.SourceFile,
		})
	}

	tbl := s.table("ID", "Priority", "Title", "Owner", "Effort", "File").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.styles.TableHeader
			}
			switch col {
			case 0:
				return s.styles.TaskID.Padding(0, 1)
			case 1:
				return s.styles.Priority(ready[row].Priority).Padding(0, 1)
			case 4:
				return s.styles.Cell.Align(lipgloss.Right)
			case 5:
				return s.styles.Dim.Padding(0, 1)
			default:
				return s.styles.Cell
			}
		})

	_, err := fmt.Fprintf(w, "\n%s\n%s\n\n", header, tbl.Render())
	return err
}

func (s *Styled) table(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.styles.TableBorder).
		BorderColumn(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderBottom(false).
		Headers(headers...)
}

func (s *Styled) banner(stats domain.BoardStats) string {
	title := s.styles.BannerTitle.Render("PROJECT BOARD")
	sub := s.styles.Dim.Render(fmt.Sprintf("%d tasks · %d files · %.1f%% done",
		stats.Total, stats.FilesWithTasks, stats.PercentDone()))
	return s.styles.Banner.Render(title + "\n" + sub)
}

func (s *Styled) summary(stats domain.BoardStats) string {
	type metric struct {
		label string
		value int
		style lipgloss.Style
	}
	metrics := []metric{
		{"✅ Completed", stats.Completed, s.styles.Status(domain.StatusCompleted)},
		{"🟢 Ready", stats.Ready, s.styles.Status(domain.StatusReady)},
		{"📋 Not Started", stats.NotStarted, s.styles.Status(domain.StatusNotStarted)},
		{"🔄 In Progress", stats.InProgress, s.styles.Status(domain.StatusInProgress)},
		{"🔴 Blocked", stats.Blocked, s.styles.Status(domain.StatusBlocked)},
		{"🔴 P0 Pending", stats.P0Pending, s.styles.Priority(domain.P0)},
		{"🟠 P1 Pending", stats.P1Pending, s.styles.Priority(domain.P1).Bold(true)},
	}

	rows := make([][]string, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, []string{m.label, strconv.Itoa(m.value)})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.styles.TableBorder).
		BorderColumn(false).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return s.styles.Bold.Padding(0, 1)
			}
			return metrics[row].style.Padding(0, 1).Align(lipgloss.Right)
		}).
		Render()
}

func (s *Styled) critical(b *board.Board) string {
	critical := byID(b.Critical())
	if len(critical) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(critical))
	for _, t := range critical {
		rows = append(rows, []string{t.ID, truncate(t.Title, s.opts.TitleWidth), t.Status.Label(), t.Owner, t.SourceFile})
	}

	tbl := s.table("ID", "Title", "Status", "Owner", "File").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.styles.TableHeader
			}
			switch col {
			case 0:
				return s.styles.Priority(domain.P0).Padding(0, 1)
			case 2:
				return s.styles.Status(critical[row].Status).Padding(0, 1).Align(lipgloss.Center)
			case 4:
				return s.styles.Dim.Padding(0, 1)
			default:
				return s.styles.Cell
			}
		})

	header := s.styles.CriticalHeader.Render(fmt.Sprintf("🔴 P0 CRITICAL — %d pending", len(critical)))
	return header + "\n" + tbl.Render()
}

func (s *Styled) blocked(b *board.Board) string {
	blocked := byID(b.Blocked())
	if len(blocked) == 0 {
		return ""
	}

	lines := []string{s.styles.BlockedHeader.Render(fmt.Sprintf("⏸ BLOCKED — %d tasks", len(blocked)))}
	for _, t := range blocked {
		lines = append(lines, fmt.Sprintf("  %s ← %s", s.styles.Dim.Render(t.ID), dashIfEmpty(blockerList(b, t))))
	}
	return strings.Join(lines, "\n")
}

func (s *Styled) missing(stats domain.BoardStats) string {
	missing := stats.MissingDeps
	if len(missing) == 0 {
		return ""
	}

	lines := []string{s.styles.MissingHeader.Render(fmt.Sprintf("⚠ UNRESOLVED DEPS — %d", len(missing)))}
	for _, m := range missing[:min(len(missing), s.opts.MissingLimit)] {
		lines = append(lines, fmt.Sprintf("  %s → %s (not found)", s.styles.Dim.Render(m.TaskID), s.styles.Bold.Render(m.DepID)))
	}
	if extra := len(missing) - s.opts.MissingLimit; extra > 0 {
		lines = append(lines, s.styles.Dim.Render(fmt.Sprintf("  … +%d more", extra)))
	}
	return strings.Join(lines, "\n")
}

func (s *Styled) fileProgress(b *board.Board) string {
	progress := b.FileProgress()

	rows := make([][]string, 0, len(progress))
	for _, fp := range progress {
		rows = append(rows, []string{
			fp.File,
			strconv.Itoa(fp.Done),
			strconv.Itoa(fp.Total),
			fmt.Sprintf("%.0f%%", fp.Percent()),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.styles.TableBorder).
		Headers("File", "Done", "Total", "%").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.styles.TableHeader
			}
			switch col {
			case 0:
				return s.styles.TaskID.Padding(0, 1)
			case 3:
				return s.styles.Progress(progress[row].Percent()).Padding(0, 1).Align(lipgloss.Right)
			default:
				return s.styles.Cell.Align(lipgloss.Right)
			}
		})

	title := s.styles.Bold.MarginTop(1).Render("Per-File Progress")
	return title + "\n" + tbl.Render()
}

var _ Renderer = (*Styled)(nil)

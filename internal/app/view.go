package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/todoboard/internal/domain"
	"github.com/riordanpawley/todoboard/internal/types"
	boardview "github.com/riordanpawley/todoboard/internal/ui/board"
	"github.com/riordanpawley/todoboard/internal/ui/statusbar"
	"github.com/riordanpawley/todoboard/internal/ui/toast"
)

// View renders the header, the task table (or the open overlay), any
// toasts and the status bar, never taller than the terminal
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	toastView := toast.New(m.styles).Render(m.toasts, m.width)
	if toastView != "" {
		toastView = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toastView)
	}

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if toastView != "" {
		bodyHeight -= lipgloss.Height(toastView)
	}
	bodyHeight = max(bodyHeight, 1)

	var body string
	if current := m.overlays.Current(); current != nil {
		w, h := current.Size()
		content := lipgloss.JoinVertical(lipgloss.Left, m.styles.OverlayTitle.Render(current.Title()), current.View())
		panel := m.styles.Overlay.Width(w).MaxHeight(min(h, bodyHeight)).Render(content)
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, panel)
	} else if len(m.visible) == 0 {
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.styles.Dim.Render("No tasks match the current filters"))
	} else if m.layout == types.LayoutColumns {
		body = boardview.Render(m.columns, m.cursor, m.styles, m.width, bodyHeight)
	} else {
		body = clip(m.table.View(), bodyHeight)
	}

	parts := []string{header, body}
	if toastView != "" {
		parts = append(parts, toastView)
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	stats := m.board.Stats
	title := m.styles.BannerTitle.Render("PROJECT BOARD")

	counts := make([]string, 0, len(domain.AllStatuses))
	for i, status := range domain.AllStatuses {
		label := fmt.Sprintf("%d:%s %d", i+1, status.Label(), stats.CountFor(status))
		style := m.styles.Status(status)
		if m.filter.Status[status] {
			style = style.Underline(true).Bold(true)
		}
		counts = append(counts, style.Render(label))
	}

	summary := m.styles.Dim.Render(fmt.Sprintf("%d tasks · %.1f%% done", stats.Total, stats.PercentDone()))
	return ansi.Truncate(title+"  "+summary+"  "+strings.Join(counts, "  "), m.width, "…")
}

func (m Model) renderFooter() string {
	if m.mode == types.ModeSearch {
		return m.styles.StatusBar.Width(m.width).Render(m.search.View())
	}

	info := []string{fmt.Sprintf("%d/%d", len(m.visible), m.board.Registry.Len())}
	if m.filter.ReadyOnly {
		info = append(info, "ready")
	}
	if m.filter.SearchQuery != "" {
		info = append(info, "/"+m.filter.SearchQuery)
	}
	sortInfo := "sort:" + string(m.sort.Field)
	if m.sort.Order == domain.SortDesc {
		sortInfo += "↓"
	}
	info = append(info, sortInfo)
	if m.layout == types.LayoutColumns {
		info = append(info, m.layout.String())
	}

	return statusbar.New(m.mode, m.width, m.styles).WithInfo(strings.Join(info, "  ")).Render()
}

// clip keeps the first n lines of s
func clip(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

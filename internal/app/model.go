// Package app contains the interactive board: a read-only bubbletea view
// over a resolved board with status filters, search and a detail pane.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/todoboard/internal/core/board"
	"github.com/riordanpawley/todoboard/internal/domain"
	"github.com/riordanpawley/todoboard/internal/services/clipboard"
	"github.com/riordanpawley/todoboard/internal/types"
	boardview "github.com/riordanpawley/todoboard/internal/ui/board"
	"github.com/riordanpawley/todoboard/internal/ui/overlay"
	"github.com/riordanpawley/todoboard/internal/ui/styles"
	"github.com/riordanpawley/todoboard/internal/ui/toast"
)

// ScanFunc rebuilds the board from disk
type ScanFunc func(ctx context.Context) (*board.Board, error)

// sortCycle is the order the s key steps through
var sortCycle = []domain.SortField{domain.SortByPriority, domain.SortByID, domain.SortByStatus}

// Fixed column widths; the title column takes what is left
const (
	idWidth       = 14
	priorityWidth = 4
	statusWidth   = 10
	ownerWidth    = 12
	fileWidth     = 24
	minTitleWidth = 20
)

type scannedMsg struct {
	board *board.Board
	err   error
}

type tickMsg time.Time

// Model is the main application state
type Model struct {
	board   *board.Board
	visible []domain.Task
	scan    ScanFunc

	filter *domain.Filter
	sort   domain.Sort
	mode   types.Mode
	layout types.Layout

	table    table.Model
	columns  []boardview.Column
	cursor   boardview.Cursor
	search   textinput.Model
	overlays *overlay.Stack
	toasts   []types.Toast

	width  int
	height int

	clip   *clipboard.Service
	styles *styles.Styles
	logger *slog.Logger
	now    func() time.Time
}

// New creates the model for a resolved board. scan may be nil, which
// disables rescanning.
func New(b *board.Board, scan ScanFunc, logger *slog.Logger) Model {
	s := styles.New()

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "id, title, owner or file"
	search.CharLimit = 64

	tbl := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Surface2).
		BorderBottom(true).
		Foreground(styles.Sky).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(styles.Base).
		Background(styles.Blue).
		Bold(false)
	tbl.SetStyles(ts)

	m := Model{
		board:    b,
		scan:     scan,
		filter:   domain.NewFilter(),
		sort:     domain.Sort{Field: domain.SortByPriority, Order: domain.SortAsc},
		mode:     types.ModeNormal,
		table:    tbl,
		search:   search,
		overlays: overlay.NewStack(),
		clip:     clipboard.New(),
		styles:   s,
		logger:   logger,
		now:      time.Now,
	}
	m.refresh()
	return m
}

// Run starts the interactive board on the alternate screen
func Run(ctx context.Context, b *board.Board, scan ScanFunc, logger *slog.Logger) error {
	program := tea.NewProgram(
		New(b, scan, logger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := program.Run()
	return err
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(columns(m.width))
		m.table.SetHeight(max(m.height-4, 3))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.overlays.IsEmpty() {
			return m, m.overlays.Update(msg)
		}
		if m.mode == types.ModeSearch {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)

	case overlay.CloseOverlayMsg:
		m.overlays.Update(msg)
		if m.overlays.IsEmpty() {
			m.mode = types.ModeNormal
		}
		return m, nil

	case scannedMsg:
		if msg.err != nil {
			m.logger.Error("rescan failed", "error", msg.err)
			cmd := m.notify(types.ToastError, "Rescan failed: "+msg.err.Error())
			return m, cmd
		}
		m.board = msg.board
		m.refresh()
		cmd := m.notify(types.ToastSuccess, fmt.Sprintf("Rescanned %d tasks in %d files", msg.board.Stats.Total, msg.board.Stats.FilesWithTasks))
		return m, cmd

	case tickMsg:
		m.toasts = toast.Prune(m.toasts, time.Time(msg))
		if len(m.toasts) > 0 {
			return m, tick()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return m, tea.Quit

	case "1", "2", "3", "4", "5":
		m.filter.ToggleStatus(domain.AllStatuses[key[0]-'1'])
		m.refresh()
		return m, nil

	case "r":
		m.filter.ReadyOnly = !m.filter.ReadyOnly
		m.refresh()
		return m, nil

	case "c":
		m.filter.Clear()
		m.search.SetValue("")
		m.refresh()
		return m, nil

	case "s":
		m.sort = domain.Sort{Field: nextSortField(m.sort.Field), Order: domain.SortAsc}
		m.refresh()
		return m, nil

	case "S":
		m.sort.Toggle(m.sort.Field)
		m.refresh()
		return m, nil

	case "/":
		m.mode = types.ModeSearch
		cmd := m.search.Focus()
		return m, cmd

	case "enter":
		t, ok := m.Selected()
		if !ok {
			return m, nil
		}
		m.mode = types.ModeDetail
		return m, m.overlays.Push(m.detailFor(t))

	case "?":
		return m, m.overlays.Push(overlay.NewHelpOverlay())

	case "y", "Y":
		t, ok := m.Selected()
		if !ok {
			return m, nil
		}
		copyFn := m.clip.CopyID
		if key == "Y" {
			copyFn = m.clip.CopyReference
		}
		text, err := copyFn(t)
		if err != nil {
			m.logger.Warn("copy failed", "task_id", t.ID, "error", err)
			cmd := m.notify(types.ToastWarning, err.Error())
			return m, cmd
		}
		cmd := m.notify(types.ToastInfo, "Copied "+text)
		return m, cmd

	case "v":
		m.layout = m.layout.Toggle()
		m.syncCursor()
		return m, nil

	case "R":
		if m.scan == nil {
			return m, nil
		}
		return m, m.rescan()
	}

	if m.layout == types.LayoutColumns {
		return m.handleColumnsKey(key), nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleColumnsKey(key string) Model {
	switch key {
	case "j", "down":
		m.cursor = m.cursor.Move(m.columns, 0, 1)
	case "k", "up":
		m.cursor = m.cursor.Move(m.columns, 0, -1)
	case "h", "left":
		m.cursor = m.cursor.Move(m.columns, -1, 0)
	case "l", "right":
		m.cursor = m.cursor.Move(m.columns, 1, 0)
	case "g", "home":
		m.cursor = boardview.Cursor{Column: m.cursor.Column}.Clamp(m.columns)
	case "G", "end":
		if m.cursor.Column < len(m.columns) {
			m.cursor = boardview.Cursor{Column: m.cursor.Column, Task: len(m.columns[m.cursor.Column].Tasks) - 1}.Clamp(m.columns)
		}
	}
	return m
}

// syncCursor carries the selected task across a layout switch
func (m *Model) syncCursor() {
	var (
		t  domain.Task
		ok bool
	)
	if m.layout == types.LayoutColumns {
		if i := m.table.Cursor(); i >= 0 && i < len(m.visible) {
			t, ok = m.visible[i], true
		}
		if !ok {
			return
		}
		for ci, col := range m.columns {
			for ti, other := range col.Tasks {
				if other.ID == t.ID {
					m.cursor = boardview.Cursor{Column: ci, Task: ti}
					return
				}
			}
		}
		return
	}

	if t, ok = boardview.Selected(m.columns, m.cursor); !ok {
		return
	}
	for i, other := range m.visible {
		if other.ID == t.ID {
			m.table.SetCursor(i)
			return
		}
	}
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.filter.SearchQuery = ""
		m.search.Blur()
		m.mode = types.ModeNormal
		m.refresh()
		return m, nil
	case "enter":
		m.search.Blur()
		m.mode = types.ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.filter.SearchQuery = strings.TrimSpace(m.search.Value())
	m.refresh()
	return m, cmd
}

func (m Model) rescan() tea.Cmd {
	scan := m.scan
	return func() tea.Msg {
		b, err := scan(context.Background())
		return scannedMsg{board: b, err: err}
	}
}

// notify appends a toast and starts the expiry ticker when it is the first
func (m *Model) notify(level types.ToastLevel, message string) tea.Cmd {
	m.toasts = append(m.toasts, types.NewToast(level, message, m.now()))
	if len(m.toasts) == 1 {
		return tick()
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// refresh re-applies filter and sort and rebuilds the table rows
func (m *Model) refresh() {
	m.visible = m.sort.Apply(m.filter.Apply(m.board.Tasks()))

	rows := make([]table.Row, 0, len(m.visible))
	for _, t := range m.visible {
		rows = append(rows, table.Row{
			t.ID,
			t.Priority.String(),
			t.Status.Icon() + " " + t.Status.Label(),
			t.Title,
			t.Owner,
			t.SourceFile,
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}

	m.columns = boardview.Group(m.visible)
	m.cursor = m.cursor.Clamp(m.columns)
}

// Visible returns the tasks currently shown, in display order
func (m Model) Visible() []domain.Task {
	return m.visible
}

// Layout returns how the task list is currently drawn
func (m Model) Layout() types.Layout {
	return m.layout
}

// Selected returns the task under the cursor
func (m Model) Selected() (domain.Task, bool) {
	if m.layout == types.LayoutColumns {
		return boardview.Selected(m.columns, m.cursor)
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return domain.Task{}, false
	}
	return m.visible[i], true
}

func (m Model) detailFor(t domain.Task) *overlay.DetailPanel {
	deps := make([]overlay.Dependency, 0, len(t.DependsOn))
	for _, id := range t.DependsOn {
		dep, ok := m.board.Registry.Get(id)
		if !ok {
			deps = append(deps, overlay.Dependency{ID: id, Missing: true})
			continue
		}
		deps = append(deps, overlay.Dependency{ID: id, Status: dep.Status})
	}

	var dependents []string
	for _, other := range m.board.Tasks() {
		for _, id := range other.DependsOn {
			if id == t.ID {
				dependents = append(dependents, other.ID)
				break
			}
		}
	}
	return overlay.NewDetailPanel(t, deps, dependents)
}

func nextSortField(current domain.SortField) domain.SortField {
	for i, f := range sortCycle {
		if f == current {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[0]
}

func columns(width int) []table.Column {
	fixed := idWidth + priorityWidth + statusWidth + ownerWidth + fileWidth + 12
	return []table.Column{
		{Title: "ID", Width: idWidth},
		{Title: "Pri", Width: priorityWidth},
		{Title: "Status", Width: statusWidth},
		{Title: "Title", Width: max(width-fixed, minTitleWidth)},
		{Title: "Owner", Width: ownerWidth},
		{Title: "File", Width: fileWidth},
	}
}

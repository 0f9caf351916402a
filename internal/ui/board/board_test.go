package board

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/todoboard/internal/domain"
	"github.com/riordanpawley/todoboard/internal/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(id string, status domain.Status, priority domain.Priority) domain.Task {
	return domain.Task{
		ID:       id,
		Title:    "Task " + id,
		Status:   status,
		Priority: priority,
		Owner:    domain.OwnerUnassigned,
	}
}

func sampleTasks() []domain.Task {
	return []domain.Task{
		task("ABC-001", domain.StatusCompleted, domain.P1),
		task("ABC-002", domain.StatusNotStarted, domain.P0),
		task("ABC-003", domain.StatusBlocked, domain.P2),
		task("ABC-004", domain.StatusReady, domain.P1),
		task("ABC-005", domain.StatusInProgress, domain.P3),
	}
}

func ids(tasks []domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestGroup(t *testing.T) {
	columns := Group(sampleTasks())
	require.Len(t, columns, 4)

	assert.Equal(t, "To Do", columns[0].Title)
	assert.Equal(t, []string{"ABC-002", "ABC-004"}, ids(columns[0].Tasks))
	assert.Equal(t, []string{"ABC-005"}, ids(columns[1].Tasks))
	assert.Equal(t, []string{"ABC-003"}, ids(columns[2].Tasks))
	assert.Equal(t, []string{"ABC-001"}, ids(columns[3].Tasks))
}

func TestGroup_Empty(t *testing.T) {
	columns := Group(nil)
	require.Len(t, columns, len(Lanes))
	for _, col := range columns {
		assert.Empty(t, col.Tasks)
	}
}

func TestCursor_Move(t *testing.T) {
	columns := Group(sampleTasks())

	tests := []struct {
		name   string
		start  Cursor
		dc, dt int
		want   Cursor
	}{
		{name: "down within column", start: Cursor{0, 0}, dt: 1, want: Cursor{0, 1}},
		{name: "down past end stays", start: Cursor{0, 1}, dt: 1, want: Cursor{0, 1}},
		{name: "up past top stays", start: Cursor{0, 0}, dt: -1, want: Cursor{0, 0}},
		{name: "right clamps task index", start: Cursor{0, 1}, dc: 1, want: Cursor{1, 0}},
		{name: "left of first column", start: Cursor{0, 0}, dc: -1, want: Cursor{0, 0}},
		{name: "right of last column", start: Cursor{3, 0}, dc: 1, want: Cursor{3, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.Move(columns, tt.dc, tt.dt))
		})
	}
}

func TestCursor_ClampEmptyColumn(t *testing.T) {
	columns := Group([]domain.Task{task("ABC-001", domain.StatusBlocked, domain.P2)})

	c := Cursor{Column: 0, Task: 4}.Clamp(columns)
	assert.Equal(t, Cursor{Column: 0, Task: 0}, c)

	_, ok := Selected(columns, c)
	assert.False(t, ok)
	assert.Equal(t, Cursor{}, Cursor{Column: 2, Task: 1}.Clamp(nil))
}

func TestSelected(t *testing.T) {
	columns := Group(sampleTasks())

	got, ok := Selected(columns, Cursor{Column: 0, Task: 1})
	require.True(t, ok)
	assert.Equal(t, "ABC-004", got.ID)

	_, ok = Selected(columns, Cursor{Column: 9})
	assert.False(t, ok)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		cursor Cursor
		width  int
		height int
	}{
		{name: "cursor at origin", cursor: Cursor{0, 0}, width: 120, height: 30},
		{name: "cursor in done column", cursor: Cursor{3, 0}, width: 120, height: 30},
		{name: "narrow terminal", cursor: Cursor{0, 1}, width: 96, height: 24},
		{name: "short terminal", cursor: Cursor{0, 1}, width: 100, height: 6},
	}

	s := styles.New()
	columns := Group(sampleTasks())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(columns, tt.cursor, s, tt.width, tt.height)

			assert.LessOrEqual(t, lipgloss.Width(got), tt.width)
			assert.LessOrEqual(t, lipgloss.Height(got), tt.height)

			plain := ansi.Strip(got)
			for _, title := range []string{"To Do (2)", "In Progress (1)", "Blocked (1)", "Done (1)"} {
				assert.Contains(t, plain, title)
			}

			selected, ok := Selected(columns, tt.cursor)
			require.True(t, ok)
			assert.Contains(t, plain, "▶Task "+selected.ID)
			assert.Equal(t, 1, strings.Count(plain, "▶"))
		})
	}
}

func TestRender_ScrollsToCursor(t *testing.T) {
	var tasks []domain.Task
	for _, id := range []string{"ABC-001", "ABC-002", "ABC-003", "ABC-004", "ABC-005", "ABC-006"} {
		tasks = append(tasks, task(id, domain.StatusNotStarted, domain.P2))
	}
	columns := Group(tasks)

	// room for two cards below the header
	got := ansi.Strip(Render(columns, Cursor{Column: 0, Task: 5}, styles.New(), 120, 9))

	assert.Contains(t, got, "▶Task ABC-006")
	assert.Contains(t, got, "Task ABC-005")
	assert.NotContains(t, got, "Task ABC-001")
}

func TestRender_EmptyColumn(t *testing.T) {
	got := ansi.Strip(Render(Group(nil), Cursor{}, styles.New(), 120, 10))
	assert.Contains(t, got, "(empty)")
	assert.Empty(t, Render(nil, Cursor{}, styles.New(), 120, 10))
}

func TestRenderCard(t *testing.T) {
	s := styles.New()
	tk := task("ABC-002", domain.StatusNotStarted, domain.P0)
	tk.Title = "A very long task title that will certainly not fit on one card"

	got := RenderCard(tk, false, 24, s)
	plain := ansi.Strip(got)

	assert.Equal(t, cardHeight, lipgloss.Height(got))
	assert.LessOrEqual(t, lipgloss.Width(got), 26)
	assert.Contains(t, plain, "…")
	assert.Contains(t, plain, "P0")
	assert.NotContains(t, plain, "▶")

	assert.Contains(t, ansi.Strip(RenderCard(tk, true, 24, s)), "▶")
}

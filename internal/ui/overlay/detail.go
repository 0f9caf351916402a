package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/todoboard/internal/domain"
	"github.com/riordanpawley/todoboard/internal/ui/styles"
)

// Dependency is one outgoing reference of a task as resolved on the board
type Dependency struct {
	ID      string
	Status  domain.Status
	Missing bool
}

// DetailPanel displays a task's fields, its dependencies and the tasks
// waiting on it
type DetailPanel struct {
	task       domain.Task
	deps       []Dependency
	dependents []string
	scrollY    int
	viewHeight int
	styles     *Styles
	theme      *styles.Styles
}

// NewDetailPanel creates a new detail panel for the given task
func NewDetailPanel(task domain.Task, deps []Dependency, dependents []string) *DetailPanel {
	return &DetailPanel{
		task:       task,
		deps:       deps,
		dependents: dependents,
		viewHeight: 20,
		styles:     New(),
		theme:      styles.New(),
	}
}

// Init initializes the detail panel
func (d *DetailPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *DetailPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "enter":
			return d, closeCmd
		case "j", "down":
			d.scrollY = min(d.scrollY+1, d.maxScroll())
		case "k", "up":
			d.scrollY = max(d.scrollY-1, 0)
		case "g":
			d.scrollY = 0
		case "G":
			d.scrollY = d.maxScroll()
		}
	}
	return d, nil
}

// View renders the detail panel
func (d *DetailPanel) View() string {
	lines := d.lines()
	end := min(d.scrollY+d.viewHeight, len(lines))
	view := strings.Join(lines[d.scrollY:end], "\n")

	if d.maxScroll() > 0 {
		view += "\n" + d.styles.Footer.Render(fmt.Sprintf("[j/k to scroll] (line %d/%d)", d.scrollY+1, len(lines)))
	}
	return view
}

func (d *DetailPanel) lines() []string {
	t := d.task
	lines := []string{
		d.styles.Header.Render(fmt.Sprintf("[%s] %s", t.ID, t.Title)),
		"",
		d.field("Status", d.theme.Status(t.Status).Render(t.Status.Icon()+" "+t.Status.Label())),
		d.field("Priority", d.theme.Priority(t.Priority).Render(t.Priority.String())),
		d.field("Owner", d.styles.Value.Render(t.Owner)),
		d.field("Effort", d.styles.Value.Render(dash(t.Effort))),
		d.field("File", d.styles.Value.Render(t.SourceFile)),
		"",
		d.styles.Header.Render(fmt.Sprintf("Depends on (%d)", len(d.deps))),
	}

	if len(d.deps) == 0 {
		lines = append(lines, "  "+d.styles.Footer.UnsetMarginTop().Render("nothing"))
	}
	for _, dep := range d.deps {
		if dep.Missing {
			lines = append(lines, "  ❓ "+d.styles.Missing.Render(dep.ID+" (not found)"))
			continue
		}
		lines = append(lines, "  "+dep.Status.Icon()+" "+d.theme.Status(dep.Status).Render(dep.ID))
	}

	if len(d.dependents) > 0 {
		lines = append(lines, "", d.styles.Header.Render(fmt.Sprintf("Needed by (%d)", len(d.dependents))))
		for _, id := range d.dependents {
			lines = append(lines, "  "+d.styles.Value.Render(id))
		}
	}
	return lines
}

func (d *DetailPanel) field(label, value string) string {
	return d.styles.Label.Render(label+":") + "  " + value
}

// Title returns the overlay title
func (d *DetailPanel) Title() string {
	return "Task Details"
}

// Size returns the overlay dimensions
func (d *DetailPanel) Size() (width, height int) {
	return 70, d.viewHeight + 6
}

func (d *DetailPanel) maxScroll() int {
	return max(0, len(d.lines())-d.viewHeight)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

package graph

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/riordanpawley/todoboard/internal/core/board"
	"github.com/riordanpawley/todoboard/internal/domain"
)

//go:embed templates/board.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/board.html.tmpl"))

type badge struct {
	Class string
	Text  string
}

var badges = map[domain.Status]badge{
	domain.StatusCompleted:  {Class: "done", Text: "✅ Done"},
	domain.StatusNotStarted: {Class: "todo", Text: "📋 Todo"},
	domain.StatusInProgress: {Class: "wip", Text: "🔄 WIP"},
	domain.StatusBlocked:    {Class: "blocked", Text: "🔴 Blocked"},
	domain.StatusReady:      {Class: "ready", Text: "🟢 Ready"},
}

type row struct {
	domain.Task
	Badge badge
	Deps  string
}

type page struct {
	Stats    domain.BoardStats
	Progress string
	Missing  int
	Mermaid  string
	Rows     []row
}

// HTML renders the board as a standalone page with a dependency graph tab
// and a filterable task table
func HTML(b *board.Board) ([]byte, error) {
	tasks := domain.SortByPriorityThenID(b.Tasks())
	rows := make([]row, 0, len(tasks))
	for _, t := range tasks {
		bg, ok := badges[t.Status]
		if !ok {
			bg = badge{Text: string(t.Status)}
		}
		deps := strings.Join(t.DependsOn, ", ")
		if deps == "" {
			deps = "—"
		}
		rows = append(rows, row{Task: t, Badge: bg, Deps: deps})
	}

	data := page{
		Stats:    b.Stats,
		Progress: fmt.Sprintf("%.1f", b.Stats.PercentDone()),
		Missing:  len(b.Stats.MissingDeps),
		Mermaid:  Mermaid(b),
		Rows:     rows,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render board page: %w", err)
	}
	return buf.Bytes(), nil
}

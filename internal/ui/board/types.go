package board

import "github.com/riordanpawley/todoboard/internal/domain"

// Column is one status lane of the columns layout
type Column struct {
	Title    string
	Statuses []domain.Status
	Tasks    []domain.Task
}

// Cursor is the selected card: a column index and a task index within it
type Cursor struct {
	Column int
	Task   int
}

// Lanes are the columns in display order. Ready and not started share the
// first lane since both are actionable.
var Lanes = []Column{
	{Title: "To Do", Statuses: []domain.Status{domain.StatusReady, domain.StatusNotStarted}},
	{Title: "In Progress", Statuses: []domain.Status{domain.StatusInProgress}},
	{Title: "Blocked", Statuses: []domain.Status{domain.StatusBlocked}},
	{Title: "Done", Statuses: []domain.Status{domain.StatusCompleted}},
}

// Group distributes tasks over the lanes, keeping their order within each
func Group(tasks []domain.Task) []Column {
	columns := make([]Column, len(Lanes))
	lane := make(map[domain.Status]int)
	for i, l := range Lanes {
		columns[i] = Column{Title: l.Title, Statuses: l.Statuses}
		for _, s := range l.Statuses {
			lane[s] = i
		}
	}
	for _, t := range tasks {
		i, ok := lane[t.Status]
		if !ok {
			i = 0
		}
		columns[i].Tasks = append(columns[i].Tasks, t)
	}
	return columns
}

// Clamp keeps the cursor on an existing card, or at the top of an empty column
func (c Cursor) Clamp(columns []Column) Cursor {
	if len(columns) == 0 {
		return Cursor{}
	}
	c.Column = min(max(c.Column, 0), len(columns)-1)
	c.Task = min(max(c.Task, 0), max(len(columns[c.Column].Tasks)-1, 0))
	return c
}

// Move shifts the cursor by dc columns and dt tasks
func (c Cursor) Move(columns []Column, dc, dt int) Cursor {
	return Cursor{Column: c.Column + dc, Task: c.Task + dt}.Clamp(columns)
}

// Selected returns the task under the cursor
func Selected(columns []Column, c Cursor) (domain.Task, bool) {
	if c.Column < 0 || c.Column >= len(columns) {
		return domain.Task{}, false
	}
	tasks := columns[c.Column].Tasks
	if c.Task < 0 || c.Task >= len(tasks) {
		return domain.Task{}, false
	}
	return tasks[c.Task], true
}

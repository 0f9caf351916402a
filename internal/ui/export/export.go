// Package export writes machine-readable JSON views of a board
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/riordanpawley/todoboard/internal/core/board"
	"github.com/riordanpawley/todoboard/internal/domain"
)

// BoardDocument is the full dump: every task keyed by ID plus the stats
type BoardDocument struct {
	Tasks map[string]domain.Task `json:"tasks"`
	Stats domain.BoardStats      `json:"stats"`
}

// ReadyTask is the subset of task fields published for assignment
type ReadyTask struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Priority   domain.Priority `json:"priority"`
	Owner      string          `json:"owner"`
	Effort     string          `json:"effort"`
	DependsOn  []string        `json:"depends_on"`
	SourceFile string          `json:"source_file"`
}

// ReadyDocument lists actionable tasks in ready-set order
type ReadyDocument struct {
	ReadyCount int         `json:"ready_count"`
	Tasks      []ReadyTask `json:"tasks"`
}

// NewBoardDocument builds the full dump for a resolved board
func NewBoardDocument(b *board.Board) BoardDocument {
	tasks := make(map[string]domain.Task, b.Registry.Len())
	for _, t := range b.Tasks() {
		tasks[t.ID] = t
	}
	stats := b.Stats
	if stats.MissingDeps == nil {
		stats.MissingDeps = []domain.MissingDep{}
	}
	return BoardDocument{Tasks: tasks, Stats: stats}
}

// NewReadyDocument builds the ready listing from an already ordered ready set
func NewReadyDocument(ready []domain.Task) ReadyDocument {
	tasks := make([]ReadyTask, 0, len(ready))
	for _, t := range ready {
		deps := t.DependsOn
		if deps == nil {
			deps = []string{}
		}
		tasks = append(tasks, ReadyTask{
			ID:         t.ID,
			Title:      t.Title,
			Priority:   t.Priority,
			Owner:      t.Owner,
			Effort:     t.Effort,
			DependsOn:  deps,
			SourceFile: t.SourceFile,
		})
	}
	return ReadyDocument{ReadyCount: len(tasks), Tasks: tasks}
}

// WriteBoard writes the full dump as indented JSON
func WriteBoard(w io.Writer, b *board.Board) error {
	return write(w, NewBoardDocument(b))
}

// WriteReady writes the ready listing as indented JSON
func WriteReady(w io.Writer, ready []domain.Task) error {
	return write(w, NewReadyDocument(ready))
}

func write(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Package board merges parsed TODO documents into one registry and resolves
// cross-file dependencies.
//
// The pipeline runs in two passes:
//
//	Pass 1: discover files, parse each into tasks, merge (first ID wins)
//	Pass 2: rewrite short-form references, record missing references,
//	        auto-block tasks with incomplete dependencies, tally stats
//
// Auto-blocking is a single pass with no transitive closure and no cycle
// detection. A task blocked only because its dependency was itself blocked in
// this pass stays blocked; nothing is ever unblocked.
package board

import (
	"context"
	"log/slog"

	"github.com/riordanpawley/todoboard/internal/domain"
)

// Registry holds tasks keyed by ID, iterated in first-seen order
type Registry struct {
	order []string
	tasks map[string]*domain.Task
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{tasks: make(map[string]*domain.Task)}
}

// Add inserts task unless its ID is taken. On collision it returns the task
// already held and false.
func (r *Registry) Add(task domain.Task) (domain.Task, bool) {
	if existing, ok := r.tasks[task.ID]; ok {
		return *existing, false
	}
	t := task
	r.tasks[task.ID] = &t
	r.order = append(r.order, task.ID)
	return task, true
}

// Get returns a copy of the task with the given ID
func (r *Registry) Get(id string) (domain.Task, bool) {
	t, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, false
	}
	return *t, true
}

// Has reports whether id names a task in the registry
func (r *Registry) Has(id string) bool {
	_, ok := r.tasks[id]
	return ok
}

// Len returns the number of tasks
func (r *Registry) Len() int {
	return len(r.order)
}

// IDs returns task IDs in insertion order
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Tasks returns copies of all tasks in insertion order
func (r *Registry) Tasks() []domain.Task {
	tasks := make([]domain.Task, 0, len(r.order))
	for _, id := range r.order {
		tasks = append(tasks, *r.tasks[id])
	}
	return tasks
}

// each visits stored tasks in order; fn may modify them
func (r *Registry) each(fn func(t *domain.Task)) {
	for _, id := range r.order {
		fn(r.tasks[id])
	}
}

// ParseFunc parses one document given its path relative to the scan root
type ParseFunc func(rel string) ([]domain.Task, error)

// Merge parses files in order and combines their tasks. A file that fails to
// parse is logged and contributes nothing. On a duplicate ID the first task is
// kept, whether the duplicate comes from the same file or a later one.
// Cancellation is checked between files.
func Merge(ctx context.Context, files []string, parse ParseFunc, logger *slog.Logger) (*Registry, error) {
	reg := NewRegistry()

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tasks, err := parse(rel)
		if err != nil {
			logger.Error("failed to parse document", "path", rel, "error", err)
			continue
		}

		for _, task := range tasks {
			if kept, added := reg.Add(task); !added {
				logger.Warn("duplicate task ID",
					"task_id", task.ID,
					"kept", kept.SourceFile,
					"discarded", task.SourceFile)
			}
		}
	}

	return reg, nil
}

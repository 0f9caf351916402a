package domain

import "strings"

// Filter represents task filtering state
type Filter struct {
	Status      map[Status]bool
	Priority    map[Priority]bool
	SourceFile  string
	ReadyOnly   bool
	SearchQuery string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{
		Status:   make(map[Status]bool),
		Priority: make(map[Priority]bool),
	}
}

// IsActive returns true if any filter is active
func (f *Filter) IsActive() bool {
	return len(f.Status) > 0 ||
		len(f.Priority) > 0 ||
		f.SourceFile != "" ||
		f.ReadyOnly ||
		f.SearchQuery != ""
}

// Apply filters a list of tasks
func (f *Filter) Apply(tasks []Task) []Task {
	if !f.IsActive() {
		return tasks
	}

	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}

// Matches returns true if the task passes all active filters
// Uses AND logic between filter types, OR logic within filter types
func (f *Filter) Matches(t Task) bool {
	if len(f.Status) > 0 && !f.Status[t.Status] {
		return false
	}

	if len(f.Priority) > 0 && !f.Priority[t.Priority] {
		return false
	}

	if f.SourceFile != "" && t.SourceFile != f.SourceFile {
		return false
	}

	if f.ReadyOnly && t.Status != StatusNotStarted && t.Status != StatusReady {
		return false
	}

	if f.SearchQuery != "" {
		query := strings.ToLower(f.SearchQuery)
		haystack := strings.ToLower(strings.Join([]string{t.ID, t.Title, t.Owner, t.SourceFile}, "\x00"))
		if !strings.Contains(haystack, query) {
			return false
		}
	}

	return true
}

// Clear resets all filters
func (f *Filter) Clear() {
	f.Status = make(map[Status]bool)
	f.Priority = make(map[Priority]bool)
	f.SourceFile = ""
	f.ReadyOnly = false
	f.SearchQuery = ""
}

// ToggleStatus toggles a status filter
func (f *Filter) ToggleStatus(s Status) {
	if f.Status[s] {
		delete(f.Status, s)
	} else {
		f.Status[s] = true
	}
}

// TogglePriority toggles a priority filter
func (f *Filter) TogglePriority(p Priority) {
	if f.Priority[p] {
		delete(f.Priority, p)
	} else {
		f.Priority[p] = true
	}
}

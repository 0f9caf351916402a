package domain

import "sort"

// SortField represents a field to sort by
type SortField string

const (
	SortByPriority SortField = "priority"
	SortByID       SortField = "id"
	SortByStatus   SortField = "status"
)

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// Sort represents sorting state
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction
// If field is different, sets new field with ascending order
// If field is same, toggles between ascending and descending
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
	} else {
		s.Field = field
		s.Order = SortAsc
	}
}

// Apply sorts a copy of tasks; ties always fall back to ascending ID
func (s *Sort) Apply(tasks []Task) []Task {
	if len(tasks) == 0 {
		return tasks
	}

	result := make([]Task, len(tasks))
	copy(result, tasks)

	less := func(a, b Task) int {
		switch s.Field {
		case SortByPriority:
			return a.Priority.Rank() - b.Priority.Rank()
		case SortByStatus:
			return statusOrder(a.Status) - statusOrder(b.Status)
		default:
			return 0
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		c := less(result[i], result[j])
		if c == 0 {
			if s.Order == SortDesc && s.Field == SortByID {
				return result[i].ID > result[j].ID
			}
			return result[i].ID < result[j].ID
		}
		if s.Order == SortDesc {
			return c > 0
		}
		return c < 0
	})

	return result
}

// SortByPriorityThenID returns a copy of tasks ordered by (priority rank, id)
func SortByPriorityThenID(tasks []Task) []Task {
	s := Sort{Field: SortByPriority, Order: SortAsc}
	return s.Apply(tasks)
}

// statusOrder places actionable work first: ready, todo, wip, blocked, done
func statusOrder(status Status) int {
	switch status {
	case StatusReady:
		return 0
	case StatusNotStarted:
		return 1
	case StatusInProgress:
		return 2
	case StatusBlocked:
		return 3
	case StatusCompleted:
		return 4
	default:
		return 5
	}
}

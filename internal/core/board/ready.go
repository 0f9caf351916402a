package board

import "github.com/riordanpawley/todoboard/internal/domain"

// Ready returns the actionable tasks: status not_started or ready, ordered by
// priority then ID. After Resolve every dependency of such a task is completed
// or missing.
func Ready(reg *Registry) []domain.Task {
	var ready []domain.Task
	for _, t := range reg.Tasks() {
		if IsActionable(t) {
			ready = append(ready, t)
		}
	}
	if ready == nil {
		return []domain.Task{}
	}
	return domain.SortByPriorityThenID(ready)
}

// IsActionable reports whether a resolved task can be picked up now
func IsActionable(t domain.Task) bool {
	return t.Status == domain.StatusNotStarted || t.Status == domain.StatusReady
}

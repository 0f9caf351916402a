package board

import (
	"strings"

	"github.com/riordanpawley/todoboard/internal/domain"
)

// DefaultShortIDPrefix is stripped from IDs to build the short-form index, so
// a reference to WLB002 resolves to TODO-WLB002
const DefaultShortIDPrefix = "TODO-"

// ResolveOptions configures dependency resolution
type ResolveOptions struct {
	// ShortIDPrefix enables short-form references; empty disables them
	ShortIDPrefix string
}

// Resolve wires dependencies across the registry in place and returns the
// board statistics.
//
// Steps, each over the registry in insertion order:
//  1. Rewrite references that are not task IDs but match a short form.
//  2. Record each reference naming no task, once per (task, reference) pair,
//     then block any task that is neither completed nor blocked and depends on
//     an existing task that is not completed.
//  3. Tally status buckets and pending P0/P1 counts.
//
// Step 2 only ever produces blocked, and blocked is not completed, so the
// outcome does not depend on the order tasks are visited in.
func Resolve(reg *Registry, opts ResolveOptions) domain.BoardStats {
	short := shortIndex(reg, opts.ShortIDPrefix)

	reg.each(func(t *domain.Task) {
		deps := make([]string, 0, len(t.DependsOn))
		for _, dep := range t.DependsOn {
			if !reg.Has(dep) {
				if full, ok := short[dep]; ok {
					dep = full
				}
			}
			deps = append(deps, dep)
		}
		t.DependsOn = deps
	})

	stats := domain.BoardStats{
		Total:       reg.Len(),
		MissingDeps: []domain.MissingDep{},
	}

	reg.each(func(t *domain.Task) {
		seen := make(map[string]bool, len(t.DependsOn))
		for _, dep := range t.DependsOn {
			if !reg.Has(dep) && !seen[dep] {
				seen[dep] = true
				stats.MissingDeps = append(stats.MissingDeps, domain.MissingDep{TaskID: t.ID, DepID: dep})
			}
		}

		if t.Status == domain.StatusCompleted || t.Status == domain.StatusBlocked {
			return
		}
		for _, dep := range t.DependsOn {
			if d, ok := reg.tasks[dep]; ok && d.Status != domain.StatusCompleted {
				t.Status = domain.StatusBlocked
				return
			}
		}
	})

	reg.each(func(t *domain.Task) {
		switch t.Status {
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusBlocked:
			stats.Blocked++
		case domain.StatusInProgress:
			stats.InProgress++
		case domain.StatusReady:
			stats.Ready++
		default:
			stats.NotStarted++
		}

		if t.Status == domain.StatusCompleted {
			return
		}
		switch t.Priority {
		case domain.P0:
			stats.P0Pending++
		case domain.P1:
			stats.P1Pending++
		}
	})

	return stats
}

// shortIndex maps ID-without-prefix to ID for every ID carrying the prefix
func shortIndex(reg *Registry, prefix string) map[string]string {
	index := make(map[string]string)
	if prefix == "" {
		return index
	}
	for _, id := range reg.order {
		if rest, ok := strings.CutPrefix(id, prefix); ok {
			index[rest] = id
		}
	}
	return index
}

package markdown

import (
	"regexp"
	"strings"

	"github.com/riordanpawley/todoboard/internal/domain"
)

type statusSynonym struct {
	key    string
	status domain.Status
}

// statusSynonyms is searched in order; the substring fallback takes the first key
// contained in the input, so the family order below is significant.
var statusSynonyms = []statusSynonym{
	{"completed", domain.StatusCompleted},
	{"done", domain.StatusCompleted},
	{"complete", domain.StatusCompleted},
	{"✅", domain.StatusCompleted},
	{"✅ completed", domain.StatusCompleted},

	{"not_started", domain.StatusNotStarted},
	{"not started", domain.StatusNotStarted},
	{"pending", domain.StatusNotStarted},
	{"todo", domain.StatusNotStarted},
	{"⬜", domain.StatusNotStarted},

	{"in_progress", domain.StatusInProgress},
	{"in progress", domain.StatusInProgress},
	{"wip", domain.StatusInProgress},
	{"🔄", domain.StatusInProgress},

	{"blocked", domain.StatusBlocked},
	{"⏸️", domain.StatusBlocked},
	{"⏸", domain.StatusBlocked},

	{"ready", domain.StatusReady},
	{"🟢", domain.StatusReady},
}

// titleMarkers are stripped from titles; compound markers precede their parts
var titleMarkers = []string{"✅ COMPLETED", "✅COMPLETED", "COMPLETED", "✅", "⬜", "🔄", "⏸️", "⏸"}

var noDependency = map[string]bool{
	"none": true,
	"n/a":  true,
	"-":    true,
	"na":   true,
	"":     true,
}

var priorityRegex = regexp.MustCompile(`^P[0-3]$`)

// NormalizeStatus maps free-form status text to a canonical status.
// Unknown or empty input yields not_started.
func NormalizeStatus(raw string) domain.Status {
	if raw == "" {
		return domain.StatusNotStarted
	}
	low := strings.TrimSpace(strings.ToLower(raw))
	for _, syn := range statusSynonyms {
		if low == syn.key {
			return syn.status
		}
	}
	for _, syn := range statusSynonyms {
		if strings.Contains(low, syn.key) {
			return syn.status
		}
	}
	return domain.StatusNotStarted
}

// StatusFromTitle infers a status from glyphs in a header title, or "" if none
func StatusFromTitle(title string) string {
	switch {
	case strings.Contains(title, "✅") || strings.Contains(strings.ToUpper(title), "COMPLETED"):
		return string(domain.StatusCompleted)
	case strings.Contains(title, "⬜"):
		return string(domain.StatusNotStarted)
	case strings.Contains(title, "🔄"):
		return string(domain.StatusInProgress)
	case strings.Contains(title, "⏸"):
		return string(domain.StatusBlocked)
	default:
		return ""
	}
}

// CleanTitle strips status markers from a header title
func CleanTitle(title string) string {
	for _, marker := range titleMarkers {
		title = strings.ReplaceAll(title, marker, "")
	}
	return strings.TrimSpace(title)
}

// TruncateRunes cuts s to at most n runes
func TruncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// NormalizePriority validates a priority code, falling back to P2
func NormalizePriority(raw string) domain.Priority {
	p := strings.ToUpper(strings.TrimSpace(raw))
	if priorityRegex.MatchString(p) {
		return domain.Priority(p)
	}
	return domain.DefaultPriority
}

// IsNoDependency reports whether s is a "no dependency" sentinel (none, n/a, -, na, empty)
func IsNoDependency(s string) bool {
	return noDependency[strings.ToLower(strings.TrimSpace(s))]
}

// NormalizeDeps converts a raw dependency value to an ordered ID list
func NormalizeDeps(v Value) []string {
	if v.IsList {
		deps := make([]string, 0, len(v.Items))
		for _, d := range v.Items {
			if d = strings.TrimSpace(d); d != "" {
				deps = append(deps, d)
			}
		}
		return deps
	}
	if IsNoDependency(v.Text) {
		return []string{}
	}
	return FindIDs(v.Text)
}

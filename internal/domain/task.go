package domain

import (
	"encoding/json"
	"fmt"
)

// OwnerUnassigned is the owner recorded when a task names nobody
const OwnerUnassigned = "unassigned"

// TitleMaxRunes is the stored title length limit
const TitleMaxRunes = 60

// Task represents one unit of work parsed from a TODO document
type Task struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Status     Status   `json:"status"`
	Priority   Priority `json:"priority"`
	Owner      string   `json:"owner"`
	DependsOn  []string `json:"depends_on"`
	SourceFile string   `json:"source_file"`
	Effort     string   `json:"effort"`
}

// IsComplete reports whether the task is completed
func (t Task) IsComplete() bool {
	return t.Status == StatusCompleted
}

// Status represents task status
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusReady      Status = "ready"
	StatusCompleted  Status = "completed"
)

// AllStatuses lists the canonical statuses in display order
var AllStatuses = []Status{
	StatusCompleted,
	StatusReady,
	StatusNotStarted,
	StatusInProgress,
	StatusBlocked,
}

// Valid reports whether s is one of the canonical statuses
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusBlocked, StatusReady, StatusCompleted:
		return true
	default:
		return false
	}
}

// Label returns the short upper-case label used in tables
func (s Status) Label() string {
	switch s {
	case StatusNotStarted:
		return "TODO"
	case StatusInProgress:
		return "WIP"
	case StatusBlocked:
		return "BLOCKED"
	case StatusReady:
		return "READY"
	case StatusCompleted:
		return "DONE"
	default:
		return string(s)
	}
}

// Icon returns a unicode icon for the status
func (s Status) Icon() string {
	switch s {
	case StatusNotStarted:
		return "📋"
	case StatusInProgress:
		return "🔄"
	case StatusBlocked:
		return "🔴"
	case StatusReady:
		return "🟢"
	case StatusCompleted:
		return "✅"
	default:
		return "?"
	}
}

// String returns the display string
func (s Status) String() string {
	return string(s)
}

// Priority represents task priority (P0 = highest)
type Priority string

const (
	P0 Priority = "P0" // Critical
	P1 Priority = "P1" // High
	P2 Priority = "P2" // Medium
	P3 Priority = "P3" // Low
)

// DefaultPriority is used when a document gives no usable priority
const DefaultPriority = P2

// AllPriorities lists the priorities from most to least urgent
var AllPriorities = []Priority{P0, P1, P2, P3}

// Rank returns the sort rank of the priority; unknown priorities sort last
func (p Priority) Rank() int {
	switch p {
	case P0:
		return 0
	case P1:
		return 1
	case P2:
		return 2
	case P3:
		return 3
	default:
		return 9
	}
}

// Icon returns the coloured dot used for the priority in graphs
func (p Priority) Icon() string {
	switch p {
	case P0:
		return "🔴"
	case P1:
		return "🟠"
	case P2:
		return "🟢"
	case P3:
		return "⚪"
	default:
		return ""
	}
}

// String returns priority as string
func (p Priority) String() string {
	return string(p)
}

// MissingDep is a dependency reference that names no task in the registry
type MissingDep struct {
	TaskID string
	DepID  string
}

// MarshalJSON encodes the pair as ["TASK", "DEP"]
func (m MissingDep) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{m.TaskID, m.DepID})
}

// UnmarshalJSON decodes a ["TASK", "DEP"] pair
func (m *MissingDep) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("missing dependency: want 2 elements, got %d", len(pair))
	}
	m.TaskID, m.DepID = pair[0], pair[1]
	return nil
}

// BoardStats holds aggregate counts derived from a resolved registry
type BoardStats struct {
	Total          int          `json:"total"`
	Completed      int          `json:"completed"`
	InProgress     int          `json:"in_progress"`
	Blocked        int          `json:"blocked"`
	NotStarted     int          `json:"not_started"`
	Ready          int          `json:"ready"`
	P0Pending      int          `json:"p0_pending"`
	P1Pending      int          `json:"p1_pending"`
	MissingDeps    []MissingDep `json:"missing_deps"`
	FilesScanned   int          `json:"files_scanned"`
	FilesWithTasks int          `json:"files_with_tasks"`
}

// PercentDone returns the completed share of all tasks as a percentage
func (s BoardStats) PercentDone() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

// CountFor returns the bucket count for a status
func (s BoardStats) CountFor(status Status) int {
	switch status {
	case StatusCompleted:
		return s.Completed
	case StatusInProgress:
		return s.InProgress
	case StatusBlocked:
		return s.Blocked
	case StatusReady:
		return s.Ready
	default:
		return s.NotStarted
	}
}

// FileProgress summarises completion for one source file
type FileProgress struct {
	File  string `json:"file"`
	Done  int    `json:"done"`
	Total int    `json:"total"`
}

// Percent returns the completed share of the file's tasks
func (f FileProgress) Percent() float64 {
	if f.Total == 0 {
		return 0
	}
	return float64(f.Done) / float64(f.Total) * 100
}

package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Valid(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusNotStarted, true},
		{StatusInProgress, true},
		{StatusBlocked, true},
		{StatusReady, true},
		{StatusCompleted, true},
		{Status("done"), false},
		{Status(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.want {
				t.Errorf("Status.Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "TODO", StatusNotStarted.Label())
	assert.Equal(t, "WIP", StatusInProgress.Label())
	assert.Equal(t, "BLOCKED", StatusBlocked.Label())
	assert.Equal(t, "READY", StatusReady.Label())
	assert.Equal(t, "DONE", StatusCompleted.Label())
	assert.Equal(t, "weird", Status("weird").Label())
}

func TestPriority_Rank(t *testing.T) {
	tests := []struct {
		priority Priority
		want     int
	}{
		{P0, 0},
		{P1, 1},
		{P2, 2},
		{P3, 3},
		{Priority("P4"), 9},
		{Priority(""), 9},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := tt.priority.Rank(); got != tt.want {
				t.Errorf("Priority.Rank() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMissingDep_JSONPair(t *testing.T) {
	stats := BoardStats{
		Total:       1,
		MissingDeps: []MissingDep{{TaskID: "ABC-001", DepID: "X-001"}},
	}

	data, err := json.Marshal(stats)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"missing_deps":[["ABC-001","X-001"]]`)

	var decoded BoardStats
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, stats.MissingDeps, decoded.MissingDeps)
}

func TestMissingDep_UnmarshalRejectsWrongArity(t *testing.T) {
	var m MissingDep
	err := json.Unmarshal([]byte(`["only-one"]`), &m)
	require.Error(t, err)
}

func TestBoardStats_PercentDone(t *testing.T) {
	assert.Equal(t, 0.0, BoardStats{}.PercentDone())
	assert.InDelta(t, 25.0, BoardStats{Total: 4, Completed: 1}.PercentDone(), 0.001)
}

func TestBoardStats_CountFor(t *testing.T) {
	stats := BoardStats{Completed: 1, InProgress: 2, Blocked: 3, Ready: 4, NotStarted: 5}

	assert.Equal(t, 1, stats.CountFor(StatusCompleted))
	assert.Equal(t, 2, stats.CountFor(StatusInProgress))
	assert.Equal(t, 3, stats.CountFor(StatusBlocked))
	assert.Equal(t, 4, stats.CountFor(StatusReady))
	assert.Equal(t, 5, stats.CountFor(StatusNotStarted))
}

func TestTask_JSONFieldNames(t *testing.T) {
	task := Task{
		ID:         "TODO-WLB001",
		Title:      "Fix bug",
		Status:     StatusCompleted,
		Priority:   P1,
		Owner:      OwnerUnassigned,
		DependsOn:  []string{},
		SourceFile: "docs/WLB_TODO.md",
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	for _, key := range []string{`"id"`, `"title"`, `"status"`, `"priority"`, `"owner"`, `"depends_on"`, `"source_file"`, `"effort"`} {
		assert.Contains(t, string(data), key)
	}
	assert.True(t, task.IsComplete())
}

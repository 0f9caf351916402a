package markdown

import (
	"strings"
	"testing"

	"github.com/riordanpawley/todoboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstBlock(t *testing.T, content string) Block {
	t.Helper()
	blocks := ScanBlocks(content)
	require.NotEmpty(t, blocks)
	return blocks[0]
}

func TestBuild_StructuredBlock(t *testing.T) {
	block := firstBlock(t, doc(
		"## A-001: Alpha",
		"```yaml",
		"status: done",
		"priority: P1",
		"depends_on: []",
		"```",
	))

	task := Build(block, "a_TODO.md")

	assert.Equal(t, domain.Task{
		ID:         "A-001",
		Title:      "Alpha",
		Status:     domain.StatusCompleted,
		Priority:   domain.P1,
		Owner:      domain.OwnerUnassigned,
		DependsOn:  []string{},
		SourceFile: "a_TODO.md",
	}, task)
}

func TestBuild_LegacyBlock(t *testing.T) {
	block := firstBlock(t, doc(
		"### TODO-WLB002: Deploy ⬜",
		"- **Status:** in progress",
		"- **Priority:** P0",
		"- **Owner:** bob",
		"- **Depends On:** WLB001",
		"- **Effort:** 3h",
	))

	task := Build(block, "TODO/ops.md")

	assert.Equal(t, "TODO-WLB002", task.ID)
	assert.Equal(t, "Deploy", task.Title)
	assert.Equal(t, domain.StatusInProgress, task.Status)
	assert.Equal(t, domain.P0, task.Priority)
	assert.Equal(t, "bob", task.Owner)
	assert.Equal(t, []string{"WLB001"}, task.DependsOn)
	assert.Equal(t, "3h", task.Effort)
}

func TestBuild_StatusFromTitle(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   domain.Status
	}{
		{name: "check mark", header: "## A-001: Setup ✅", want: domain.StatusCompleted},
		{name: "completed word", header: "## A-001: COMPLETED Setup", want: domain.StatusCompleted},
		{name: "spinner", header: "## A-001: 🔄 Setup", want: domain.StatusInProgress},
		{name: "pause", header: "## A-001: Setup ⏸️", want: domain.StatusBlocked},
		{name: "plain", header: "## A-001: Setup", want: domain.StatusNotStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Build(firstBlock(t, tt.header), "x_TODO.md")
			assert.Equal(t, tt.want, task.Status)
			assert.Equal(t, "Setup", task.Title)
		})
	}
}

func TestBuild_MetadataStatusBeatsTitle(t *testing.T) {
	block := firstBlock(t, doc("## A-001: Setup ✅", "**Status:** blocked"))
	assert.Equal(t, domain.StatusBlocked, Build(block, "x").Status)
}

func TestBuild_Fallbacks(t *testing.T) {
	block := firstBlock(t, doc(
		"## A-001: Setup",
		"```yaml",
		"priority: urgent",
		`owner: "  "`,
		"```",
	))

	task := Build(block, "x")

	assert.Equal(t, domain.P2, task.Priority)
	assert.Equal(t, domain.OwnerUnassigned, task.Owner)
	assert.Equal(t, domain.StatusNotStarted, task.Status)
	assert.Equal(t, []string{}, task.DependsOn)
}

func TestBuild_DependenciesKey(t *testing.T) {
	block := firstBlock(t, doc(
		"## A-001: Setup",
		"```yaml",
		"dependencies: [B-002, C-003]",
		"```",
	))

	assert.Equal(t, []string{"B-002", "C-003"}, Build(block, "x").DependsOn)
}

func TestBuild_DependsOnWinsOverDependencies(t *testing.T) {
	block := firstBlock(t, doc(
		"## A-001: Setup",
		"```yaml",
		"depends_on: [B-002]",
		"dependencies: [C-003]",
		"```",
	))

	assert.Equal(t, []string{"B-002"}, Build(block, "x").DependsOn)
}

func TestBuild_ScalarDependencyText(t *testing.T) {
	block := firstBlock(t, doc(
		"## A-001: Setup",
		"```yaml",
		"depends_on: B-002 then C-003",
		"```",
	))

	assert.Equal(t, []string{"B-002", "C-003"}, Build(block, "x").DependsOn)
}

func TestBuild_ListStatusIsJoined(t *testing.T) {
	block := firstBlock(t, doc(
		"## A-001: Setup",
		"```yaml",
		"status: [wip, blocked]",
		"```",
	))

	assert.Equal(t, domain.StatusInProgress, Build(block, "x").Status)
}

func TestBuild_TitleTruncatedByRunes(t *testing.T) {
	long := strings.Repeat("é", 80)
	task := Build(firstBlock(t, "## A-001: "+long), "x")

	assert.Equal(t, domain.TitleMaxRunes, len([]rune(task.Title)))
}

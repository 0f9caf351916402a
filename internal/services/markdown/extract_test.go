package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredBlock(t *testing.T) {
	body := doc(
		"Some intro",
		"```yaml",
		"status: in_progress",
		"priority: P1",
		`depends_on: [X-001, 'X-002', ""]`,
		`owner: "Jane Doe"`,
		"effort: '4h'",
		"# a comment",
		"no colon here",
		"",
		"url: http://example.com/a",
		"```",
		"trailing prose",
	)

	meta := StructuredBlock(body)
	require.NotNil(t, meta)

	assert.Equal(t, Scalar("in_progress"), meta["status"])
	assert.Equal(t, Scalar("P1"), meta["priority"])
	assert.Equal(t, List("X-001", "X-002", ""), meta["depends_on"])
	assert.Equal(t, Scalar("Jane Doe"), meta["owner"])
	assert.Equal(t, Scalar("4h"), meta["effort"])
	assert.Equal(t, Scalar("http://example.com/a"), meta["url"])
	assert.NotContains(t, meta, "no colon here")
	assert.Len(t, meta, 6)
}

func TestStructuredBlock_FenceVariants(t *testing.T) {
	tests := []struct {
		name  string
		fence string
		found bool
	}{
		{name: "yaml", fence: "```yaml", found: true},
		{name: "yml", fence: "```yml", found: true},
		{name: "brace yaml", fence: "```{yaml}", found: true},
		{name: "brace yml", fence: "```{yml}", found: true},
		{name: "trailing spaces", fence: "```yaml   ", found: true},
		{name: "json is ignored", fence: "```json", found: false},
		{name: "plain fence is ignored", fence: "```", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := StructuredBlock(doc(tt.fence, "status: done", "```"))
			if !tt.found {
				assert.Nil(t, meta)
				return
			}
			assert.Equal(t, Scalar("done"), meta["status"])
		})
	}
}

func TestStructuredBlock_NoNesting(t *testing.T) {
	meta := StructuredBlock(doc(
		"```yaml",
		"meta:",
		"  owner: bob",
		"tags: [a, [b]]",
		"```",
	))

	assert.Equal(t, Scalar(""), meta["meta"])
	assert.Equal(t, Scalar("bob"), meta["owner"])
	assert.Equal(t, List("a", "[b]"), meta["tags"])
}

func TestLabelBased(t *testing.T) {
	body := doc(
		"- ✅ **Status:** Done",
		"- **Priority:** P1",
		"- **Owner:** alice",
		"- **Depends On:** TODO-WLB001, ABC-002",
		"- **Effort:** 4h",
	)

	meta := LabelBased(body)

	assert.Equal(t, Scalar("Done"), meta["status"])
	assert.Equal(t, Scalar("P1"), meta["priority"])
	assert.Equal(t, Scalar("alice"), meta["owner"])
	assert.Equal(t, List("TODO-WLB001", "ABC-002"), meta["depends_on"])
	assert.Equal(t, Scalar("4h"), meta["effort"])
}

func TestLabelBased_Variants(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		key   string
		want  Value
		found bool
	}{
		{name: "checkbox status", body: "- [x] **Status:** In Progress", key: "status", want: Scalar("In Progress"), found: true},
		{name: "trailing bold stripped", body: "**Status:** Blocked**", key: "status", want: Scalar("Blocked"), found: true},
		{name: "case insensitive label", body: "**status:** wip", key: "status", want: Scalar("wip"), found: true},
		{name: "priority out of range", body: "**Priority:** P7", key: "priority", found: false},
		{name: "priority lowercase accepted", body: "**Priority:** p0", key: "priority", want: Scalar("p0"), found: true},
		{name: "owner stops at bold", body: "**Owner:** bob **Effort:** 2h", key: "owner", want: Scalar("bob"), found: true},
		{name: "depends none", body: "**Depends On:** none", key: "depends_on", found: false},
		{name: "dependencies n/a", body: "**Dependencies:** N/A", key: "depends_on", found: false},
		{name: "dependencies dash", body: "**Dependencies:** -", key: "depends_on", found: false},
		{name: "depends_on underscore", body: "**Depends_on:** ABC-001", key: "depends_on", want: List("ABC-001"), found: true},
		{name: "dependency prose", body: "**Dependencies:** after ABC-001 and X-0002 ship", key: "depends_on", want: List("ABC-001", "X-0002"), found: true},
		{name: "dependency text without ids", body: "**Depends On:** the design review", key: "depends_on", want: List(), found: true},
		{name: "effort without unit", body: "**Effort:** 12", key: "effort", want: Scalar("12"), found: true},
		{name: "effort prose rejected", body: "**Effort:** about a day", key: "effort", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := LabelBased(tt.body)
			got, ok := meta[tt.key]
			require.Equal(t, tt.found, ok, "key %q presence", tt.key)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtract_FirstNonEmptyStrategyWinsWhole(t *testing.T) {
	body := doc(
		"**Status:** Done",
		"**Owner:** alice",
		"```yaml",
		"priority: P0",
		"```",
	)

	meta := Extract(body)

	assert.Equal(t, Scalar("P0"), meta["priority"])
	assert.NotContains(t, meta, "status")
	assert.NotContains(t, meta, "owner")
}

func TestExtract_EmptyStructuredBlockFallsBack(t *testing.T) {
	body := doc(
		"```yaml",
		"# nothing here",
		"```",
		"**Status:** Done",
	)

	meta := Extract(body)
	assert.Equal(t, Scalar("Done"), meta["status"])
}

func TestExtract_NothingFound(t *testing.T) {
	meta := Extract("just some notes")
	assert.NotNil(t, meta)
	assert.Empty(t, meta)
}

func TestExtractWith_CustomChain(t *testing.T) {
	calls := 0
	empty := func(string) Metadata {
		calls++
		return nil
	}
	fixed := func(string) Metadata {
		calls++
		return Metadata{"status": Scalar("ready")}
	}
	never := func(string) Metadata {
		t.Fatal("strategy after a hit must not run")
		return nil
	}

	meta := ExtractWith("body", empty, fixed, never)

	assert.Equal(t, 2, calls)
	assert.Equal(t, Scalar("ready"), meta["status"])
}

func TestMetadata_Lookup(t *testing.T) {
	meta := Metadata{"dependencies": List("A-001")}

	v, ok := meta.Lookup("depends_on", "dependencies")
	require.True(t, ok)
	assert.Equal(t, List("A-001"), v)

	_, ok = meta.Lookup("owner")
	assert.False(t, ok)
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "a, b", List("a", "b").String())
	assert.Equal(t, "x", Scalar("x").String())
}

package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestScanBlocks_SplitsOnHeadersAndTerminators(t *testing.T) {
	content := doc(
		"# Project",
		"intro text",
		"## ABC-001: First",
		"body1",
		"### sub heading",
		"more",
		"## ABC-002: Second ✅",
		"body2",
		"## Notes",
		"ignored",
		"#### TODO-WLB001: Deep",
		"deep body",
	)

	blocks := ScanBlocks(content)
	require.Len(t, blocks, 3)

	assert.Equal(t, "ABC-001", blocks[0].ID)
	assert.Equal(t, "First", blocks[0].RawTitle)
	assert.Equal(t, 2, blocks[0].Level)
	assert.Equal(t, 3, blocks[0].Line)
	assert.Equal(t, "body1\n### sub heading\nmore", blocks[0].Body)

	assert.Equal(t, "ABC-002", blocks[1].ID)
	assert.Equal(t, "Second ✅", blocks[1].RawTitle)
	assert.Equal(t, "body2", blocks[1].Body)

	assert.Equal(t, "TODO-WLB001", blocks[2].ID)
	assert.Equal(t, 4, blocks[2].Level)
	assert.Equal(t, "deep body", blocks[2].Body)
}

func TestScanBlocks_NoHeaders(t *testing.T) {
	assert.Empty(t, ScanBlocks(""))
	assert.Empty(t, ScanBlocks(doc("# Title", "just prose", "- a list")))
}

func TestScanBlocks_HeaderRecognition(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		wantID string
	}{
		{name: "depth two", line: "## ABC-001: Title", wantID: "ABC-001"},
		{name: "depth three", line: "### X1234: Title", wantID: "X1234"},
		{name: "depth four", line: "#### TODO-WLB001: Title", wantID: "TODO-WLB001"},
		{name: "no space after colon", line: "## ABC-001:Title", wantID: "ABC-001"},
		{name: "depth one is not a task", line: "# ABC-001: Title"},
		{name: "depth five is not a task", line: "##### ABC-001: Title"},
		{name: "lowercase id", line: "## abc-001: Title"},
		{name: "too few digits", line: "## ABC-01: Title"},
		{name: "missing colon", line: "## ABC-001 Title"},
		{name: "missing space after hashes", line: "##ABC-001: Title"},
		{name: "nothing after colon", line: "## ABC-001:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := ScanBlocks(tt.line + "\nbody")
			if tt.wantID == "" {
				assert.Empty(t, blocks)
				return
			}
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.wantID, blocks[0].ID)
		})
	}
}

func TestScanBlocks_DeeperHeadingsStayInBody(t *testing.T) {
	content := doc(
		"### ABC-001: Parent",
		"#### Acceptance",
		"- works",
		"##### Detail",
		"### Unrelated",
		"tail",
	)

	blocks := ScanBlocks(content)
	require.Len(t, blocks, 1)
	assert.Equal(t, "#### Acceptance\n- works\n##### Detail", blocks[0].Body)
}

func TestScanBlocks_ShallowerNonTaskHeadingTerminates(t *testing.T) {
	content := doc(
		"#### ABC-001: Deep task",
		"line",
		"## Section",
		"#### ABC-002: Next",
	)

	blocks := ScanBlocks(content)
	require.Len(t, blocks, 2)
	assert.Equal(t, "line", blocks[0].Body)
	assert.Equal(t, "ABC-002", blocks[1].ID)
	assert.Equal(t, "", blocks[1].Body)
}

func TestScanBlocks_TrailingBlockEmitted(t *testing.T) {
	blocks := ScanBlocks("## ABC-001: Last\nfinal line\n")
	require.Len(t, blocks, 1)
	assert.Equal(t, "final line\n", blocks[0].Body)
}

func TestScanBlocks_CRLF(t *testing.T) {
	blocks := ScanBlocks("## ABC-001: Windows\r\nbody\r\n")
	require.Len(t, blocks, 1)
	assert.Equal(t, "Windows", blocks[0].RawTitle)
}

func TestFindIDs(t *testing.T) {
	assert.Equal(t, []string{"ABC-001", "X1234"}, FindIDs("ABC-001, X1234"))
	assert.Equal(t, []string{"TODO-WLB002"}, FindIDs("after TODO-WLB002 lands"))
	assert.Equal(t, []string{}, FindIDs("see notes"))
}

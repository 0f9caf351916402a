package markdown

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/riordanpawley/todoboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(files fstest.MapFS) *Parser {
	return NewParser(files, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestParser_ParseFile(t *testing.T) {
	files := fstest.MapFS{
		"api_TODO.md": {Data: []byte(doc(
			"# API",
			"## A-001: Alpha",
			"```yaml",
			"status: done",
			"```",
			"## A-002: Beta",
			"**Status:** wip",
			"**Depends On:** A-001",
		))},
	}

	tasks, err := newTestParser(files).ParseFile("api_TODO.md")
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "A-001", tasks[0].ID)
	assert.Equal(t, domain.StatusCompleted, tasks[0].Status)
	assert.Equal(t, "api_TODO.md", tasks[0].SourceFile)

	assert.Equal(t, "A-002", tasks[1].ID)
	assert.Equal(t, domain.StatusInProgress, tasks[1].Status)
	assert.Equal(t, []string{"A-001"}, tasks[1].DependsOn)
}

func TestParser_ParseFile_NoTasks(t *testing.T) {
	files := fstest.MapFS{"notes_TODO.md": {Data: []byte("# Notes\nnothing structured")}}

	tasks, err := newTestParser(files).ParseFile("notes_TODO.md")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestParser_ParseFile_MissingFile(t *testing.T) {
	_, err := newTestParser(fstest.MapFS{}).ParseFile("gone_TODO.md")
	require.Error(t, err)

	var perr *domain.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "read", perr.Op)
	assert.Equal(t, "gone_TODO.md", perr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestParser_ParseFile_InvalidUTF8(t *testing.T) {
	raw := append([]byte("## A-001: Bad "), 0xff, 0xfe)
	files := fstest.MapFS{"bad_TODO.md": {Data: raw}}

	tasks, err := newTestParser(files).ParseFile("bad_TODO.md")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Contains(t, tasks[0].Title, "�")
}

func TestParser_WithStrategies(t *testing.T) {
	files := fstest.MapFS{"x_TODO.md": {Data: []byte(doc(
		"## A-001: Alpha",
		"```yaml",
		"status: done",
		"```",
		"**Status:** blocked",
	))}}

	parser := newTestParser(files).WithStrategies(LabelBased)
	tasks, err := parser.ParseFile("x_TODO.md")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.StatusBlocked, tasks[0].Status)
}

func TestParseDocument(t *testing.T) {
	tasks := ParseDocument(doc("## A-001: Alpha", "## A-002: Beta ✅"), "dir/x_TODO.md")

	require.Len(t, tasks, 2)
	assert.Equal(t, "dir/x_TODO.md", tasks[1].SourceFile)
	assert.Equal(t, domain.StatusCompleted, tasks[1].Status)
}

func TestDecodeLenient(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{name: "plain", raw: []byte("abc"), want: "abc"},
		{name: "bom stripped", raw: []byte("\xef\xbb\xbfabc"), want: "abc"},
		{name: "malformed replaced", raw: []byte("a\xffb"), want: "a�b"},
		{name: "empty", raw: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeLenient(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

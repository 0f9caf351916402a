// Package discovery finds the TODO documents under a scan root
package discovery

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/riordanpawley/todoboard/internal/domain"
)

// DefaultGlobs are the document name patterns matched relative to the root
var DefaultGlobs = []string{
	"*_TODO.md",
	"*_todo.md",
	"*-todo.md",
	"*-TODO.md",
	"TODO/**/*.md",
}

// DefaultExclude are path segments that disqualify a match
var DefaultExclude = []string{
	"node_modules",
	".git",
	"dist",
	"build",
	".next",
	"__pycache__",
	"coverage",
	".github",
	"archive",
}

// Lister expands glob patterns under a root directory
type Lister struct {
	fsys    fs.FS
	globs   []string
	exclude map[string]bool
	logger  *slog.Logger
}

// NewLister creates a lister over the directory root. Empty globs and a nil
// exclude list fall back to the defaults.
func NewLister(root string, globs, exclude []string, logger *slog.Logger) *Lister {
	return NewFSLister(os.DirFS(root), globs, exclude, logger)
}

// NewFSLister creates a lister over an arbitrary file system
func NewFSLister(fsys fs.FS, globs, exclude []string, logger *slog.Logger) *Lister {
	if len(globs) == 0 {
		globs = DefaultGlobs
	}
	if exclude == nil {
		exclude = DefaultExclude
	}
	skip := make(map[string]bool, len(exclude))
	for _, part := range exclude {
		skip[part] = true
	}
	return &Lister{fsys: fsys, globs: globs, exclude: skip, logger: logger}
}

// FS returns the file system the lister walks; listed paths are relative to it
func (l *Lister) FS() fs.FS {
	return l.fsys
}

// List returns the matching regular files as sorted, de-duplicated slash paths
func (l *Lister) List(ctx context.Context) ([]string, error) {
	found := make(map[string]bool)

	for _, pattern := range l.globs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, &domain.DiscoveryError{Pattern: pattern, Err: doublestar.ErrBadPattern}
		}

		matches, err := doublestar.Glob(l.fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, &domain.DiscoveryError{Pattern: pattern, Err: err}
		}

		for _, path := range matches {
			if l.excluded(path) {
				l.logger.Debug("skipping excluded path", "path", path)
				continue
			}
			found[path] = true
		}
	}

	paths := make([]string, 0, len(found))
	for path := range found {
		paths = append(paths, path)
	}
	slices.SortFunc(paths, ComparePaths)

	l.logger.Debug("discovered documents", "count", len(paths))
	return paths, nil
}

func (l *Lister) excluded(path string) bool {
	for _, part := range strings.Split(path, "/") {
		if l.exclude[part] {
			return true
		}
	}
	return false
}

// ComparePaths orders slash paths segment by segment, so "a/b" sorts before "a-b/c"
func ComparePaths(a, b string) int {
	return slices.Compare(strings.Split(a, "/"), strings.Split(b, "/"))
}

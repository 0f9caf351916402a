package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riordanpawley/todoboard/internal/domain"
)

// Lister yields candidate document paths relative to the scan root
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// DocumentParser parses one document into tasks
type DocumentParser interface {
	ParseFile(rel string) ([]domain.Task, error)
}

// Board is the resolved state of one scan. It is read-only once built.
type Board struct {
	Root     string
	Files    []string
	Registry *Registry
	Stats    domain.BoardStats
}

// Scanner runs discovery, parsing and resolution
type Scanner struct {
	root   string
	lister Lister
	parser DocumentParser
	opts   ResolveOptions
	logger *slog.Logger
}

// NewScanner creates a new Scanner with dependency injection
func NewScanner(root string, lister Lister, parser DocumentParser, opts ResolveOptions, logger *slog.Logger) *Scanner {
	return &Scanner{
		root:   root,
		lister: lister,
		parser: parser,
		opts:   opts,
		logger: logger,
	}
}

// Scan builds a board from the documents under the root. It returns an error
// wrapping domain.ErrNoTasks when no document yields a task.
func (s *Scanner) Scan(ctx context.Context) (*Board, error) {
	files, err := s.lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	s.logger.Info("scanning documents", "root", s.root, "count", len(files))

	reg, err := Merge(ctx, files, s.parser.ParseFile, s.logger)
	if err != nil {
		return nil, err
	}
	if reg.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", s.root, domain.ErrNoTasks)
	}

	stats := Resolve(reg, s.opts)
	stats.FilesScanned = len(files)
	stats.FilesWithTasks = countSourceFiles(reg)

	s.logger.Info("board resolved",
		"tasks", stats.Total,
		"blocked", stats.Blocked,
		"missing_deps", len(stats.MissingDeps))

	return &Board{
		Root:     s.root,
		Files:    files,
		Registry: reg,
		Stats:    stats,
	}, nil
}

func countSourceFiles(reg *Registry) int {
	files := make(map[string]bool)
	reg.each(func(t *domain.Task) {
		files[t.SourceFile] = true
	})
	return len(files)
}

// Tasks returns all tasks in registry order
func (b *Board) Tasks() []domain.Task {
	return b.Registry.Tasks()
}

// Ready returns the actionable tasks ordered by priority then ID
func (b *Board) Ready() []domain.Task {
	return Ready(b.Registry)
}

// Blockers returns the existing dependencies of t that are not completed
func (b *Board) Blockers(t domain.Task) []domain.Task {
	var blockers []domain.Task
	for _, dep := range t.DependsOn {
		if d, ok := b.Registry.Get(dep); ok && !d.IsComplete() {
			blockers = append(blockers, d)
		}
	}
	return blockers
}

// Unresolved returns the references of t that name no task
func (b *Board) Unresolved(t domain.Task) []string {
	var missing []string
	for _, dep := range t.DependsOn {
		if !b.Registry.Has(dep) {
			missing = append(missing, dep)
		}
	}
	return missing
}

// FileProgress returns completion per source file, in discovery order
func (b *Board) FileProgress() []domain.FileProgress {
	byFile := make(map[string]*domain.FileProgress)
	b.Registry.each(func(t *domain.Task) {
		fp, ok := byFile[t.SourceFile]
		if !ok {
			fp = &domain.FileProgress{File: t.SourceFile}
			byFile[t.SourceFile] = fp
		}
		fp.Total++
		if t.IsComplete() {
			fp.Done++
		}
	})

	progress := make([]domain.FileProgress, 0, len(byFile))
	for _, file := range b.Files {
		if fp, ok := byFile[file]; ok {
			progress = append(progress, *fp)
			delete(byFile, file)
		}
	}
	for _, id := range b.Registry.order {
		src := b.Registry.tasks[id].SourceFile
		if fp, ok := byFile[src]; ok {
			progress = append(progress, *fp)
			delete(byFile, src)
		}
	}
	return progress
}

// Critical returns the pending P0 tasks in registry order
func (b *Board) Critical() []domain.Task {
	var critical []domain.Task
	for _, t := range b.Registry.Tasks() {
		if t.Priority == domain.P0 && !t.IsComplete() {
			critical = append(critical, t)
		}
	}
	return critical
}

// Blocked returns the blocked tasks in registry order
func (b *Board) Blocked() []domain.Task {
	var blocked []domain.Task
	for _, t := range b.Registry.Tasks() {
		if t.Status == domain.StatusBlocked {
			blocked = append(blocked, t)
		}
	}
	return blocked
}

package markdown

import (
	"strings"

	"github.com/riordanpawley/todoboard/internal/domain"
)

// Build turns a scanned block into a task using the default extraction chain
func Build(block Block, sourceFile string) domain.Task {
	return BuildFrom(block, Extract(block.Body), sourceFile)
}

// BuildFrom normalises already-extracted metadata into a task
func BuildFrom(block Block, meta Metadata, sourceFile string) domain.Task {
	status := ""
	if v, ok := meta["status"]; ok {
		status = v.String()
	}
	if status == "" {
		status = StatusFromTitle(block.RawTitle)
	}

	priority := string(domain.DefaultPriority)
	if v, ok := meta["priority"]; ok {
		priority = v.String()
	}

	owner := ""
	if v, ok := meta["owner"]; ok {
		owner = strings.TrimSpace(v.String())
	}
	if owner == "" {
		owner = domain.OwnerUnassigned
	}

	deps := []string{}
	if v, ok := meta.Lookup("depends_on", "dependencies"); ok {
		deps = NormalizeDeps(v)
	}

	effort := ""
	if v, ok := meta["effort"]; ok {
		effort = v.String()
	}

	return domain.Task{
		ID:         block.ID,
		Title:      TruncateRunes(CleanTitle(block.RawTitle), domain.TitleMaxRunes),
		Status:     NormalizeStatus(status),
		Priority:   NormalizePriority(priority),
		Owner:      owner,
		DependsOn:  deps,
		SourceFile: sourceFile,
		Effort:     effort,
	}
}

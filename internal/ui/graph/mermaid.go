// Package graph renders a resolved board as a Mermaid dependency graph and
// as a self-contained HTML page embedding that graph.
package graph

import (
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/riordanpawley/todoboard/internal/core/board"
	"github.com/riordanpawley/todoboard/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var unsafeNodeChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)

var labelReplacer = strings.NewReplacer(`"`, "'", "<", "‹", ">", "›", "&", "+")

var classDefs = []string{
	"classDef completed fill:#dcfce7,stroke:#166534,stroke-width:2px,color:#14532d",
	"classDef not_started fill:#dbeafe,stroke:#1e40af,stroke-width:2px,color:#1e3a8a",
	"classDef in_progress fill:#fef3c7,stroke:#d97706,stroke-width:2px,color:#92400e",
	"classDef blocked fill:#fee2e2,stroke:#991b1b,stroke-width:2px,color:#7f1d1d",
	"classDef ready fill:#d1fae5,stroke:#059669,stroke-width:2px,color:#065f46",
	"classDef missing fill:#f3f4f6,stroke:#6b7280,stroke-width:1px,stroke-dasharray:5,color:#374151",
}

// NodeID maps an arbitrary string to a Mermaid-safe identifier
func NodeID(raw string) string {
	return unsafeNodeChars.ReplaceAllString(raw, "_")
}

// FileLabel turns a source path into a subgraph caption: "api_TODO.md" -> "Api Todo"
func FileLabel(file string) string {
	stem := strings.TrimSuffix(path.Base(file), path.Ext(file))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	return cases.Title(language.Und).String(stem)
}

// Mermaid renders the board as a top-down flowchart with one subgraph per
// source file. Resolved dependencies are solid edges; each unresolved
// reference becomes a single dashed "missing" node.
func Mermaid(b *board.Board) string {
	tasks := b.Tasks()
	lines := []string{"graph TD"}

	byFile := map[string][]domain.Task{}
	for _, t := range tasks {
		byFile[t.SourceFile] = append(byFile[t.SourceFile], t)
	}
	files := make([]string, 0, len(byFile))
	for f := range byFile {
		files = append(files, f)
	}
	slices.Sort(files)

	for _, f := range files {
		lines = append(lines, `    subgraph `+NodeID(f)+`["`+FileLabel(f)+`"]`)
		group := byFile[f]
		slices.SortFunc(group, func(a, b domain.Task) int {
			return strings.Compare(a.ID, b.ID)
		})
		for _, t := range group {
			lines = append(lines, `        `+NodeID(t.ID)+`["`+t.Priority.Icon()+` `+t.ID+`<br/>`+labelReplacer.Replace(t.Title)+`"]:::`+string(t.Status))
		}
		lines = append(lines, "    end")
	}

	lines = append(lines, "")

	seenMissing := map[string]bool{}
	for _, t := range tasks {
		dst := NodeID(t.ID)
		for _, dep := range t.DependsOn {
			src := NodeID(dep)
			switch {
			case b.Registry.Has(dep):
				lines = append(lines, "    "+src+" --> "+dst)
			case !seenMissing[dep]:
				seenMissing[dep] = true
				lines = append(lines, `    `+src+`["`+dep+` ❓"]:::missing`)
				lines = append(lines, "    "+src+" -.-> "+dst)
			default:
				lines = append(lines, "    "+src+" -.-> "+dst)
			}
		}
	}

	lines = append(lines, "")
	for _, def := range classDefs {
		lines = append(lines, "    "+def)
	}
	return strings.Join(lines, "\n")
}

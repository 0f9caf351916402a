// Package markdown turns TODO documents into task records.
//
// Parsing happens in three steps: ScanBlocks splits a document into one block per
// task header, Extract pulls raw metadata out of a block, and Build normalises the
// metadata into a domain.Task.
package markdown

import (
	"regexp"
	"strings"
)

// IDPattern matches a task identifier such as ABC-001 or TODO-WLB001
const IDPattern = `[A-Z][A-Z0-9-]*\d{3,4}`

var (
	taskHeaderRegex = regexp.MustCompile(`^(#{2,4})\s+(` + IDPattern + `):\s*(.+)$`)
	anyHeaderRegex  = regexp.MustCompile(`^(#{1,4})\s+\S`)
	idRegex         = regexp.MustCompile(IDPattern)
)

// Block is the raw text of one task section
type Block struct {
	ID       string
	RawTitle string
	Body     string
	Level    int // heading depth of the task header
	Line     int // 1-based line of the task header
}

// ScanBlocks splits a document into task blocks in document order.
// A block ends at the next task header or at any heading no deeper than its own.
func ScanBlocks(content string) []Block {
	lines := strings.Split(content, "\n")

	var blocks []Block
	var current *Block
	var buf []string

	flush := func() {
		if current == nil {
			return
		}
		current.Body = strings.Join(buf, "\n")
		blocks = append(blocks, *current)
		current = nil
		buf = nil
	}

	for i, line := range lines {
		if m := taskHeaderRegex.FindStringSubmatch(line); m != nil {
			flush()
			current = &Block{
				ID:       m[2],
				RawTitle: strings.TrimSpace(m[3]),
				Level:    len(m[1]),
				Line:     i + 1,
			}
			buf = []string{}
			continue
		}
		if current == nil {
			continue
		}
		if m := anyHeaderRegex.FindStringSubmatch(line); m != nil && len(m[1]) <= current.Level {
			flush()
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return blocks
}

// FindIDs returns every task identifier in s, in order of appearance
func FindIDs(s string) []string {
	found := idRegex.FindAllString(s, -1)
	if found == nil {
		return []string{}
	}
	return found
}

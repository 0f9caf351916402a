package markdown

import (
	"io/fs"
	"log/slog"

	"github.com/riordanpawley/todoboard/internal/domain"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Parser reads TODO documents from a file system rooted at the scan root
type Parser struct {
	fsys       fs.FS
	logger     *slog.Logger
	strategies []Strategy
}

// NewParser creates a new Parser with dependency injection
func NewParser(fsys fs.FS, logger *slog.Logger) *Parser {
	return &Parser{
		fsys:       fsys,
		logger:     logger,
		strategies: DefaultStrategies,
	}
}

// WithStrategies returns a copy of the parser using a different extraction chain
func (p *Parser) WithStrategies(strategies ...Strategy) *Parser {
	cp := *p
	cp.strategies = strategies
	return &cp
}

// ParseFile reads one document and returns its tasks in document order.
// rel is a slash-separated path relative to the parser's file system.
func (p *Parser) ParseFile(rel string) ([]domain.Task, error) {
	p.logger.Debug("parsing document", "path", rel)

	raw, err := fs.ReadFile(p.fsys, rel)
	if err != nil {
		return nil, &domain.ParseError{Op: "read", Path: rel, Err: err}
	}

	text, err := DecodeLenient(raw)
	if err != nil {
		return nil, &domain.ParseError{Op: "decode", Path: rel, Err: err}
	}

	tasks := p.ParseDocument(text, rel)
	p.logger.Debug("parsed document", "path", rel, "count", len(tasks))
	return tasks, nil
}

// ParseDocument parses already-decoded text
func (p *Parser) ParseDocument(content, rel string) []domain.Task {
	blocks := ScanBlocks(content)
	tasks := make([]domain.Task, 0, len(blocks))
	for _, block := range blocks {
		meta := ExtractWith(block.Body, p.strategies...)
		tasks = append(tasks, BuildFrom(block, meta, rel))
	}
	return tasks
}

// ParseDocument parses text with the default extraction chain
func ParseDocument(content, rel string) []domain.Task {
	p := &Parser{strategies: DefaultStrategies}
	return p.ParseDocument(content, rel)
}

// DecodeLenient decodes UTF-8 text, replacing malformed bytes with U+FFFD.
// A leading byte order mark is honoured and removed.
func DecodeLenient(raw []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Package clipboard copies task references to the system clipboard
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/riordanpawley/todoboard/internal/domain"
)

// ErrUnsupported is returned when no clipboard utility is available
// (pbcopy, xclip, xsel, wl-copy or the Windows API)
var ErrUnsupported = errors.New("clipboard not available")

// WriteFunc writes text to a clipboard
type WriteFunc func(text string) error

// Service copies task references
type Service struct {
	write WriteFunc
}

// New creates a service backed by the system clipboard. Every copy fails
// with ErrUnsupported when the platform has no clipboard utility.
func New() *Service {
	if clipboard.Unsupported {
		return NewWithWriter(nil)
	}
	return NewWithWriter(clipboard.WriteAll)
}

// NewWithWriter creates a service backed by an arbitrary writer
func NewWithWriter(write WriteFunc) *Service {
	return &Service{write: write}
}

// CopyID copies the task ID and returns the copied text
func (s *Service) CopyID(t domain.Task) (string, error) {
	return s.copy(t.ID)
}

// CopyReference copies "ID: title" and returns the copied text
func (s *Service) CopyReference(t domain.Task) (string, error) {
	return s.copy(Reference(t))
}

// Reference formats a task the way it is cited in depends_on lists and commits
func Reference(t domain.Task) string {
	return fmt.Sprintf("%s: %s", t.ID, t.Title)
}

func (s *Service) copy(text string) (string, error) {
	if s.write == nil {
		return "", ErrUnsupported
	}
	if err := s.write(text); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return text, nil
}

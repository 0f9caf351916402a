package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNoTasks  = errors.New("no structured tasks found")
	ErrNotFound = errors.New("not found")
)

// ParseError represents a failure to read or parse one TODO document
type ParseError struct {
	Op      string // Operation: "read", "decode", "stat"
	Path    string // Path relative to the scan root
	Message string // Human-readable context
	Err     error  // Underlying error
}

func (e *ParseError) Error() string {
	if e.Path != "" && e.Err != nil {
		return fmt.Sprintf("parse %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	if e.Path != "" && e.Message != "" {
		return fmt.Sprintf("parse %s [%s]: %s", e.Op, e.Path, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("parse %s failed", e.Op)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DiscoveryError represents an error while listing candidate files
type DiscoveryError struct {
	Pattern string
	Err     error
}

func (e *DiscoveryError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("discover [%s]: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("discover: %v", e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

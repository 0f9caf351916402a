package domain

import (
	"errors"
	"io/fs"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  ParseError
		want string
	}{
		{
			name: "with path and error",
			err:  ParseError{Op: "read", Path: "A_TODO.md", Err: errors.New("permission denied")},
			want: "parse read [A_TODO.md]: permission denied",
		},
		{
			name: "with path and message",
			err:  ParseError{Op: "stat", Path: "B_TODO.md", Message: "not a regular file"},
			want: "parse stat [B_TODO.md]: not a regular file",
		},
		{
			name: "with underlying error only",
			err:  ParseError{Op: "decode", Err: errors.New("bad bytes")},
			want: "parse decode: bad bytes",
		},
		{
			name: "minimal",
			err:  ParseError{Op: "read"},
			want: "parse read failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	err := &ParseError{Op: "read", Path: "x.md", Err: fs.ErrNotExist}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("ParseError should unwrap to fs.ErrNotExist")
	}

	var target *ParseError
	wrapped := errors.Join(errors.New("outer"), err)
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As should find ParseError")
	}
	if target.Path != "x.md" {
		t.Errorf("Path = %q, want x.md", target.Path)
	}
}

func TestDiscoveryError(t *testing.T) {
	err := &DiscoveryError{Pattern: "TODO/**/*.md", Err: fs.ErrPermission}
	if got, want := err.Error(), "discover [TODO/**/*.md]: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("DiscoveryError should unwrap")
	}

	bare := &DiscoveryError{Err: fs.ErrPermission}
	if got, want := bare.Error(), "discover: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

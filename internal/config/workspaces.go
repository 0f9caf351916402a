package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// WorkspaceRegistry holds named scan roots
type WorkspaceRegistry struct {
	Workspaces []Workspace `json:"workspaces"`
}

// Workspace is a registered scan root
type Workspace struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

var (
	// ErrWorkspaceNotFound is returned when a workspace doesn't exist in the registry
	ErrWorkspaceNotFound = errors.New("workspace not found")
	// ErrDuplicateWorkspace is returned when trying to add a workspace that already exists
	ErrDuplicateWorkspace = errors.New("workspace already exists")
	// ErrEmptyName is returned when the workspace name is empty
	ErrEmptyName = errors.New("workspace name cannot be empty")
	// ErrEmptyPath is returned when the workspace path is empty
	ErrEmptyPath = errors.New("workspace path cannot be empty")
	// ErrNotDirectory is returned when the path is not an existing directory
	ErrNotDirectory = errors.New("path is not a directory")
)

// LoadWorkspaceRegistry loads the workspace registry from disk
// Returns an empty registry if the file doesn't exist
func LoadWorkspaceRegistry() (*WorkspaceRegistry, error) {
	path, err := registryPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &WorkspaceRegistry{Workspaces: []Workspace{}}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var registry WorkspaceRegistry
	if err := json.Unmarshal(data, &registry); err != nil {
		return nil, err
	}
	if registry.Workspaces == nil {
		registry.Workspaces = []Workspace{}
	}

	return &registry, nil
}

// SaveWorkspaceRegistry saves the workspace registry to disk
func SaveWorkspaceRegistry(reg *WorkspaceRegistry) error {
	path, err := registryPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Add registers a scan root under name. The path is stored absolute.
func (r *WorkspaceRegistry) Add(name, path string) error {
	if name == "" {
		return ErrEmptyName
	}
	if path == "" {
		return ErrEmptyPath
	}

	for _, w := range r.Workspaces {
		if w.Name == name {
			return ErrDuplicateWorkspace
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if !isDir(abs) {
		return ErrNotDirectory
	}

	r.Workspaces = append(r.Workspaces, Workspace{
		Name: name,
		Path: abs,
	})
	return nil
}

// Remove removes a workspace from the registry
func (r *WorkspaceRegistry) Remove(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	for i, w := range r.Workspaces {
		if w.Name == name {
			r.Workspaces = append(r.Workspaces[:i], r.Workspaces[i+1:]...)
			return nil
		}
	}

	return ErrWorkspaceNotFound
}

// Get retrieves a workspace by name
func (r *WorkspaceRegistry) Get(name string) (*Workspace, error) {
	for _, w := range r.Workspaces {
		if w.Name == name {
			return &w, nil
		}
	}
	return nil, ErrWorkspaceNotFound
}

// FindByPath returns the workspace whose root contains path. When roots nest,
// the deepest one wins.
func (r *WorkspaceRegistry) FindByPath(path string) *Workspace {
	cleanPath := filepath.Clean(path)

	var best *Workspace
	for _, w := range r.Workspaces {
		root := filepath.Clean(w.Path)
		if root != cleanPath && !strings.HasPrefix(cleanPath, root+string(filepath.Separator)) {
			continue
		}
		if best == nil || len(root) > len(filepath.Clean(best.Path)) {
			found := w
			best = &found
		}
	}
	return best
}

// registryPath is a variable holding the function that returns the path to the workspace registry file
// This allows it to be overridden in tests
var registryPath = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "todoboard", "workspaces.json"), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

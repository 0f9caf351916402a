package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/riordanpawley/todoboard/internal/config"
)

// WorkspaceAddCommand registers path under name
func WorkspaceAddCommand(out io.Writer, name, path string) error {
	reg, err := config.LoadWorkspaceRegistry()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}
	if err := reg.Add(name, path); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := config.SaveWorkspaceRegistry(reg); err != nil {
		return fmt.Errorf("failed to save workspaces: %w", err)
	}

	ws, _ := reg.Get(name)
	fmt.Fprintf(out, "Added workspace %s -> %s\n", ws.Name, ws.Path)
	return nil
}

// WorkspaceRemoveCommand unregisters name
func WorkspaceRemoveCommand(out io.Writer, name string) error {
	reg, err := config.LoadWorkspaceRegistry()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}
	if err := reg.Remove(name); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := config.SaveWorkspaceRegistry(reg); err != nil {
		return fmt.Errorf("failed to save workspaces: %w", err)
	}

	fmt.Fprintf(out, "Removed workspace %s\n", name)
	return nil
}

// WorkspaceListCommand prints the registered workspaces
func WorkspaceListCommand(out io.Writer) error {
	reg, err := config.LoadWorkspaceRegistry()
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}

	if len(reg.Workspaces) == 0 {
		fmt.Fprintln(out, "No workspaces registered")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPATH")
	for _, ws := range reg.Workspaces {
		fmt.Fprintf(w, "%s\t%s\n", ws.Name, ws.Path)
	}
	return w.Flush()
}

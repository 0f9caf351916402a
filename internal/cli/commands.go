package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/riordanpawley/todoboard/internal/app"
	"github.com/riordanpawley/todoboard/internal/config"
	"github.com/riordanpawley/todoboard/internal/core/board"
	"github.com/riordanpawley/todoboard/internal/domain"
	"github.com/riordanpawley/todoboard/internal/ui/export"
	"github.com/riordanpawley/todoboard/internal/ui/graph"
	"github.com/riordanpawley/todoboard/internal/ui/report"
)

// NoTasksMessage is printed, with a zero exit, when no document holds a task
const NoTasksMessage = "No structured tasks found in any TODO file."

// BoardOptions selects the outputs of the default command
type BoardOptions struct {
	Terminal bool
	HTML     bool
	JSON     bool
}

// scan runs the pipeline. A nil board with a nil error means the registry
// was empty and the notice has already been printed.
func (d *Dependencies) scan(ctx context.Context) (*board.Board, error) {
	b, err := d.Scanner.Scan(ctx)
	if errors.Is(err, domain.ErrNoTasks) {
		fmt.Fprintln(d.Out, NoTasksMessage)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (d *Dependencies) reportOptions() report.Options {
	return report.Options{
		MissingLimit: d.Config.Output.MissingLimit,
		TitleWidth:   d.Config.Output.TitleWidth,
	}
}

// BoardCommand is the default run: terminal summary and HTML board. Setting
// only one of Terminal or HTML restricts the output to it; JSON replaces
// both with the full dump.
func BoardCommand(ctx context.Context, deps *Dependencies, opts BoardOptions) error {
	b, err := deps.scan(ctx)
	if err != nil || b == nil {
		return err
	}

	if opts.JSON {
		return export.WriteBoard(deps.Out, b)
	}

	wantTerminal := opts.Terminal || !opts.HTML
	wantHTML := opts.HTML || !opts.Terminal

	if wantTerminal {
		if err := report.Select(deps.Out, deps.reportOptions()).RenderBoard(deps.Out, b); err != nil {
			return fmt.Errorf("failed to render board: %w", err)
		}
	}
	if wantHTML {
		return writeHTML(deps, b, "")
	}
	return nil
}

// ListCommand prints the discovered documents relative to the root
func ListCommand(ctx context.Context, deps *Dependencies) error {
	files, err := deps.Lister.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	fmt.Fprintf(deps.Out, "Found %d TODO files:\n", len(files))
	for _, f := range files {
		fmt.Fprintf(deps.Out, "   %s\n", f)
	}
	return nil
}

// ReadyCommand prints the actionable tasks as a table or as JSON
func ReadyCommand(ctx context.Context, deps *Dependencies, asJSON bool) error {
	b, err := deps.scan(ctx)
	if err != nil || b == nil {
		return err
	}

	ready := b.Ready()
	if asJSON {
		return export.WriteReady(deps.Out, ready)
	}
	return report.Select(deps.Out, deps.reportOptions()).RenderReady(deps.Out, ready)
}

// JSONCommand prints the full board dump
func JSONCommand(ctx context.Context, deps *Dependencies) error {
	return BoardCommand(ctx, deps, BoardOptions{JSON: true})
}

// HTMLCommand writes the HTML board to out, or to the configured file
// under the root when out is empty
func HTMLCommand(ctx context.Context, deps *Dependencies, out string) error {
	b, err := deps.scan(ctx)
	if err != nil || b == nil {
		return err
	}
	return writeHTML(deps, b, out)
}

func writeHTML(deps *Dependencies, b *board.Board, out string) error {
	if out == "" {
		out = deps.Config.Output.HTMLFile
		if !filepath.IsAbs(out) {
			out = filepath.Join(deps.Root, out)
		}
	}

	page, err := graph.HTML(b)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, page, 0644); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	deps.Logger.Debug("wrote board", "path", filepath.Base(out), "bytes", len(page))
	fmt.Fprintf(deps.Out, "Board written to %s (%d bytes)\n", filepath.Base(out), len(page))
	return nil
}

// TUICommand opens the interactive board
func TUICommand(ctx context.Context, deps *Dependencies) error {
	b, err := deps.scan(ctx)
	if err != nil || b == nil {
		return err
	}
	return app.Run(ctx, b, deps.Scanner.Scan, deps.Logger)
}

// ConfigInitCommand writes the default configuration to the root. An
// existing file is only replaced when force is set.
func ConfigInitCommand(deps *Dependencies, force bool) error {
	path := filepath.Join(deps.Root, config.JSONConfigFile)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.JSONConfigFile)
	}

	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Fprintf(deps.Out, "Wrote %s\n", config.JSONConfigFile)
	return nil
}

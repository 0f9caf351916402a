// Package cli wires configuration, logging and the scan pipeline together
// and implements the todoboard commands on top of them.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/riordanpawley/todoboard/internal/config"
	"github.com/riordanpawley/todoboard/internal/core/board"
	"github.com/riordanpawley/todoboard/internal/services/discovery"
	"github.com/riordanpawley/todoboard/internal/services/markdown"
)

// Options are the global flags shared by every command
type Options struct {
	// Root is the directory to scan; empty means workspace lookup then cwd
	Root string
	// Workspace names a registered root
	Workspace string
	// ConfigPath overrides config discovery under the root
	ConfigPath string
	// LogLevel overrides the configured level
	LogLevel string
}

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Root    string
	Config  *config.Config
	Logger  *slog.Logger
	Lister  *discovery.Lister
	Scanner *board.Scanner
	Out     io.Writer
	Err     io.Writer
}

// NewDependencies resolves the root, loads configuration and builds the
// scan pipeline. Diagnostics go to stderr so stdout stays machine-readable.
func NewDependencies(opts Options, stdout, stderr io.Writer) (*Dependencies, error) {
	root, err := ResolveRoot(opts)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(root, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	levelName := cfg.Log.Level
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	lister := discovery.NewLister(root, cfg.Scan.Globs, cfg.Scan.Exclude, logger)
	parser := markdown.NewParser(lister.FS(), logger)
	scanner := board.NewScanner(root, lister, parser, board.ResolveOptions{ShortIDPrefix: cfg.Scan.ShortPrefix()}, logger)

	return &Dependencies{
		Root:    root,
		Config:  cfg,
		Logger:  logger,
		Lister:  lister,
		Scanner: scanner,
		Out:     stdout,
		Err:     stderr,
	}, nil
}

func loadConfig(root, path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.LoadConfig(root)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return config.MergeWithDefaults(cfg), nil
}

// ResolveRoot picks the scan root: --root, then --workspace, then the
// registered workspace containing the working directory, then the working
// directory itself
func ResolveRoot(opts Options) (string, error) {
	if opts.Root != "" {
		return filepath.Abs(opts.Root)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	if opts.Workspace == "" {
		reg, err := config.LoadWorkspaceRegistry()
		if err != nil {
			// an unreadable registry only disables the lookup
			return cwd, nil
		}
		if ws := reg.FindByPath(cwd); ws != nil {
			return ws.Path, nil
		}
		return cwd, nil
	}

	reg, err := config.LoadWorkspaceRegistry()
	if err != nil {
		return "", fmt.Errorf("failed to load workspaces: %w", err)
	}
	ws, err := reg.Get(opts.Workspace)
	if err != nil {
		return "", fmt.Errorf("%s: %w", opts.Workspace, err)
	}
	return ws.Path, nil
}

// ParseLevel maps a level name to a slog level. "warning" is accepted as
// an alias of "warn".
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

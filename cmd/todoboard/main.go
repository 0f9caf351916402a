package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riordanpawley/todoboard/internal/cli"
	"github.com/spf13/cobra"
)

var Version = "dev"

var (
	flagRoot      string
	flagWorkspace string
	flagConfig    string
	flagLogLevel  string
	flagJSON      bool
	flagTerminal  bool
	flagHTML      bool
	flagOut       string
	flagForce     bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:   "todoboard",
		Short: "Project board for markdown TODO files",
		Long: `todoboard scans markdown TODO documents for task headers, resolves the
dependencies between tasks across files, and reports progress, blockers and
the tasks that are ready to pick up.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps()
			if err != nil {
				return err
			}
			return cli.BoardCommand(cmd.Context(), deps, cli.BoardOptions{
				Terminal: flagTerminal,
				HTML:     flagHTML,
				JSON:     flagJSON,
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "Directory to scan (default: workspace or current directory)")
	rootCmd.PersistentFlags().StringVarP(&flagWorkspace, "workspace", "w", "", "Registered workspace to scan")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: .todoboard.json or .todoboard.yaml under the root)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")
	rootCmd.Flags().BoolVar(&flagTerminal, "terminal", false, "Terminal summary only")
	rootCmd.Flags().BoolVar(&flagHTML, "html", false, "HTML board only")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(readyCmd())
	rootCmd.AddCommand(jsonCmd())
	rootCmd.AddCommand(htmlCmd())
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(workspaceCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newDeps() (*cli.Dependencies, error) {
	return cli.NewDependencies(cli.Options{
		Root:       flagRoot,
		Workspace:  flagWorkspace,
		ConfigPath: flagConfig,
		LogLevel:   flagLogLevel,
	}, os.Stdout, os.Stderr)
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the discovered TODO documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps()
			if err != nil {
				return err
			}
			return cli.ListCommand(cmd.Context(), deps)
		},
	}
}

func readyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ready",
		Short: "Show tasks that can be picked up now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps()
			if err != nil {
				return err
			}
			return cli.ReadyCommand(cmd.Context(), deps, flagJSON)
		},
	}
}

func jsonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json",
		Short: "Dump every task and the board statistics as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps()
			if err != nil {
				return err
			}
			return cli.JSONCommand(cmd.Context(), deps)
		},
	}
}

func htmlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html",
		Short: "Write the interactive HTML board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps()
			if err != nil {
				return err
			}
			return cli.HTMLCommand(cmd.Context(), deps, flagOut)
		},
	}

	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output path (default: output.htmlFile under the root)")

	return cmd
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the board interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps()
			if err != nil {
				return err
			}
			return cli.TUICommand(cmd.Context(), deps)
		},
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the project configuration",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default .todoboard.json to the root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := newDeps()
			if err != nil {
				return err
			}
			return cli.ConfigInitCommand(deps, flagForce)
		},
	}
	initCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

func workspaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspace",
		Aliases: []string{"ws"},
		Short:   "Manage named scan roots",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> [path]",
		Short: "Register a directory (default: current directory)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 2 {
				path = args[1]
			}
			return cli.WorkspaceAddCommand(cmd.OutOrStdout(), args[0], path)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered workspaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.WorkspaceListCommand(cmd.OutOrStdout())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Unregister a workspace",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.WorkspaceRemoveCommand(cmd.OutOrStdout(), args[0])
		},
	})

	return cmd
}

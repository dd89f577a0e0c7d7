// Package cmd wires the kanban command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/board"
	"github.com/thenoetrevino/kanban/internal/cli/list"
	"github.com/thenoetrevino/kanban/internal/cli/task"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "kanban",
	Short: "Kanban - ordered boards, lists and tasks",
	Long: `Kanban keeps boards, their lists and the lists' tasks in a user-defined order.

Run "kanban serve" to expose the REST API and "kanban tui" to work with it from
the terminal. The board, list and task commands operate on the configured
database directly.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/kanban/config.yaml)")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.UsageError("%v", err)
	})

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(withLocalApp(showCmd()))
	rootCmd.AddCommand(withLocalApp(seedCmd()))
	rootCmd.AddCommand(withLocalApp(board.BoardCmd()))
	rootCmd.AddCommand(withLocalApp(list.ListCmd()))
	rootCmd.AddCommand(withLocalApp(task.TaskCmd()))
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return cli.ExitSuccess
	}

	// Commands using the output formatter have already reported.
	var exitErr *cli.CommandError
	if !errors.As(err, &exitErr) || exitErr.Code == cli.ExitUsage {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return cli.ExitCodeFor(err)
}

// loadConfig reads the file named by --config, or the default location.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// withLocalApp opens the configured database before any subcommand of cmd
// runs and hands it to them through the command context.
func withLocalApp(cmd *cobra.Command) *cobra.Command {
	var (
		c         *cli.CLI
		logCloser io.Closer
	)

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, closer, err := logging.Init(cfg.Log, false)
		if err != nil {
			return err
		}
		logCloser = closer

		a, err := app.Open(cmd.Context(), cfg.Database, app.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		c = cli.New(a)
		cmd.SetContext(cli.WithCLI(cmd.Context(), c))
		return nil
	}
	cmd.PersistentPostRunE = func(*cobra.Command, []string) error {
		if logCloser != nil {
			defer logCloser.Close()
		}
		if c == nil {
			return nil
		}
		return c.Close()
	}
	return cmd
}

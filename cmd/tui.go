package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/client"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/tui"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal client",
		Long: `Open the terminal client against a running "kanban serve".

Logs go to ~/.kanban/logs/kanban.log unless log.file is set.`,
		Args: cobra.NoArgs,
		RunE: runTUI,
	}
	cmd.Flags().String("api-url", "", "API base URL (overrides client.api_url)")
	return cmd
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if url, _ := cmd.Flags().GetString("api-url"); url != "" {
		cfg.Client.APIURL = url
	}

	// The terminal belongs to the client; logs must not draw over it.
	logger, closer, err := logging.Init(cfg.Log, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	c := client.New(cfg.Client.APIURL, time.Duration(cfg.Client.TimeoutSeconds)*time.Second)
	logger.WithField("api_url", c.BaseURL).Info("tui starting")
	return tui.Run(cmd.Context(), c, cfg, logger)
}

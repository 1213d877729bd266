// Package cli wires the application together: config, cache, logging,
// and the Bubble Tea program.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/whyisjake/today-tui/internal/cache"
	"github.com/whyisjake/today-tui/internal/config"
	"github.com/whyisjake/today-tui/internal/logging"
	"github.com/whyisjake/today-tui/internal/reddit"
	"github.com/whyisjake/today-tui/internal/ui"
)

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "today-tui",
		Short: "A terminal Reddit reader",
		Long:  "today-tui reads subreddit listings and threaded comment discussions in the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file path")
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func run(cfg config.Config) error {
	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}

	logger, err := logging.Setup(cfg.LogPath)
	if err != nil {
		return err
	}

	db, err := cache.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer db.Close()

	client := reddit.NewClient()

	app := ui.NewApp(cfg, client, db, logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

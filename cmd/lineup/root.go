package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/lineup/internal/config"
	"github.com/okian/lineup/pkg/logger"
)

// cli carries state shared by subcommands after the root pre-run.
type cli struct {
	cfg *config.Config
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "lineup",
		Short: "Check a fantasy roster against expert consensus rankings",
		Long: `lineup reads your league rosters and the weekly expert consensus
rankings, then reports bench players who outrank starters and available
players who outrank the ones you roster.

Configuration comes from defaults, an optional YAML file named by
LINEUP_CONFIG, a .env file, and LINEUP_* environment variables.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.AddCommand(
		newCheckCmd(c),
		newSyncPlayersCmd(c),
		newServeCmd(c),
	)
	return root
}

// setup initialises logging on the command's stderr and loads configuration.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if err := logger.InitWithWriter(cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	c.log = logger.Get()

	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		c.log.Warn(cmd.Context(), "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	c.cfg = cfg
	return nil
}

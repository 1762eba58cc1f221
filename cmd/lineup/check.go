package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	service "github.com/okian/lineup/internal/app"
	"github.com/okian/lineup/internal/report"
	"github.com/okian/lineup/pkg/logger"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func newCheckCmd(c *cli) *cobra.Command {
	var (
		req         service.Request
		syncPlayers bool
		format      string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report lineup and waiver advisories for one week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("unknown format %q", format)
			}
			if err := c.cfg.ValidateRun(); err != nil {
				return err
			}
			svc, err := newService(c.cfg, c.log)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if syncPlayers {
				if _, err := svc.SyncPlayers(ctx); err != nil {
					return err
				}
			}

			res, err := svc.Analyze(ctx, req)
			if err != nil {
				return err
			}
			c.log.Debug(ctx, "rendering report", logger.String("run_id", res.RunID), logger.String("format", format))

			if format == formatJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			return report.Write(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().IntVar(&req.Week, "week", 0, "NFL week to analyse (default: configured or current week)")
	cmd.Flags().IntVar(&req.Season, "season", 0, "NFL season to analyse (default: configured or current season)")
	cmd.Flags().BoolVar(&syncPlayers, "sync-players", false, "download the player catalog before the run")
	cmd.Flags().StringVar(&format, "format", formatText, "output format: text or json")
	return cmd
}

func newSyncPlayersCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sync-players",
		Short: "Download the player catalog and store it locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService(c.cfg, c.log)
			if err != nil {
				return err
			}
			n, err := svc.SyncPlayers(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Stored %d players in %s\n", n, c.cfg.CatalogPath)
			return err
		},
	}
}

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/encounters/internal/content"
	"github.com/cory-johannsen/encounters/internal/frontend/console"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a campaign on this terminal",
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	lib, err := content.Load(cfg.Game.ContentDir, logger)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	out := cmd.OutOrStdout()
	p := console.NewProvider(console.NewStdio(cmd.InOrStdin(), out))
	c, err := lib.NewCampaign(cfg.Game, p, p, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("starting local campaign", zap.String("campaign", c.ID), zap.Strings("party", cfg.Game.Party))
	result, err := c.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Result: %s after %d ticks.\n", result, c.Ticks())
	return nil
}

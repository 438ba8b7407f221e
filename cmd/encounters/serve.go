package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/encounters/internal/content"
	"github.com/cory-johannsen/encounters/internal/frontend/handlers"
	"github.com/cory-johannsen/encounters/internal/frontend/telnet"
	"github.com/cory-johannsen/encounters/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve campaigns over Telnet, one per connection",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	lib, err := content.Load(cfg.Game.ContentDir, logger)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	handler := handlers.NewCampaignHandler(lib.Factory(cfg.Game, logger), logger)
	acceptor := telnet.NewAcceptor(cfg.Telnet, handler, logger)

	lc := server.NewLifecycle(logger)
	lc.Add("telnet", &server.FuncService{
		StartFn: acceptor.ListenAndServe,
		StopFn:  acceptor.Stop,
	})

	logger.Info("starting telnet server",
		zap.String("addr", cfg.Telnet.Addr()),
		zap.String("content_dir", cfg.Game.ContentDir),
	)
	return lc.Run(cmd.Context())
}

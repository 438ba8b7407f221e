// Package main is the entry point for the encounter engine: local play on the
// terminal or networked play over Telnet.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/encounters/internal/config"
	"github.com/cory-johannsen/encounters/internal/observability"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "encounters",
	Short: "Turn-based party encounter engine",
	Long: `Encounters runs a campaign: a party of heroes travels between locations,
resolves attribute checks and enemy fights, and faces a final confrontation.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to configuration file (defaults and ENCOUNTERS_* env vars when empty)")
	flags.String("content", "", "content directory (overrides game.content_dir)")
	flags.Int64("seed", 0, "random seed; 0 draws from crypto/rand (overrides game.seed)")
	flags.String("final-boss-policy", "", "every_tick or once (overrides game.final_boss_policy)")
	flags.Int("max-ticks", 0, "abandon the campaign after this many ticks (overrides game.max_ticks)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

// flagKeys maps persistent flags to configuration keys.
var flagKeys = map[string]string{
	"content":           "game.content_dir",
	"seed":              "game.seed",
	"final-boss-policy": "game.final_boss_policy",
	"max-ticks":         "game.max_ticks",
}

// setup loads configuration, applying flags the user set explicitly, and
// builds the logger.
func setup(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	v := config.NewViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return config.Config{}, nil, fmt.Errorf("binding --%s: %w", name, err)
			}
		}
	}

	cfg, err := config.LoadFromViper(v)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("initializing logger: %w", err)
	}
	return cfg, logger, nil
}

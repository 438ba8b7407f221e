// Package observability builds the zap logger shared by the encounter engine,
// the console and telnet front ends, and the dice roller, and names the
// fields that tie one campaign's log lines together.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/encounters/internal/config"
)

// ServiceName is stamped on every entry as the "service" field.
const ServiceName = "encounters"

// Field keys shared across packages.
const (
	CampaignKey   = "campaign"
	RemoteAddrKey = "remote_addr"
)

// Campaign tags an entry with a campaign ID.
func Campaign(id string) zap.Field { return zap.String(CampaignKey, id) }

// RemoteAddr tags an entry with a telnet peer address.
func RemoteAddr(addr string) zap.Field { return zap.String(RemoteAddrKey, addr) }

// NewLogger creates a structured logger from the given logging configuration.
//
// At debug level sampling is turned off: the dice roller logs every draw with
// the same message, and a sampled logger would drop most of them.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Postcondition: Returns a configured zap.Logger writing to cfg.Output
// (stderr when empty) or a non-nil error.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.InitialFields = map[string]any{"service": ServiceName}
	if level == zapcore.DebugLevel {
		zapCfg.Sampling = nil
	}
	if cfg.Output != "" {
		zapCfg.OutputPaths = []string{cfg.Output}
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

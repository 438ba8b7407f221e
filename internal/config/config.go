// Package config provides Viper-based configuration loading for the encounter
// engine and its front ends.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override, e.g.
// ENCOUNTERS_GAME_SEED.
const EnvPrefix = "ENCOUNTERS"

// TelnetConfig holds Telnet acceptor settings.
type TelnetConfig struct {
	// Host is the bind address for the Telnet listener.
	Host string `mapstructure:"host"`
	// Port is the TCP port for the Telnet listener.
	Port int `mapstructure:"port"`
	// ReadTimeout bounds how long a session waits for a player's choice.
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// WriteTimeout is the per-write timeout for Telnet connections.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Addr returns the "host:port" listen address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (t TelnetConfig) Addr() string {
	return fmt.Sprintf("%s:%d", t.Host, t.Port)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a zap sink: "stderr", "stdout", or a file path. The console
	// front end defaults to a file so logs do not interleave with the story.
	Output string `mapstructure:"output"`
}

// GameConfig holds campaign settings.
type GameConfig struct {
	// ContentDir holds the archetypes/, enemies/, and locations/ directories.
	ContentDir string `mapstructure:"content_dir"`
	// Party lists the identities of the party members in order.
	Party []string `mapstructure:"party"`
	// FinalBossPolicy is "every_tick" or "once".
	FinalBossPolicy string `mapstructure:"final_boss_policy"`
	// Seed makes a campaign reproducible; 0 draws from crypto/rand.
	Seed int64 `mapstructure:"seed"`
	// MaxTicks abandons a campaign after this many ticks; 0 means no limit.
	MaxTicks int `mapstructure:"max_ticks"`
}

// Config is the top-level application configuration.
type Config struct {
	Telnet  TelnetConfig  `mapstructure:"telnet"`
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateTelnet(c.Telnet); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateTelnet(t TelnetConfig) error {
	var errs []string
	if t.Port < 1 || t.Port > 65535 {
		errs = append(errs, fmt.Sprintf("telnet.port must be 1-65535, got %d", t.Port))
	}
	if t.ReadTimeout < 0 {
		errs = append(errs, "telnet.read_timeout must not be negative")
	}
	if t.WriteTimeout < 0 {
		errs = append(errs, "telnet.write_timeout must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return fmt.Errorf("logging.output must not be empty")
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.ContentDir == "" {
		errs = append(errs, "game.content_dir must not be empty")
	}
	if len(g.Party) == 0 {
		errs = append(errs, "game.party must name at least one member")
	}
	for i, name := range g.Party {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Sprintf("game.party[%d] must not be empty", i))
		}
	}
	validPolicies := map[string]bool{"every_tick": true, "once": true}
	if !validPolicies[g.FinalBossPolicy] {
		errs = append(errs, fmt.Sprintf("game.final_boss_policy must be one of [every_tick, once], got %q", g.FinalBossPolicy))
	}
	if g.MaxTicks < 0 {
		errs = append(errs, fmt.Sprintf("game.max_ticks must be >= 0, got %d", g.MaxTicks))
	}
	// Under "once" a partial pass leaves no way to win, so the campaign
	// needs a tick limit to end.
	if g.FinalBossPolicy == "once" && g.MaxTicks == 0 {
		errs = append(errs, "game.max_ticks must be > 0 when game.final_boss_policy is \"once\"")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and
// environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// NewViper returns a Viper instance with defaults and ENCOUNTERS_ environment
// overrides applied. Commands bind their flags to it before calling
// LoadFromViper.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("telnet.host", "0.0.0.0")
	v.SetDefault("telnet.port", 4000)
	v.SetDefault("telnet.read_timeout", "10m")
	v.SetDefault("telnet.write_timeout", "30s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("game.content_dir", "content")
	v.SetDefault("game.party", []string{"Iron Man", "Captain America", "Thor"})
	v.SetDefault("game.final_boss_policy", "every_tick")
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.max_ticks", 0)
}

// Package content loads the data-driven parts of a campaign from disk and
// assembles fresh campaigns from them.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/cory-johannsen/encounters/internal/config"
	"github.com/cory-johannsen/encounters/internal/game/actor"
	"github.com/cory-johannsen/encounters/internal/game/campaign"
	"github.com/cory-johannsen/encounters/internal/game/dice"
	"github.com/cory-johannsen/encounters/internal/game/encounter"
	"github.com/cory-johannsen/encounters/internal/game/npc"
	"github.com/cory-johannsen/encounters/internal/game/world"
)

// Subdirectories of a content directory.
const (
	ArchetypesDir = "archetypes"
	EnemiesDir    = "enemies"
	LocationsDir  = "locations"
)

// Library is the validated content a campaign is built from. It is read-only
// after Load and safe to share between concurrent sessions.
type Library struct {
	Archetypes *actor.Registry
	Enemies    map[string]*npc.Template
	Locations  []*world.Blueprint
}

// Load reads archetypes/, enemies/, and locations/ under dir. The first two
// are optional; locations/ must hold at least one location.
//
// Postcondition: Every location builds against the loaded enemies, so a
// dangling enemy reference fails here rather than mid-campaign.
func Load(dir string, logger *zap.Logger) (*Library, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var archetypes []*actor.Archetype
	if path := filepath.Join(dir, ArchetypesDir); exists(path) {
		var err error
		if archetypes, err = actor.LoadArchetypes(path); err != nil {
			return nil, err
		}
	}

	enemies := map[string]*npc.Template{}
	if path := filepath.Join(dir, EnemiesDir); exists(path) {
		templates, err := npc.LoadTemplates(path)
		if err != nil {
			return nil, err
		}
		if enemies, err = npc.Index(templates); err != nil {
			return nil, err
		}
	}

	locations, err := world.LoadBlueprintsFromDir(filepath.Join(dir, LocationsDir))
	if err != nil {
		return nil, describe(dir, err)
	}
	if _, err := world.BuildAll(locations, enemies); err != nil {
		return nil, describe(dir, err)
	}

	logger.Info("content loaded",
		zap.String("dir", dir),
		zap.Int("archetypes", len(archetypes)),
		zap.Int("enemies", len(enemies)),
		zap.Int("locations", len(locations)),
	)
	return &Library{
		Archetypes: actor.NewRegistry(archetypes...),
		Enemies:    enemies,
		Locations:  locations,
	}, nil
}

// describe marks malformed encounter records so they read as content bugs
// rather than I/O failures.
func describe(dir string, err error) error {
	if encounter.IsConfigurationError(err) {
		return fmt.Errorf("content in %s has a malformed encounter definition: %w", dir, err)
	}
	return err
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// NewCampaign builds a campaign with a fresh party and fresh locations.
//
// Postcondition: Returns an error if cfg names an unknown final boss policy.
func (l *Library) NewCampaign(
	cfg config.GameConfig,
	sel encounter.SelectionProvider,
	narrator encounter.Narrator,
	logger *zap.Logger,
) (*campaign.Campaign, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	policy, err := campaign.ParsePolicy(cfg.FinalBossPolicy)
	if err != nil {
		return nil, err
	}
	locations, err := world.BuildAll(l.Locations, l.Enemies)
	if err != nil {
		return nil, err
	}
	src := dice.NewLoggedRoller(dice.NewSource(cfg.Seed), logger)

	c, err := campaign.New(l.Archetypes.NewParty(cfg.Party), locations, sel, narrator, src, campaign.Options{
		Policy:   policy,
		MaxTicks: cfg.MaxTicks,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating campaign: %w", err)
	}
	return c, nil
}

// SessionSeed derives the dice seed for the n-th session started from one
// Factory. Session 0 uses seed itself; later sessions get distinct non-zero
// seeds so concurrent telnet players do not replay each other's rolls. A zero
// seed stays zero and keeps every session on the crypto source.
func SessionSeed(seed, n int64) int64 {
	if seed == 0 {
		return 0
	}
	s := seed ^ n
	if s == 0 {
		s = ^seed
	}
	return s
}

// Factory binds cfg and logger so that front ends can create one campaign per
// player session. Each campaign it creates gets its own SessionSeed.
func (l *Library) Factory(cfg config.GameConfig, logger *zap.Logger) func(encounter.SelectionProvider, encounter.Narrator) (*campaign.Campaign, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var sessions atomic.Int64
	return func(sel encounter.SelectionProvider, n encounter.Narrator) (*campaign.Campaign, error) {
		game := cfg
		session := sessions.Add(1) - 1
		game.Seed = SessionSeed(cfg.Seed, session)
		logger.Debug("creating session campaign",
			zap.Int64("session", session),
			zap.Int64("seed", game.Seed),
		)
		return l.NewCampaign(game, sel, n, logger)
	}
}

// Package campaign runs the top-level loop: travel to a random location,
// resolve a random event there, then decide whether the game is over.
package campaign

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/encounters/internal/game/actor"
	"github.com/cory-johannsen/encounters/internal/game/dice"
	"github.com/cory-johannsen/encounters/internal/game/encounter"
	"github.com/cory-johannsen/encounters/internal/game/world"
	"github.com/cory-johannsen/encounters/internal/observability"
)

// ErrFinished is returned by Tick once the campaign has ended.
var ErrFinished = errors.New("campaign: already finished")

// Options tune a Campaign. The zero value is valid.
type Options struct {
	Policy Policy
	// MaxTicks ends the campaign as abandoned after this many ticks; 0 means
	// no limit.
	MaxTicks int
	// Finale overrides the final confrontation event.
	Finale *encounter.Event
	Logger *zap.Logger
}

// Campaign owns the party and the locations for one play-through.
//
// Campaigns are not safe for concurrent use; every call blocks on the
// SelectionProvider.
type Campaign struct {
	ID string

	party     []*actor.Actor
	locations []*world.Location
	finale    *encounter.Event
	selector  encounter.SelectionProvider
	narrator  encounter.Narrator
	src       dice.Source
	policy    Policy
	maxTicks  int
	logger    *zap.Logger

	continuePlaying   bool
	defeatedFinalBoss bool
	finaleAttempted   bool
	ticks             int
	result            Result
}

// New creates a Campaign ready to tick.
//
// Precondition: selector, narrator, and src must be non-nil.
// Postcondition: Returns an error if party or locations is empty, or if
// PolicyOnce is set without a tick limit, since a partial pass on the only
// finale would leave the campaign with no way to end.
func New(
	party []*actor.Actor,
	locations []*world.Location,
	selector encounter.SelectionProvider,
	narrator encounter.Narrator,
	src dice.Source,
	opts Options,
) (*Campaign, error) {
	if selector == nil || narrator == nil || src == nil {
		panic("campaign.New: precondition violated: selector, narrator, and src must be non-nil")
	}
	if len(party) == 0 {
		return nil, fmt.Errorf("campaign: party must not be empty")
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("campaign: at least one location is required")
	}
	if opts.MaxTicks < 0 {
		return nil, fmt.Errorf("campaign: max ticks must be >= 0, got %d", opts.MaxTicks)
	}
	if opts.Policy == PolicyOnce && opts.MaxTicks == 0 {
		return nil, fmt.Errorf("campaign: policy %q requires max ticks > 0", opts.Policy)
	}

	finale := opts.Finale
	if finale == nil {
		finale = encounter.NewFinalConfrontation()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Campaign{
		ID:              id,
		party:           party,
		locations:       locations,
		finale:          finale,
		selector:        selector,
		narrator:        narrator,
		src:             src,
		policy:          opts.Policy,
		maxTicks:        opts.MaxTicks,
		logger:          logger.With(observability.Campaign(id)),
		continuePlaying: true,
	}, nil
}

// Party returns the party in its original order, fallen members included.
func (c *Campaign) Party() []*actor.Actor { return c.party }

// Locations returns the campaign's locations.
func (c *Campaign) Locations() []*world.Location { return c.locations }

// ContinuePlaying reports whether another Tick may run.
func (c *Campaign) ContinuePlaying() bool { return c.continuePlaying }

// DefeatedFinalBoss reports whether the final confrontation was won.
func (c *Campaign) DefeatedFinalBoss() bool { return c.defeatedFinalBoss }

// Ticks returns how many ticks have run.
func (c *Campaign) Ticks() int { return c.ticks }

// Result returns the terminal state, or ResultPending while playing.
func (c *Campaign) Result() Result { return c.result }

func (c *Campaign) env() encounter.Env {
	return encounter.Env{
		Party:    c.party,
		Selector: c.selector,
		Narrator: c.narrator,
		Source:   c.src,
		Logger:   c.logger,
	}
}

// Tick runs one loop iteration: pick a location, pick one of its events,
// resolve it, then evaluate termination.
//
// A SelectionProvider error aborts the campaign as abandoned and is returned.
func (c *Campaign) Tick(ctx context.Context) error {
	if !c.continuePlaying {
		return ErrFinished
	}
	c.ticks++

	loc := c.locations[dice.Pick(c.src, len(c.locations))]
	c.narrator.Narrate(fmt.Sprintf("The party travels to %s.", loc.Name))
	if loc.Description != "" {
		c.narrator.Narrate(loc.Description)
	}

	ev := loc.PickEvent(c.src)
	status, err := ev.Resolve(ctx, c.env())
	if err != nil {
		c.finish(ResultAbandoned)
		return fmt.Errorf("tick %d at %s: %w", c.ticks, loc.ID, err)
	}
	c.logger.Info("event resolved",
		zap.Int("tick", c.ticks),
		zap.String("location", loc.ID),
		zap.Stringer("kind", ev.Kind),
		zap.Stringer("status", status),
	)

	return c.checkTermination(ctx)
}

// checkTermination ends the campaign when the party has fallen, runs the
// final confrontation when the policy calls for it, and enforces MaxTicks.
func (c *Campaign) checkTermination(ctx context.Context) error {
	if !actor.AnyAlive(c.party) {
		c.narrator.Narrate("The entire party has fallen.")
		c.finish(ResultDefeat)
		return nil
	}

	if !c.defeatedFinalBoss && (c.policy == PolicyEveryTick || !c.finaleAttempted) {
		c.finaleAttempted = true
		status, err := c.finale.Resolve(ctx, c.env())
		if err != nil {
			c.finish(ResultAbandoned)
			return fmt.Errorf("final confrontation: %w", err)
		}
		c.logger.Info("final confrontation resolved", zap.Int("tick", c.ticks), zap.Stringer("status", status))
		switch status {
		case encounter.StatusPass:
			c.defeatedFinalBoss = true
			c.finish(ResultVictory)
			return nil
		case encounter.StatusFail:
			c.finish(ResultDefeat)
			return nil
		}
	}

	if c.maxTicks > 0 && c.ticks >= c.maxTicks {
		c.narrator.Narrate("The party's journey has run its course.")
		c.finish(ResultAbandoned)
	}
	return nil
}

func (c *Campaign) finish(r Result) {
	c.continuePlaying = false
	c.result = r
	c.logger.Info("campaign finished", zap.Int("ticks", c.ticks), zap.Stringer("result", r))
}

// Run ticks until the campaign ends, then narrates the closing line.
//
// Postcondition: ContinuePlaying() is false on return.
func (c *Campaign) Run(ctx context.Context) (Result, error) {
	c.logger.Info("campaign started",
		zap.Int("party", len(c.party)),
		zap.Int("locations", len(c.locations)),
		zap.Stringer("policy", c.policy),
	)
	for c.continuePlaying {
		if err := ctx.Err(); err != nil {
			c.finish(ResultAbandoned)
			return c.result, err
		}
		if err := c.Tick(ctx); err != nil {
			return c.result, err
		}
	}
	c.narrator.Narrate("Game Over.")
	return c.result, nil
}

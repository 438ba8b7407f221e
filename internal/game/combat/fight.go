package combat

import (
	"context"

	"go.uber.org/zap"

	"github.com/cory-johannsen/encounters/internal/game/dice"
)

// Winner reports which side of a Fight is left standing.
type Winner int

const (
	HeroWon Winner = iota
	FoeWon
)

// String returns a human-readable label.
func (w Winner) String() string {
	if w == HeroWon {
		return "hero"
	}
	return "foe"
}

// Turn is the hero's plan for one exchange.
type Turn struct {
	// Item, if non-empty, is used before acting.
	Item string
	// Special, if non-nil, replaces the normal attack.
	Special SpecialMove
}

// Planner chooses the hero's Turn before each exchange.
type Planner interface {
	PlanTurn(ctx context.Context, round int) (Turn, error)
}

// PlannerFunc adapts a function to Planner.
type PlannerFunc func(ctx context.Context, round int) (Turn, error)

// PlanTurn calls f.
func (f PlannerFunc) PlanTurn(ctx context.Context, round int) (Turn, error) { return f(ctx, round) }

// AlwaysAttack is a Planner that never uses items or special moves.
var AlwaysAttack = PlannerFunc(func(context.Context, int) (Turn, error) { return Turn{}, nil })

// Exchange is the record of one round: the hero acts, then the foe counters
// if it survived.
type Exchange struct {
	Round   int
	Item    *ItemResult
	Special *SpecialResult
	Attack  *AttackResult
	Counter *AttackResult
}

// Fight is a duel between one hero StatBlock and one foe StatBlock. Only these
// two StatBlocks take damage.
type Fight struct {
	Hero *StatBlock
	Foe  *StatBlock
	// Planner defaults to AlwaysAttack.
	Planner Planner
	// OnExchange, if set, receives every completed round.
	OnExchange func(Exchange)
	Src        dice.Source
	Logger     *zap.Logger
}

// Run loops until one side's Health reaches zero or below. The hero strikes
// first each round.
//
// Precondition: Hero.Power > 0 and Foe.Power > 0, or the loop may never end.
// Postcondition: on a nil error exactly one of Hero and Foe is alive, and the
// Winner names the living one.
func (f *Fight) Run(ctx context.Context) (Winner, error) {
	planner := f.Planner
	if planner == nil {
		planner = AlwaysAttack
	}
	logger := f.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	for round := 1; ; round++ {
		if !f.Hero.IsAlive() {
			return FoeWon, nil
		}
		if !f.Foe.IsAlive() {
			return HeroWon, nil
		}
		if err := ctx.Err(); err != nil {
			return FoeWon, err
		}

		turn, err := planner.PlanTurn(ctx, round)
		if err != nil {
			return FoeWon, err
		}

		ex := Exchange{Round: round}
		if turn.Item != "" {
			r := f.Hero.UseItem(turn.Item)
			ex.Item = &r
		}
		if turn.Special != nil {
			r := turn.Special.Resolve(f.Hero, f.Foe, f.Src)
			ex.Special = &r
		} else {
			r := f.Hero.Attack(f.Foe, f.Src)
			ex.Attack = &r
		}
		if f.Foe.IsAlive() {
			r := f.Foe.Attack(f.Hero, f.Src)
			ex.Counter = &r
		}

		logger.Debug("fight exchange",
			zap.Int("round", round),
			zap.String("hero", f.Hero.Name),
			zap.Int("hero_health", f.Hero.Health),
			zap.String("foe", f.Foe.Name),
			zap.Int("foe_health", f.Foe.Health),
		)
		if f.OnExchange != nil {
			f.OnExchange(ex)
		}
	}
}

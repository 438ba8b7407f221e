package encounter

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/encounters/internal/game/actor"
	"github.com/cory-johannsen/encounters/internal/game/combat"
	"github.com/cory-johannsen/encounters/internal/game/dice"
	"github.com/cory-johannsen/encounters/internal/game/npc"
)

// Kind selects how an Event resolves.
type Kind int

const (
	KindAttributeCheck Kind = iota
	KindEnemyEncounter
	KindFinalConfrontation
)

// String returns a human-readable kind label.
func (k Kind) String() string {
	switch k {
	case KindEnemyEncounter:
		return "enemy encounter"
	case KindFinalConfrontation:
		return "final confrontation"
	default:
		return "attribute check"
	}
}

// Final confrontation narrative.
const (
	finalPrimary   = "Strength"
	finalSecondary = "Endurance"
	finalPrompt    = "Thanos descends with the Infinity Gauntlet. This is the final confrontation: choose who stands against him, and how."
	finalPass      = "Thanos staggers and falls. The gauntlet slips from his hand. The universe is saved!"
	finalFail      = "Thanos snaps his fingers. Half of all life fades to dust."
	finalPartial   = "You hold Thanos off, but he withdraws to gather his strength. He will return."
)

// Event is an encounter template plus its resolution status.
//
// Invariant: Enemy is non-nil iff Kind == KindEnemyEncounter.
type Event struct {
	Kind               Kind
	PrimaryAttribute   string
	SecondaryAttribute string
	PromptText         string
	PassMessage        string
	FailMessage        string
	PartialPassMessage string
	Enemy              *npc.Template

	status Status
}

// NewAttributeCheck builds an attribute check from a validated definition.
func NewAttributeCheck(def Definition) *Event {
	return &Event{
		Kind:               KindAttributeCheck,
		PrimaryAttribute:   def.PrimaryAttribute,
		SecondaryAttribute: def.SecondaryAttribute,
		PromptText:         def.PromptText,
		PassMessage:        def.Pass.Message,
		FailMessage:        def.Fail.Message,
		PartialPassMessage: def.PartialPass.Message,
	}
}

// NewEnemyEncounter builds an enemy encounter from a validated definition.
//
// Precondition: enemy must be non-nil.
func NewEnemyEncounter(def Definition, enemy *npc.Template) *Event {
	if enemy == nil {
		panic("encounter.NewEnemyEncounter: precondition violated: enemy must be non-nil")
	}
	e := NewAttributeCheck(def)
	e.Kind = KindEnemyEncounter
	e.Enemy = enemy
	return e
}

// NewFinalConfrontation builds the fixed boss event. It resolves like an
// attribute check with Strength as the primary and Endurance as the secondary
// attribute.
func NewFinalConfrontation() *Event {
	return &Event{
		Kind:               KindFinalConfrontation,
		PrimaryAttribute:   finalPrimary,
		SecondaryAttribute: finalSecondary,
		PromptText:         finalPrompt,
		PassMessage:        finalPass,
		FailMessage:        finalFail,
		PartialPassMessage: finalPartial,
	}
}

// Status returns the outcome of the most recent resolution.
func (e *Event) Status() Status {
	return e.status
}

// Message returns the narrative for a terminal status.
func (e *Event) Message(s Status) string {
	switch s {
	case StatusPass:
		return e.PassMessage
	case StatusFail:
		return e.FailMessage
	case StatusPartialPass:
		return e.PartialPassMessage
	default:
		return ""
	}
}

// Env carries the collaborators a resolution needs.
type Env struct {
	Party    []*actor.Actor
	Selector SelectionProvider
	Narrator Narrator
	Source   dice.Source
	Logger   *zap.Logger
}

func (env Env) logger() *zap.Logger {
	if env.Logger == nil {
		return zap.NewNop()
	}
	return env.Logger
}

// Resolve runs the event to a terminal status. An enemy encounter runs its
// whole fight before returning.
//
// Postcondition: on a nil error the returned Status is resolved and equals
// e.Status(); on error e.Status() is StatusUnknown.
func (e *Event) Resolve(ctx context.Context, env Env) (Status, error) {
	e.status = StatusUnknown

	var (
		status Status
		err    error
	)
	switch e.Kind {
	case KindEnemyEncounter:
		status, err = e.resolveFight(ctx, env)
	case KindAttributeCheck, KindFinalConfrontation:
		status, err = e.resolveCheck(ctx, env)
	default:
		panic(fmt.Sprintf("encounter: unknown event kind %d", e.Kind))
	}
	if err != nil {
		return StatusUnknown, fmt.Errorf("resolving %s: %w", e.Kind, err)
	}

	e.status = status
	env.Narrator.Narrate(e.Message(status))
	env.logger().Debug("event resolved",
		zap.Stringer("kind", e.Kind),
		zap.Stringer("status", status),
	)
	return status, nil
}

func (e *Event) resolveCheck(ctx context.Context, env Env) (Status, error) {
	env.Narrator.Narrate(e.PromptText)
	_, stat, err := chooseCombatant(ctx, env)
	if err != nil {
		return StatusUnknown, err
	}
	if stat == nil {
		return StatusFail, nil
	}
	return Judge(stat.Name, e.PrimaryAttribute, e.SecondaryAttribute), nil
}

func (e *Event) resolveFight(ctx context.Context, env Env) (Status, error) {
	env.Narrator.Narrate(e.PromptText)
	foe := e.Enemy.Spawn()
	env.Narrator.Narrate(fmt.Sprintf("%s appears!", foe.Name))
	if taunt, ok := e.Enemy.Taunt(env.Source); ok {
		env.Narrator.Narrate(fmt.Sprintf("%s: %q", foe.Name, taunt))
	}

	hero, stat, err := chooseCombatant(ctx, env)
	if err != nil {
		return StatusUnknown, err
	}
	if stat == nil {
		return StatusFail, nil
	}
	foeStat, ok := foe.FirstAlive()
	if !ok {
		return StatusPass, nil
	}

	fight := &combat.Fight{
		Hero:       stat,
		Foe:        foeStat,
		Planner:    &turnPlanner{sel: env.Selector, hero: hero, stat: stat},
		OnExchange: exchangeNarrator(env.Narrator, hero.Name, foe.Name, stat, foeStat),
		Src:        env.Source,
		Logger:     env.logger(),
	}
	winner, err := fight.Run(ctx)
	if err != nil {
		return StatusUnknown, err
	}
	env.logger().Info("fight finished",
		zap.String("hero", hero.Name),
		zap.String("stat", stat.Name),
		zap.String("enemy", foe.Name),
		zap.Stringer("winner", winner),
	)
	if winner == combat.HeroWon {
		return StatusPass, nil
	}
	return StatusFail, nil
}

// chooseCombatant asks for a living party member and one of its stats.
// It returns a nil stat when nobody in the party is alive.
func chooseCombatant(ctx context.Context, env Env) (*actor.Actor, *combat.StatBlock, error) {
	living := actor.Living(env.Party)
	if len(living) == 0 {
		return nil, nil, nil
	}
	idx, err := env.Selector.ChooseActor(ctx, living)
	if err != nil {
		return nil, nil, fmt.Errorf("choosing actor: %w", err)
	}
	hero := living[mustIndex("ChooseActor", idx, len(living))]

	stats := hero.Stats()
	idx, err = env.Selector.ChooseStat(ctx, hero)
	if err != nil {
		return nil, nil, fmt.Errorf("choosing stat: %w", err)
	}
	return hero, stats[mustIndex("ChooseStat", idx, len(stats))], nil
}

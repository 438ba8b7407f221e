// Package actor defines party members and enemies as ordered collections of
// StatBlocks, plus the data-driven archetypes they are built from.
package actor

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cory-johannsen/encounters/internal/game/combat"
)

// Actor is a party member or an enemy.
//
// Invariant: len(Stats()) >= 1; IsAlive() iff at least one StatBlock is alive.
// Actors are mutated in place by combat and never removed from a party.
type Actor struct {
	// ID uniquely identifies this runtime actor.
	ID string
	// Name is the identity shown to players, e.g. "Iron Man".
	Name string
	// Archetype is the ID of the template the actor was built from.
	Archetype string

	stats []*combat.StatBlock
}

// New builds an Actor owning stats in the given order.
//
// Precondition: at least one StatBlock.
func New(name, archetype string, stats ...*combat.StatBlock) *Actor {
	if len(stats) == 0 {
		panic("actor.New: precondition violated: an actor needs at least one stat block")
	}
	return &Actor{
		ID:        uuid.NewString(),
		Name:      name,
		Archetype: archetype,
		stats:     stats,
	}
}

// Stats returns the StatBlocks in archetype order. Menus and attribute checks
// iterate this order, so it is stable for the life of the actor.
func (a *Actor) Stats() []*combat.StatBlock {
	out := make([]*combat.StatBlock, len(a.stats))
	copy(out, a.stats)
	return out
}

// Stat returns the StatBlock with the given name.
func (a *Actor) Stat(name string) (*combat.StatBlock, bool) {
	for _, s := range a.stats {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// IsAlive reports whether any owned StatBlock is alive.
func (a *Actor) IsAlive() bool {
	for _, s := range a.stats {
		if s.IsAlive() {
			return true
		}
	}
	return false
}

// FirstAlive returns the first living StatBlock in archetype order.
func (a *Actor) FirstAlive() (*combat.StatBlock, bool) {
	for _, s := range a.stats {
		if s.IsAlive() {
			return s, true
		}
	}
	return nil, false
}

// SpecialMoves returns the available special moves, one per distinct class
// among the actor's StatBlocks, in archetype order.
func (a *Actor) SpecialMoves() []combat.SpecialMove {
	var moves []combat.SpecialMove
	seen := make(map[combat.Class]bool)
	for _, s := range a.stats {
		if seen[s.Class] {
			continue
		}
		seen[s.Class] = true
		if m := s.Class.SpecialMove(); m.Available() {
			moves = append(moves, m)
		}
	}
	return moves
}

// String renders the actor with its stats for menus and logs.
func (a *Actor) String() string {
	parts := make([]string, len(a.stats))
	for i, s := range a.stats {
		parts[i] = s.String()
	}
	return fmt.Sprintf("%s [%s]", a.Name, strings.Join(parts, "; "))
}

// AnyAlive reports whether at least one actor in party is alive.
func AnyAlive(party []*Actor) bool {
	for _, a := range party {
		if a.IsAlive() {
			return true
		}
	}
	return false
}

// Living returns the living members of party in order.
func Living(party []*Actor) []*Actor {
	var out []*Actor
	for _, a := range party {
		if a.IsAlive() {
			out = append(out, a)
		}
	}
	return out
}

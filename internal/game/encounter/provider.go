package encounter

import (
	"context"
	"fmt"

	"github.com/cory-johannsen/encounters/internal/game/actor"
	"github.com/cory-johannsen/encounters/internal/game/combat"
)

//go:generate mockgen -destination=encountermock/mock_provider.go -package=encountermock github.com/cory-johannsen/encounters/internal/game/encounter SelectionProvider,Narrator

// SelectionProvider supplies every player choice the engine needs. Calls are
// synchronous. Implementations reprompt on invalid input and return only
// in-range indices; any error aborts the current event.
type SelectionProvider interface {
	// ChooseActor returns an index into party.
	ChooseActor(ctx context.Context, party []*actor.Actor) (int, error)
	// ChooseStat returns an index into a.Stats().
	ChooseStat(ctx context.Context, a *actor.Actor) (int, error)
	// ChooseSpecialMove returns an index into a.SpecialMoves().
	ChooseSpecialMove(ctx context.Context, a *actor.Actor) (int, error)
	// ChooseItem returns an index into s.Items().
	ChooseItem(ctx context.Context, s *combat.StatBlock) (int, error)
	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Narrator is the one-way sink for player-facing text.
type Narrator interface {
	Narrate(text string)
}

// NarratorFunc adapts a function to Narrator.
type NarratorFunc func(text string)

// Narrate calls f.
func (f NarratorFunc) Narrate(text string) { f(text) }

// mustIndex enforces the provider contract: an out-of-range index is a
// programming error in the provider, not recoverable input.
func mustIndex(method string, idx, n int) int {
	if idx < 0 || idx >= n {
		panic(fmt.Sprintf("encounter: SelectionProvider.%s returned index %d outside [0, %d)", method, idx, n))
	}
	return idx
}

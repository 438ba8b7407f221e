package actor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/encounters/internal/game/actor"
)

func TestRegistry_KnownIdentity(t *testing.T) {
	r := actor.NewRegistry(loadArchetype(t, ironManYAML), loadArchetype(t, captainYAML))
	assert.Equal(t, 2, r.Len())

	a := r.NewActor("iron man")
	assert.Equal(t, "iron man", a.Name)
	assert.Equal(t, "Iron Man", a.Archetype)
	intel, ok := a.Stat("Intelligence")
	require.True(t, ok)
	assert.Equal(t, 25, intel.Power)
}

func TestRegistry_UnknownIdentityFallsBack(t *testing.T) {
	r := actor.NewRegistry(loadArchetype(t, ironManYAML))
	a := r.NewActor("Squirrel Girl")
	assert.Equal(t, actor.DefaultArchetypeID, a.Archetype)

	stats := a.Stats()
	require.Len(t, stats, 2)
	assert.Equal(t, "Strength", stats[0].Name)
	assert.Equal(t, "Intelligence", stats[1].Name)
	assert.Equal(t, 100, stats[0].Health)
	assert.Equal(t, 10, stats[0].Power)
}

func TestRegistry_DefaultOverride(t *testing.T) {
	custom := &actor.Archetype{
		ID:    actor.DefaultArchetypeID,
		Stats: []actor.StatTemplate{{Name: "Grit", Health: 50, Power: 5}},
	}
	r := actor.NewRegistry(custom)
	assert.Zero(t, r.Len())

	a := r.NewActor("Anyone")
	_, ok := a.Stat("Grit")
	assert.True(t, ok)
}

func TestRegistry_NewPartyPreservesOrder(t *testing.T) {
	r := actor.NewRegistry(loadArchetype(t, ironManYAML), loadArchetype(t, captainYAML))
	party := r.NewParty([]string{"Captain America", "Iron Man", "Nobody"})
	require.Len(t, party, 3)
	assert.Equal(t, "Captain America", party[0].Name)
	assert.Equal(t, "Iron Man", party[1].Name)
	assert.Equal(t, "Nobody", party[2].Name)
	assert.NotEqual(t, party[0].ID, party[1].ID)
}

func TestRegistry_RegisterPreconditions(t *testing.T) {
	r := actor.NewRegistry()
	assert.Panics(t, func() { r.Register(nil) })
	assert.Panics(t, func() { r.Register(&actor.Archetype{}) })
}

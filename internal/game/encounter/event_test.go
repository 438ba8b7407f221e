package encounter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/encounters/internal/game/actor"
	"github.com/cory-johannsen/encounters/internal/game/combat"
	"github.com/cory-johannsen/encounters/internal/game/dice"
	"github.com/cory-johannsen/encounters/internal/game/encounter"
	"github.com/cory-johannsen/encounters/internal/game/encounter/encountermock"
	"github.com/cory-johannsen/encounters/internal/game/npc"
	"github.com/cory-johannsen/encounters/internal/testutil"
)

type transcript struct{ lines []string }

func (tr *transcript) Narrate(text string) { tr.lines = append(tr.lines, text) }

func definition(primary, secondary string) encounter.Definition {
	return encounter.Definition{
		PrimaryAttribute:   primary,
		SecondaryAttribute: secondary,
		PromptText:         "prompt",
		Pass:               &encounter.OutcomeText{Message: "passed"},
		Fail:               &encounter.OutcomeText{Message: "failed"},
		PartialPass:        &encounter.OutcomeText{Message: "partial"},
	}
}

func captainAmerica() *actor.Actor {
	a := &actor.Archetype{
		ID:    "Captain America",
		Class: "Super Soldier",
		Stats: []actor.StatTemplate{
			{Name: "Strength", Health: 120, Power: 20},
			{Name: "Endurance", Health: 120, Power: 15, Items: []string{combat.RestorativeShield}},
		},
	}
	return a.Build("Captain America")
}

func ironMan() *actor.Actor {
	a := &actor.Archetype{
		ID:    "Iron Man",
		Class: "Genius",
		Stats: []actor.StatTemplate{
			{Name: "Strength", Health: 100, Power: 15},
			{Name: "Intelligence", Health: 100, Power: 25},
		},
	}
	return a.Build("Iron Man")
}

func enemy(health, power int) *npc.Template {
	return &npc.Template{
		ID:    "ultron",
		Name:  "Ultron",
		Stats: []actor.StatTemplate{{Name: "Might", Health: health, Power: power}},
	}
}

func newEnv(t *testing.T, sel encounter.SelectionProvider, src dice.Source, party ...*actor.Actor) (encounter.Env, *transcript) {
	tr := &transcript{}
	return encounter.Env{
		Party:    party,
		Selector: sel,
		Narrator: tr,
		Source:   src,
		Logger:   zaptest.NewLogger(t),
	}, tr
}

func TestAttributeCheck_Scenario_EnduranceFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	sel := encountermock.NewMockSelectionProvider(ctrl)
	captain := captainAmerica()
	env, tr := newEnv(t, sel, testutil.NewScriptedSource(), captain)

	sel.EXPECT().ChooseActor(gomock.Any(), []*actor.Actor{captain}).Return(0, nil)
	sel.EXPECT().ChooseStat(gomock.Any(), captain).Return(1, nil) // Endurance

	ev := encounter.NewAttributeCheck(definition("Strength", "Intelligence"))
	assert.Equal(t, encounter.StatusUnknown, ev.Status())

	status, err := ev.Resolve(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, encounter.StatusFail, status)
	assert.Equal(t, encounter.StatusFail, ev.Status())
	assert.Equal(t, []string{"prompt", "failed"}, tr.lines)
}

func TestAttributeCheck_PassAndPartial(t *testing.T) {
	tests := []struct {
		stat int
		want encounter.Status
		msg  string
	}{
		{0, encounter.StatusPass, "passed"},        // Strength
		{1, encounter.StatusPartialPass, "partial"}, // Intelligence
	}
	for _, tc := range tests {
		ctrl := gomock.NewController(t)
		sel := encountermock.NewMockSelectionProvider(ctrl)
		im := ironMan()
		env, tr := newEnv(t, sel, testutil.NewScriptedSource(), im)
		sel.EXPECT().ChooseActor(gomock.Any(), gomock.Any()).Return(0, nil)
		sel.EXPECT().ChooseStat(gomock.Any(), im).Return(tc.stat, nil)

		status, err := encounter.NewAttributeCheck(definition("Strength", "Intelligence")).Resolve(context.Background(), env)
		require.NoError(t, err)
		assert.Equal(t, tc.want, status)
		assert.Equal(t, tc.msg, tr.lines[len(tr.lines)-1])
	}
}

func TestAttributeCheck_OffersOnlyLivingActors(t *testing.T) {
	ctrl := gomock.NewController(t)
	sel := encountermock.NewMockSelectionProvider(ctrl)
	fallen, standing := ironMan(), captainAmerica()
	for _, s := range fallen.Stats() {
		s.TakeDamage(1000)
	}
	env, _ := newEnv(t, sel, testutil.NewScriptedSource(), fallen, standing)

	sel.EXPECT().ChooseActor(gomock.Any(), []*actor.Actor{standing}).Return(0, nil)
	sel.EXPECT().ChooseStat(gomock.Any(), standing).Return(0, nil)

	status, err := encounter.NewAttributeCheck(definition("Strength", "Endurance")).Resolve(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, encounter.StatusPass, status)
}

func TestAttributeCheck_NoLivingActorsFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	sel := encountermock.NewMockSelectionProvider(ctrl)
	fallen := ironMan()
	for _, s := range fallen.Stats() {
		s.TakeDamage(1000)
	}
	env, _ := newEnv(t, sel, testutil.NewScriptedSource(), fallen)

	status, err := encounter.NewAttributeCheck(definition("Strength", "Endurance")).Resolve(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, encounter.StatusFail, status)
}

func TestResolve_ProviderErrorLeavesStatusUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	sel := encountermock.NewMockSelectionProvider(ctrl)
	closed := errors.New("input closed")
	env, _ := newEnv(t, sel, testutil.NewScriptedSource(), ironMan())
	sel.EXPECT().ChooseActor(gomock.Any(), gomock.Any()).Return(0, closed)

	ev := encounter.NewAttributeCheck(definition("Strength", "Endurance"))
	status, err := ev.Resolve(context.Background(), env)
	assert.ErrorIs(t, err, closed)
	assert.Equal(t, encounter.StatusUnknown, status)
	assert.Equal(t, encounter.StatusUnknown, ev.Status())
}

func TestResolve_OutOfRangeIndexPanics(t *testing.T) {
	ctrl := gomock.NewController(t)
	sel := encountermock.NewMockSelectionProvider(ctrl)
	env, _ := newEnv(t, sel, testutil.NewScriptedSource(), ironMan())
	sel.EXPECT().ChooseActor(gomock.Any(), gomock.Any()).Return(0, nil)
	sel.EXPECT().ChooseStat(gomock.Any(), gomock.Any()).Return(2, nil)

	ev := encounter.NewAttributeCheck(definition("Strength", "Endurance"))
	assert.Panics(t, func() { _, _ = ev.Resolve(context.Background(), env) })
}

func TestFinalConfrontation_IsStrengthEnduranceCheck(t *testing.T) {
	ev := encounter.NewFinalConfrontation()
	assert.Equal(t, encounter.KindFinalConfrontation, ev.Kind)
	assert.Equal(t, "Strength", ev.PrimaryAttribute)
	assert.Equal(t, "Endurance", ev.SecondaryAttribute)

	ctrl := gomock.NewController(t)
	sel := encountermock.NewMockSelectionProvider(ctrl)
	captain := captainAmerica()
	env, tr := newEnv(t, sel, testutil.NewScriptedSource(), captain)
	sel.EXPECT().ChooseActor(gomock.Any(), gomock.Any()).Return(0, nil)
	sel.EXPECT().ChooseStat(gomock.Any(), captain).Return(1, nil)

	status, err := ev.Resolve(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, encounter.StatusPartialPass, status)
	assert.Equal(t, ev.PartialPassMessage, tr.lines[len(tr.lines)-1])
}

func TestEnemyEncounter_HeroWinsIsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	sel := encountermock.NewMockSelectionProvider(ctrl)
	hero := actor.DefaultArchetype().Build("Peter")
	// hero hits (roll 1) for 5 and the 5 HP enemy falls.
	env, tr := newEnv(t, sel, testutil.NewScriptedSource(0, 4), hero)
	sel.EXPECT().ChooseActor(gomock.Any(), gomock.Any()).Return(0, nil)
	sel.EXPECT().ChooseStat(gomock.Any(), hero).Return(0, nil)

	ev := encounter.NewEnemyEncounter(definition("Strength", "Intelligence"), enemy(5, 10))
	status, err := ev.Resolve(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, encounter.StatusPass, status)
	assert.Contains(t, tr.lines, "Ultron appears!")
	assert.Contains(t, tr.lines, "Peter attacks Ultron for 5 damage!")
	assert.Equal(t, "passed", tr.lines[len(tr.lines)-1])

	strength, _ := hero.Stat("Strength")
	assert.Equal(t, 100, strength.Health)
}

func TestEnemyEncounter_HeroFallsIsFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	sel := encountermock.NewMockSelectionProvider(ctrl)
	hero := actor.DefaultArchetype().Build("Peter")
	intel, _ := hero.Stat("Intelligence")
	intel.Health = 2
	// hero misses; Ultron hits for 2.
	env, _ := newEnv(t, sel, testutil.NewScriptedSource(99, 0, 1), hero)
	sel.EXPECT().ChooseActor(gomock.Any(), gomock.Any()).Return(0, nil)
	sel.EXPECT().ChooseStat(gomock.Any(), hero).Return(1, nil)

	ev := encounter.NewEnemyEncounter(definition("Strength", "Intelligence"), enemy(50, 10))
	status, err := ev.Resolve(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, encounter.StatusFail, status)

	assert.False(t, intel.IsAlive())
	strength, _ := hero.Stat("Strength")
	assert.Equal(t, 100, strength.Health, "only the chosen stat takes damage")
	assert.True(t, hero.IsAlive())
}

func TestEnemyEncounter_SpecialMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	sel := encountermock.NewMockSelectionProvider(ctrl)
	im := ironMan()
	// Repulsor Burst: roll 10 lands; damage draw 25 -> 50.
	env, tr := newEnv(t, sel, testutil.NewScriptedSource(9, 25), im)

	gomock.InOrder(
		sel.EXPECT().ChooseActor(gomock.Any(), gomock.Any()).Return(0, nil),
		sel.EXPECT().ChooseStat(gomock.Any(), im).Return(1, nil),
		sel.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(true, nil),
		sel.EXPECT().ChooseSpecialMove(gomock.Any(), im).Return(0, nil),
	)

	ev := encounter.NewEnemyEncounter(definition("Strength", "Intelligence"), enemy(50, 10))
	status, err := ev.Resolve(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, encounter.StatusPass, status)
	assert.Contains(t, tr.lines, "Iron Man unleashes Repulsor Burst on Ultron for 50 damage!")
}

func TestEnemyEncounter_ItemThenAttack(t *testing.T) {
	ctrl := gomock.NewController(t)
	sel := encountermock.NewMockSelectionProvider(ctrl)
	captain := captainAmerica()
	// Round 1: shield heals 30, attack hits for 1, Ultron misses.
	// Round 2: no item left, attack hits for 1 and Ultron falls.
	env, tr := newEnv(t, sel, testutil.NewScriptedSource(0, 0, 99, 0, 0), captain)

	gomock.InOrder(
		sel.EXPECT().ChooseActor(gomock.Any(), gomock.Any()).Return(0, nil),
		sel.EXPECT().ChooseStat(gomock.Any(), captain).Return(1, nil),
		sel.EXPECT().Confirm(gomock.Any(), "Captain America, use an item before acting?").Return(true, nil),
		sel.EXPECT().ChooseItem(gomock.Any(), gomock.Any()).Return(0, nil),
		sel.EXPECT().Confirm(gomock.Any(), "Captain America, use a special move?").Return(false, nil),
		sel.EXPECT().Confirm(gomock.Any(), "Captain America, use a special move?").Return(false, nil),
	)

	ev := encounter.NewEnemyEncounter(definition("Strength", "Intelligence"), enemy(2, 10))
	status, err := ev.Resolve(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, encounter.StatusPass, status)

	endurance, _ := captain.Stat("Endurance")
	assert.Equal(t, 150, endurance.Health)
	assert.Empty(t, endurance.Items())
	assert.Contains(t, tr.lines, "Captain America heals for 30 HP!")
}

func TestEnemyEncounter_TauntIsNarrated(t *testing.T) {
	ctrl := gomock.NewController(t)
	sel := encountermock.NewMockSelectionProvider(ctrl)
	hero := actor.DefaultArchetype().Build("Peter")
	foe := enemy(1, 10)
	foe.Taunts = []string{"No strings."}
	// taunt pick, then hero hits for 1.
	env, tr := newEnv(t, sel, testutil.NewScriptedSource(0, 0, 0), hero)
	sel.EXPECT().ChooseActor(gomock.Any(), gomock.Any()).Return(0, nil)
	sel.EXPECT().ChooseStat(gomock.Any(), hero).Return(0, nil)

	_, err := encounter.NewEnemyEncounter(definition("Strength", "Intelligence"), foe).Resolve(context.Background(), env)
	require.NoError(t, err)
	assert.Contains(t, tr.lines, `Ultron: "No strings."`)
}

func TestEnemyEncounter_SpawnsFreshEnemyEachTime(t *testing.T) {
	ev := encounter.NewEnemyEncounter(definition("Strength", "Intelligence"), enemy(1, 10))
	for i := 0; i < 2; i++ {
		ctrl := gomock.NewController(t)
		sel := encountermock.NewMockSelectionProvider(ctrl)
		hero := actor.DefaultArchetype().Build("Peter")
		env, _ := newEnv(t, sel, testutil.NewScriptedSource(0, 0), hero)
		sel.EXPECT().ChooseActor(gomock.Any(), gomock.Any()).Return(0, nil)
		sel.EXPECT().ChooseStat(gomock.Any(), hero).Return(0, nil)

		status, err := ev.Resolve(context.Background(), env)
		require.NoError(t, err)
		assert.Equal(t, encounter.StatusPass, status, "resolution %d", i)
	}
}

func TestNewEnemyEncounter_RequiresEnemy(t *testing.T) {
	assert.Panics(t, func() { encounter.NewEnemyEncounter(definition("a", "b"), nil) })
}

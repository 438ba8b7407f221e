package npc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/encounters/internal/game/actor"
	"github.com/cory-johannsen/encounters/internal/game/combat"
	"github.com/cory-johannsen/encounters/internal/game/dice"
	"github.com/cory-johannsen/encounters/internal/game/npc"
	"github.com/cory-johannsen/encounters/internal/testutil"
)

const ultronYAML = `
id: ultron
name: Ultron
description: A rogue intelligence in a vibranium shell.
stats:
  - name: Might
    health: 80
    power: 12
taunts:
  - "There are no strings on me."
  - "Everyone creates the thing they dread."
`

func TestLoadTemplateFromBytes(t *testing.T) {
	tmpl, err := npc.LoadTemplateFromBytes([]byte(ultronYAML))
	require.NoError(t, err)
	assert.Equal(t, "ultron", tmpl.ID)
	assert.Equal(t, "Ultron", tmpl.Name)
	assert.Len(t, tmpl.Taunts, 2)
}

func TestTemplate_Validate(t *testing.T) {
	stats := `
stats:
  - name: Might
    health: 10
    power: 1
`
	for name, data := range map[string]string{
		"missing id":    "name: X\n" + stats,
		"missing name":  "id: x\n" + stats,
		"missing stats": "id: x\nname: X\n",
		"zero power":    "id: x\nname: X\nstats:\n  - name: Might\n    health: 10\n    power: 0\n",
	} {
		_, err := npc.LoadTemplateFromBytes([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestTemplate_SpawnIsFreshVillain(t *testing.T) {
	tmpl, err := npc.LoadTemplateFromBytes([]byte(ultronYAML))
	require.NoError(t, err)

	first := tmpl.Spawn()
	might, ok := first.Stat("Might")
	require.True(t, ok)
	assert.Equal(t, combat.ClassVillain, might.Class)
	might.TakeDamage(100)
	assert.False(t, first.IsAlive())

	second := tmpl.Spawn()
	assert.True(t, second.IsAlive(), "each spawn starts at full health")
	assert.Equal(t, "Ultron", second.Name)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestTemplate_ExplicitClass(t *testing.T) {
	tmpl := &npc.Template{
		ID:    "loki",
		Name:  "Loki",
		Class: "Asgardian",
		Stats: []actor.StatTemplate{{Name: "Magic", Health: 90, Power: 18}},
	}
	require.NoError(t, tmpl.Validate())
	magic, _ := tmpl.Spawn().Stat("Magic")
	assert.Equal(t, combat.ClassAsgardian, magic.Class)
}

func TestTemplate_Taunt(t *testing.T) {
	tmpl, err := npc.LoadTemplateFromBytes([]byte(ultronYAML))
	require.NoError(t, err)

	line, ok := tmpl.Taunt(testutil.NewScriptedSource(1))
	require.True(t, ok)
	assert.Equal(t, "Everyone creates the thing they dread.", line)

	rapid.Check(t, func(rt *rapid.T) {
		line, ok := tmpl.Taunt(dice.NewSeededSource(rapid.Int64().Draw(rt, "seed")))
		assert.True(rt, ok)
		assert.Contains(rt, tmpl.Taunts, line)
	})

	silent := &npc.Template{ID: "x", Name: "X"}
	_, ok = silent.Taunt(testutil.NewScriptedSource())
	assert.False(t, ok)
}

func TestLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ultron.yaml"), []byte(ultronYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0644))

	templates, err := npc.LoadTemplates(dir)
	require.NoError(t, err)
	require.Len(t, templates, 1)

	byID, err := npc.Index(templates)
	require.NoError(t, err)
	assert.Contains(t, byID, "ultron")

	_, err = npc.Index(append(templates, templates[0]))
	assert.Error(t, err)
}

func TestLoadTemplates_Errors(t *testing.T) {
	_, err := npc.LoadTemplates("/nonexistent/npcs")
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: x\n"), 0644))
	_, err = npc.LoadTemplates(dir)
	assert.Error(t, err)
}

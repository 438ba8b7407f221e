package world_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/encounters/internal/game/actor"
	"github.com/cory-johannsen/encounters/internal/game/encounter"
	"github.com/cory-johannsen/encounters/internal/game/npc"
	"github.com/cory-johannsen/encounters/internal/game/world"
)

const validLocationYAML = `
location:
  id: new_york
  name: "New York"
  description: |
    Sirens echo between the towers.
  events:
    - primary_attribute: Strength
      secondary_attribute: Intelligence
      prompt_text: "A collapsing bridge threatens hundreds of civilians."
      pass: {message: "You hold the bridge together."}
      fail: {message: "The bridge falls into the river."}
      partial_pass: {message: "Most of the civilians escape."}
    - primary_attribute: Strength
      secondary_attribute: Endurance
      prompt_text: "Ultron's drones swarm Midtown."
      enemy: ultron
      pass: {message: "Ultron's body shatters."}
      fail: {message: "Ultron's laughter fills the streets."}
      partial_pass: {message: "Ultron retreats."}
`

const flatLocationJSON = `[
  {"primary_attribute": "Intelligence", "secondary_attribute": "Strength",
   "prompt_text": "The reactor is going critical.",
   "pass": {"message": "Reactor stabilized."},
   "fail": {"message": "The lab is lost."},
   "partial_pass": {"message": "You buy the city an hour."}}
]`

func TestLoadBlueprintFromBytes_Mapping(t *testing.T) {
	b, err := world.LoadBlueprintFromBytes("new_york.yaml", []byte(validLocationYAML))
	require.NoError(t, err)

	assert.Equal(t, "new_york", b.ID)
	assert.Equal(t, "New York", b.Name)
	assert.Equal(t, "Sirens echo between the towers.", b.Description)
	require.Len(t, b.Definitions, 2)
	assert.Equal(t, "ultron", b.Definitions[1].Enemy)
}

func TestLoadBlueprintFromBytes_FlatSequenceNamedAfterFile(t *testing.T) {
	b, err := world.LoadBlueprintFromBytes("content/locations/stark_tower.json", []byte(flatLocationJSON))
	require.NoError(t, err)

	assert.Equal(t, "stark_tower", b.ID)
	assert.Equal(t, "stark_tower", b.Name)
	require.Len(t, b.Definitions, 1)
	assert.Equal(t, "Intelligence", b.Definitions[0].PrimaryAttribute)
}

func TestLoadBlueprintFromBytes_JSONEscapes(t *testing.T) {
	data := `[{"primary_attribute": "Intelligence", "secondary_attribute": "Strength",
	  "prompt_text": "Jarvis routes power to floor 9\/10 of the tower. Caf\u00e9 lights flicker.",
	  "pass": {"message": "Power holds."}, "fail": {"message": "Blackout."},
	  "partial_pass": {"message": "Half the floors go dark."}}]`

	b, err := world.LoadBlueprintFromBytes("tower.json", []byte(data))
	require.NoError(t, err)
	require.Len(t, b.Definitions, 1)
	assert.Equal(t, "Jarvis routes power to floor 9/10 of the tower. Café lights flicker.", b.Definitions[0].PromptText)
}

func TestLoadBlueprintFromBytes_JSONMapping(t *testing.T) {
	data := `{"location": {"id": "wakanda", "name": "Wakanda", "events": [
	  {"primary_attribute": "Strength", "secondary_attribute": "Endurance",
	   "prompt_text": "The border tribe tests you.",
	   "pass": {"message": "p"}, "fail": {"message": "f"}, "partial_pass": {"message": "pp"}}]}}`

	b, err := world.LoadBlueprintFromBytes("wakanda.json", []byte(data))
	require.NoError(t, err)
	assert.Equal(t, "wakanda", b.ID)
	assert.Equal(t, "Wakanda", b.Name)
	require.Len(t, b.Definitions, 1)
}

func TestLoadBlueprintFromBytes_JSONMissingFieldIsConfigurationError(t *testing.T) {
	data := `[{"primary_attribute": "Strength", "prompt_text": "a\/b",
	  "pass": {"message": "p"}, "fail": {"message": "f"}, "partial_pass": {"message": "pp"}}]`

	_, err := world.LoadBlueprintFromBytes("broken.json", []byte(data))
	var ce *encounter.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "secondary_attribute", ce.Field)
}

func TestLoadBlueprintFromBytes_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"no id", "location:\n  name: Nowhere\n"},
		{"no events", "location:\n  id: void\n"},
		{"malformed", "location: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := world.LoadBlueprintFromBytes("x.yaml", []byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadBlueprintFromBytes_JSONErrors(t *testing.T) {
	for name, data := range map[string]string{
		"empty":     "  \n",
		"malformed": `[{"primary_attribute": `,
		"yaml":      "location:\n  id: nope\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := world.LoadBlueprintFromBytes("x.json", []byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadBlueprintFromBytes_MissingFieldIsConfigurationError(t *testing.T) {
	data := `
- primary_attribute: Strength
  prompt_text: "Missing secondary."
  pass: {message: p}
  fail: {message: f}
  partial_pass: {message: pp}
`
	_, err := world.LoadBlueprintFromBytes("broken.yaml", []byte(data))
	require.Error(t, err)
	var ce *encounter.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "secondary_attribute", ce.Field)
	assert.Equal(t, "broken.yaml", ce.Source)
}

func TestBlueprintBuild(t *testing.T) {
	b, err := world.LoadBlueprintFromBytes("new_york.yaml", []byte(validLocationYAML))
	require.NoError(t, err)
	ultron := &npc.Template{ID: "ultron", Name: "Ultron", Stats: []actor.StatTemplate{{Name: "Might", Health: 60, Power: 12}}}

	loc, err := b.Build(map[string]*npc.Template{"ultron": ultron})
	require.NoError(t, err)
	require.Len(t, loc.Events, 2)
	assert.Equal(t, encounter.KindAttributeCheck, loc.Events[0].Kind)
	assert.Equal(t, encounter.KindEnemyEncounter, loc.Events[1].Kind)
	assert.Same(t, ultron, loc.Events[1].Enemy)

	again, err := b.Build(map[string]*npc.Template{"ultron": ultron})
	require.NoError(t, err)
	assert.NotSame(t, loc.Events[0], again.Events[0], "each build yields fresh events")
}

func TestBlueprintBuild_UnknownEnemy(t *testing.T) {
	b, err := world.LoadBlueprintFromBytes("new_york.yaml", []byte(validLocationYAML))
	require.NoError(t, err)

	_, err = b.Build(nil)
	var ce *encounter.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "enemy", ce.Field)
	assert.Equal(t, 1, ce.Index)
}

func TestLoadBlueprintsFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new_york.yaml"), []byte(validLocationYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stark_tower.json"), []byte(flatLocationJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644))

	bs, err := world.LoadBlueprintsFromDir(dir)
	require.NoError(t, err)
	require.Len(t, bs, 2)
	assert.Equal(t, "new_york", bs[0].ID)
	assert.Equal(t, "stark_tower", bs[1].ID)
}

func TestLoadBlueprintsFromDir_DuplicateAndEmpty(t *testing.T) {
	empty := t.TempDir()
	_, err := world.LoadBlueprintsFromDir(empty)
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(validLocationYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(validLocationYAML), 0o644))
	_, err = world.LoadBlueprintsFromDir(dir)
	assert.ErrorContains(t, err, "duplicate location id")
}

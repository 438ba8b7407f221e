// Package npc provides enemy templates loaded from YAML and spawns them as
// fresh Actors for each enemy encounter.
package npc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/encounters/internal/game/actor"
	"github.com/cory-johannsen/encounters/internal/game/dice"
)

// defaultClass is the class label used when a template omits one.
const defaultClass = "Villain"

// Template defines a reusable enemy loaded from YAML.
type Template struct {
	ID          string               `yaml:"id"`
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Class       string               `yaml:"class"`
	Stats       []actor.StatTemplate `yaml:"stats"`
	// Taunts are lines the enemy may deliver when it appears.
	Taunts []string `yaml:"taunts"`
}

// archetype views the template as an actor archetype.
func (t *Template) archetype() *actor.Archetype {
	class := t.Class
	if class == "" {
		class = defaultClass
	}
	return &actor.Archetype{ID: t.ID, Description: t.Description, Class: class, Stats: t.Stats}
}

// Validate checks that the template satisfies basic invariants.
//
// Postcondition: Returns nil iff ID and Name are non-empty and the stats
// form a valid archetype.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("npc template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("npc template %q: name must not be empty", t.ID)
	}
	if err := t.archetype().Validate(); err != nil {
		return fmt.Errorf("npc template %q: %w", t.ID, err)
	}
	return nil
}

// Spawn creates a fresh enemy Actor at full health.
func (t *Template) Spawn() *actor.Actor {
	return t.archetype().Build(t.Name)
}

// Taunt draws one of the template's taunts.
//
// Postcondition: Returns ("", false) when the template has no taunts.
func (t *Template) Taunt(src dice.Source) (string, bool) {
	if len(t.Taunts) == 0 {
		return "", false
	}
	return t.Taunts[dice.Pick(src, len(t.Taunts))], true
}

// LoadTemplateFromBytes parses a single enemy template from raw YAML bytes.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed templates.
//
// Postcondition: Returns all templates or an error on the first parse or
// validate failure; on error, the partial result is discarded.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading npc dir %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

// Index maps templates by ID.
//
// Postcondition: Returns an error if two templates share an ID.
func Index(templates []*Template) (map[string]*Template, error) {
	byID := make(map[string]*Template, len(templates))
	for _, tmpl := range templates {
		if _, dup := byID[tmpl.ID]; dup {
			return nil, fmt.Errorf("duplicate npc template id %q", tmpl.ID)
		}
		byID[tmpl.ID] = tmpl
	}
	return byID, nil
}

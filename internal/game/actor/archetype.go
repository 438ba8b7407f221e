package actor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/encounters/internal/game/combat"
)

// StatTemplate describes one StatBlock of an archetype.
type StatTemplate struct {
	Name   string   `yaml:"name"`
	Health int      `yaml:"health"`
	Power  int      `yaml:"power"`
	Items  []string `yaml:"items"`
}

// Archetype maps an identity to its capability list.
//
// Precondition: ID is non-empty and Stats holds at least one entry after loading.
type Archetype struct {
	ID          string         `yaml:"id"`
	Description string         `yaml:"description"`
	Class       string         `yaml:"class"`
	Stats       []StatTemplate `yaml:"stats"`
}

// Validate checks the archetype invariants. Power must be positive because a
// zero-power combatant can stall a fight forever.
func (a *Archetype) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("archetype: id must not be empty")
	}
	if len(a.Stats) == 0 {
		return fmt.Errorf("archetype %q: at least one stat is required", a.ID)
	}
	seen := make(map[string]bool, len(a.Stats))
	for i, st := range a.Stats {
		if st.Name == "" {
			return fmt.Errorf("archetype %q: stat %d: name must not be empty", a.ID, i)
		}
		if seen[st.Name] {
			return fmt.Errorf("archetype %q: duplicate stat %q", a.ID, st.Name)
		}
		seen[st.Name] = true
		if st.Health < 1 {
			return fmt.Errorf("archetype %q: stat %q: health must be >= 1", a.ID, st.Name)
		}
		if st.Power < 1 {
			return fmt.Errorf("archetype %q: stat %q: power must be >= 1", a.ID, st.Name)
		}
	}
	return nil
}

// Build creates a fresh Actor named name from the archetype.
func (a *Archetype) Build(name string) *Actor {
	class := combat.ParseClass(a.Class)
	stats := make([]*combat.StatBlock, len(a.Stats))
	for i, st := range a.Stats {
		sb := combat.NewStatBlock(st.Name, class, st.Health, st.Power)
		for _, item := range st.Items {
			sb.AddItem(item)
		}
		stats[i] = sb
	}
	return New(name, a.ID, stats...)
}

// DefaultArchetype is the template used for identities no archetype claims.
func DefaultArchetype() *Archetype {
	return &Archetype{
		ID:    DefaultArchetypeID,
		Class: "Hero",
		Stats: []StatTemplate{
			{Name: "Strength", Health: 100, Power: 10},
			{Name: "Intelligence", Health: 100, Power: 10},
		},
	}
}

// LoadArchetypeFromBytes parses and validates a single archetype.
func LoadArchetypeFromBytes(data []byte) (*Archetype, error) {
	var a Archetype
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing archetype YAML: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// LoadArchetypes reads all .yaml and .yml files in dir.
//
// Postcondition: Returns all validated archetypes or the first error.
func LoadArchetypes(dir string) ([]*Archetype, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading archetype dir %q: %w", dir, err)
	}
	var out []*Archetype
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			continue
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		a, err := LoadArchetypeFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		out = append(out, a)
	}
	return out, nil
}

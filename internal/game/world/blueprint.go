package world

import (
	"fmt"

	"github.com/cory-johannsen/encounters/internal/game/encounter"
	"github.com/cory-johannsen/encounters/internal/game/npc"
)

// Blueprint is a validated location as authored in content. A campaign builds
// its own Location from it so that event status never leaks between
// campaigns.
type Blueprint struct {
	ID          string
	Name        string
	Description string
	// Source names the file the blueprint was read from.
	Source      string
	Definitions []encounter.Definition
}

// Build creates a Location with fresh events. Definitions naming an enemy
// become enemy encounters; the rest become attribute checks.
//
// Postcondition: Returns a *encounter.ConfigurationError with Field "enemy"
// when a definition names an enemy missing from enemies.
func (b *Blueprint) Build(enemies map[string]*npc.Template) (*Location, error) {
	events := make([]*encounter.Event, 0, len(b.Definitions))
	for i, def := range b.Definitions {
		if def.Enemy == "" {
			events = append(events, encounter.NewAttributeCheck(def))
			continue
		}
		tmpl, ok := enemies[def.Enemy]
		if !ok {
			return nil, &encounter.ConfigurationError{
				Source: b.Source,
				Index:  i,
				Field:  "enemy",
				Reason: fmt.Sprintf("names unknown enemy %q", def.Enemy),
			}
		}
		events = append(events, encounter.NewEnemyEncounter(def, tmpl))
	}
	return NewLocation(b.ID, b.Name, b.Description, events...)
}

// BuildAll builds a Location from every blueprint in order.
func BuildAll(blueprints []*Blueprint, enemies map[string]*npc.Template) ([]*Location, error) {
	out := make([]*Location, 0, len(blueprints))
	for _, b := range blueprints {
		loc, err := b.Build(enemies)
		if err != nil {
			return nil, fmt.Errorf("building location %q: %w", b.ID, err)
		}
		out = append(out, loc)
	}
	return out, nil
}

// Package world provides locations: named places holding the events a
// campaign draws from on each tick.
package world

import (
	"fmt"

	"github.com/cory-johannsen/encounters/internal/game/dice"
	"github.com/cory-johannsen/encounters/internal/game/encounter"
)

// Location is a named place with a non-empty collection of events.
//
// Invariant: len(Events) >= 1.
type Location struct {
	ID          string
	Name        string
	Description string
	Events      []*encounter.Event
}

// NewLocation builds a Location.
//
// Postcondition: Returns an error if id is empty or events is empty.
func NewLocation(id, name, description string, events ...*encounter.Event) (*Location, error) {
	if id == "" {
		return nil, fmt.Errorf("location id must not be empty")
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("location %q: at least one event is required", id)
	}
	if name == "" {
		name = id
	}
	return &Location{ID: id, Name: name, Description: description, Events: events}, nil
}

// PickEvent draws one event uniformly at random. Events are never removed, so
// the same event may be drawn again on a later tick.
func (l *Location) PickEvent(src dice.Source) *encounter.Event {
	return l.Events[dice.Pick(src, len(l.Events))]
}

// String returns the location's display name.
func (l *Location) String() string {
	return l.Name
}

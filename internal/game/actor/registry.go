package actor

import "strings"

// DefaultArchetypeID names the fallback archetype.
const DefaultArchetypeID = "default"

// Registry resolves identities to archetypes, falling back to a default
// template so arbitrary party compositions stay valid.
type Registry struct {
	archetypes map[string]*Archetype
	fallback   *Archetype
}

// NewRegistry returns a Registry that falls back to DefaultArchetype.
// An archetype registered with DefaultArchetypeID replaces the fallback.
func NewRegistry(archetypes ...*Archetype) *Registry {
	r := &Registry{
		archetypes: make(map[string]*Archetype),
		fallback:   DefaultArchetype(),
	}
	for _, a := range archetypes {
		r.Register(a)
	}
	return r
}

// Register adds an archetype. Identity lookup ignores case; the last
// registration of an ID wins.
//
// Precondition: a must be non-nil with a non-empty ID.
func (r *Registry) Register(a *Archetype) {
	if a == nil {
		panic("Registry.Register: precondition violated: archetype must be non-nil")
	}
	if a.ID == "" {
		panic("Registry.Register: precondition violated: archetype ID must be non-empty")
	}
	if strings.EqualFold(a.ID, DefaultArchetypeID) {
		r.fallback = a
		return
	}
	r.archetypes[strings.ToLower(a.ID)] = a
}

// Lookup returns the archetype registered for identity.
func (r *Registry) Lookup(identity string) (*Archetype, bool) {
	a, ok := r.archetypes[strings.ToLower(identity)]
	return a, ok
}

// Len returns the number of registered archetypes, excluding the fallback.
func (r *Registry) Len() int {
	return len(r.archetypes)
}

// NewActor builds an Actor for identity, using the fallback archetype when
// identity is not registered.
func (r *Registry) NewActor(identity string) *Actor {
	if a, ok := r.Lookup(identity); ok {
		return a.Build(identity)
	}
	return r.fallback.Build(identity)
}

// NewParty builds one Actor per identity, in order.
func (r *Registry) NewParty(identities []string) []*Actor {
	party := make([]*Actor, len(identities))
	for i, id := range identities {
		party[i] = r.NewActor(id)
	}
	return party
}

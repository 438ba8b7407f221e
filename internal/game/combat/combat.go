// Package combat implements capability scores (StatBlocks), their attack,
// special-move, and item resolution, and the fight-to-the-death loop used by
// enemy encounters.
package combat

import (
	"fmt"
	"strings"
)

// RestorativeShield is the one item with an effect when used.
const RestorativeShield = "restorative shield"

// restorativeShieldHeal is the health restored by RestorativeShield.
const restorativeShieldHeal = 30

// StatBlock is a single named capability: the smallest unit that can attack,
// heal, or die.
//
// Invariant: IsAlive() == (Health > 0). Health has no floor and no ceiling.
type StatBlock struct {
	// Name identifies the capability, e.g. "Strength". Event attributes are
	// matched against it.
	Name string
	// Class selects the special move.
	Class Class
	// Health may go negative after damage.
	Health int
	// Power bounds the damage of a normal attack.
	Power int

	items []string
}

// NewStatBlock builds a StatBlock with an empty item collection.
func NewStatBlock(name string, class Class, health, power int) *StatBlock {
	return &StatBlock{Name: name, Class: class, Health: health, Power: power}
}

// IsAlive reports whether Health is above zero.
func (s *StatBlock) IsAlive() bool {
	return s.Health > 0
}

// TakeDamage subtracts amount from Health without flooring.
func (s *StatBlock) TakeDamage(amount int) {
	s.Health -= amount
}

// Heal adds amount to Health without an upper bound.
func (s *StatBlock) Heal(amount int) {
	s.Health += amount
}

// String renders the StatBlock for menus, e.g. "Strength (Genius) - HP: 100, AP: 15".
func (s *StatBlock) String() string {
	return fmt.Sprintf("%s (%s) - HP: %d, AP: %d", s.Name, s.Class, s.Health, s.Power)
}

// AddItem appends item to the collection.
func (s *StatBlock) AddItem(item string) {
	s.items = append(s.items, item)
}

// Items returns a copy of the item collection in insertion order.
func (s *StatBlock) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// ItemResult describes a UseItem call.
type ItemResult struct {
	Item   string
	Used   bool
	Healed int
}

// UseItem consumes one instance of item if present. A RestorativeShield heals
// the holder; any other item is consumed with no effect. Item names match
// case-insensitively.
//
// Postcondition: if Used, exactly one matching instance was removed.
func (s *StatBlock) UseItem(item string) ItemResult {
	idx := -1
	for i, held := range s.items {
		if strings.EqualFold(held, item) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ItemResult{Item: item}
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)

	res := ItemResult{Item: item, Used: true}
	if strings.EqualFold(item, RestorativeShield) {
		s.Heal(restorativeShieldHeal)
		res.Healed = restorativeShieldHeal
	}
	return res
}

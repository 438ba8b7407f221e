package combat

import "strings"

// Class is the closed set of archetype classes. Each class selects exactly one
// SpecialMove variant through Class.SpecialMove.
type Class int

const (
	ClassGeneric Class = iota
	ClassGenius
	ClassSuperSoldier
	ClassAsgardian
	ClassVillain
)

// String returns the display label of the class.
func (c Class) String() string {
	switch c {
	case ClassGenius:
		return "Genius"
	case ClassSuperSoldier:
		return "Super Soldier"
	case ClassAsgardian:
		return "Asgardian"
	case ClassVillain:
		return "Villain"
	default:
		return "Hero"
	}
}

// ParseClass maps a content label to a Class. Matching ignores case, spaces,
// underscores, and hyphens, so "Super Soldier", "super_soldier", and
// "SuperSoldier" are equivalent. Unrecognized labels map to ClassGeneric.
func ParseClass(label string) Class {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(label))

	switch key {
	case "genius":
		return ClassGenius
	case "supersoldier":
		return ClassSuperSoldier
	case "asgardian":
		return ClassAsgardian
	case "villain":
		return ClassVillain
	default:
		return ClassGeneric
	}
}

// SpecialMove returns the variant for this class. Classes without a special
// move get a no-op variant whose Available method reports false.
func (c Class) SpecialMove() SpecialMove {
	switch c {
	case ClassGenius:
		return RepulsorBurst{}
	case ClassAsgardian:
		return ThunderStrike{}
	case ClassSuperSoldier:
		return SecondWind{}
	default:
		return NoMove{}
	}
}

package combat

import "github.com/cory-johannsen/encounters/internal/game/dice"

var (
	// repulsorBurstDamage spans [25, 50].
	repulsorBurstDamage = dice.MustParse("1d26+24")
	// thunderStrikeDamage spans [15, 40].
	thunderStrikeDamage = dice.MustParse("1d26+14")
)

const (
	repulsorBurstChance = 50
	secondWindHeal      = 20
)

// SpecialResult describes one special-move resolution.
type SpecialResult struct {
	Move   string
	Roll   int // percentile roll, 0 when the move does not roll to land
	Landed bool
	Damage int
	Healed int
}

// SpecialMove is one archetype-specific alternative to a normal attack.
type SpecialMove interface {
	// Name is the menu label of the move.
	Name() string
	// Available reports whether the move does anything at all.
	Available() bool
	// Resolve applies the move. caster is the StatBlock performing it.
	Resolve(caster, target *StatBlock, src dice.Source) SpecialResult
}

// RepulsorBurst is the Genius move: a 50% chance at 25-50 damage.
type RepulsorBurst struct{}

func (RepulsorBurst) Name() string    { return "Repulsor Burst" }
func (RepulsorBurst) Available() bool { return true }

func (m RepulsorBurst) Resolve(_, target *StatBlock, src dice.Source) SpecialResult {
	res := SpecialResult{Move: m.Name(), Roll: dice.Percent(src)}
	if res.Roll > repulsorBurstChance {
		return res
	}
	res.Landed = true
	res.Damage = dice.Roll(repulsorBurstDamage, src).Total()
	target.TakeDamage(res.Damage)
	return res
}

// ThunderStrike is the Asgardian move: a guaranteed 15-40 damage strike.
type ThunderStrike struct{}

func (ThunderStrike) Name() string    { return "Thunder Strike" }
func (ThunderStrike) Available() bool { return true }

func (m ThunderStrike) Resolve(_, target *StatBlock, src dice.Source) SpecialResult {
	res := SpecialResult{Move: m.Name(), Landed: true}
	res.Damage = dice.Roll(thunderStrikeDamage, src).Total()
	target.TakeDamage(res.Damage)
	return res
}

// SecondWind is the Super Soldier move: the caster heals 20. The target is
// untouched.
type SecondWind struct{}

func (SecondWind) Name() string    { return "Second Wind" }
func (SecondWind) Available() bool { return true }

func (m SecondWind) Resolve(caster, _ *StatBlock, _ dice.Source) SpecialResult {
	caster.Heal(secondWindHeal)
	return SpecialResult{Move: m.Name(), Landed: true, Healed: secondWindHeal}
}

// NoMove is the variant for classes without a special move.
type NoMove struct{}

func (NoMove) Name() string    { return "" }
func (NoMove) Available() bool { return false }

func (NoMove) Resolve(_, _ *StatBlock, _ dice.Source) SpecialResult {
	return SpecialResult{}
}

// SpecialMove resolves the caster's own class variant against target.
func (s *StatBlock) SpecialMove(target *StatBlock, src dice.Source) SpecialResult {
	return s.Class.SpecialMove().Resolve(s, target, src)
}

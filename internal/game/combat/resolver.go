package combat

import "github.com/cory-johannsen/encounters/internal/game/dice"

// HitChance is the fixed percentile threshold for a normal attack to land.
const HitChance = 70

// AttackResult holds the outcome of a single normal attack.
type AttackResult struct {
	Attacker string
	Target   string
	// Roll is the percentile hit roll.
	Roll int
	Hit  bool
	// Damage is 0 on a miss.
	Damage int
}

// Attack rolls a percentile; on Roll <= HitChance it rolls damage uniformly in
// [1, Power] and subtracts it from target.Health. A Power below 1 still deals
// 1 damage on a hit; content validation keeps Power positive.
//
// Postcondition: only target.Health changes, and only on a hit.
func (s *StatBlock) Attack(target *StatBlock, src dice.Source) AttackResult {
	res := AttackResult{Attacker: s.Name, Target: target.Name, Roll: dice.Percent(src)}
	if res.Roll > HitChance {
		return res
	}
	res.Hit = true
	res.Damage = dice.Between(src, 1, s.Power)
	target.TakeDamage(res.Damage)
	return res
}

package encounter

import (
	"context"
	"fmt"

	"github.com/cory-johannsen/encounters/internal/game/actor"
	"github.com/cory-johannsen/encounters/internal/game/combat"
)

// turnPlanner asks the SelectionProvider for the hero's item and special-move
// choices before each exchange.
type turnPlanner struct {
	sel  SelectionProvider
	hero *actor.Actor
	stat *combat.StatBlock
}

func (p *turnPlanner) PlanTurn(ctx context.Context, _ int) (combat.Turn, error) {
	var turn combat.Turn

	if items := p.stat.Items(); len(items) > 0 {
		use, err := p.sel.Confirm(ctx, fmt.Sprintf("%s, use an item before acting?", p.hero.Name))
		if err != nil {
			return turn, fmt.Errorf("confirming item use: %w", err)
		}
		if use {
			idx, err := p.sel.ChooseItem(ctx, p.stat)
			if err != nil {
				return turn, fmt.Errorf("choosing item: %w", err)
			}
			turn.Item = items[mustIndex("ChooseItem", idx, len(items))]
		}
	}

	if moves := p.hero.SpecialMoves(); len(moves) > 0 {
		use, err := p.sel.Confirm(ctx, fmt.Sprintf("%s, use a special move?", p.hero.Name))
		if err != nil {
			return turn, fmt.Errorf("confirming special move: %w", err)
		}
		if use {
			idx, err := p.sel.ChooseSpecialMove(ctx, p.hero)
			if err != nil {
				return turn, fmt.Errorf("choosing special move: %w", err)
			}
			turn.Special = moves[mustIndex("ChooseSpecialMove", idx, len(moves))]
		}
	}
	return turn, nil
}

// exchangeNarrator renders the blow-by-blow of a fight.
func exchangeNarrator(n Narrator, heroName, foeName string, hero, foe *combat.StatBlock) func(combat.Exchange) {
	return func(ex combat.Exchange) {
		if it := ex.Item; it != nil && it.Used {
			n.Narrate(fmt.Sprintf("%s uses %s.", heroName, it.Item))
			if it.Healed > 0 {
				n.Narrate(fmt.Sprintf("%s heals for %d HP!", heroName, it.Healed))
			}
		}
		if sp := ex.Special; sp != nil {
			switch {
			case sp.Healed > 0:
				n.Narrate(fmt.Sprintf("%s uses %s and heals for %d HP!", heroName, sp.Move, sp.Healed))
			case sp.Landed:
				n.Narrate(fmt.Sprintf("%s unleashes %s on %s for %d damage!", heroName, sp.Move, foeName, sp.Damage))
			default:
				n.Narrate(fmt.Sprintf("%s's %s missed!", heroName, sp.Move))
			}
		}
		if a := ex.Attack; a != nil {
			n.Narrate(describeAttack(heroName, foeName, *a))
		}
		if c := ex.Counter; c != nil {
			n.Narrate(describeAttack(foeName, heroName, *c))
		}
		n.Narrate(fmt.Sprintf("%s %s HP: %d | %s HP: %d", heroName, hero.Name, hero.Health, foeName, foe.Health))
	}
}

func describeAttack(attacker, target string, r combat.AttackResult) string {
	if !r.Hit {
		return fmt.Sprintf("%s's attack missed!", attacker)
	}
	return fmt.Sprintf("%s attacks %s for %d damage!", attacker, target, r.Damage)
}

// Package combat provides the encounter arithmetic for arlq.
package combat

import (
	"github.com/samdwyer/arlq/internal/gamedata"
)

// Life point bounds.
const (
	LPMax          = 100
	LPInit         = 90 // starting value and the cap applied on respawn
	LPRespawnFloor = 20
)

// Combatant is the interface for the side that walks into a monster.
type Combatant interface {
	GetLevel() int
	GetLP() int
	GetItem() gamedata.Item

	GainLevels(n int)
	SetLP(lp int)
	SetItem(item gamedata.Item, from rune)
}

// Outcome is the result of an encounter.
type Outcome int

const (
	// OutcomeWin means the monster was defeated.
	OutcomeWin Outcome = iota
	// OutcomeLose means the combatant was beaten and must respawn.
	OutcomeLose
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Result describes what an encounter changed.
type Result struct {
	Outcome   Outcome
	Attack    int // attack value the encounter was decided with
	LevelGain int
	LPDelta   int // actual change after clamping
	ItemTaken gamedata.Item
}

// Attack returns the attack value of a level holding item.
func Attack(level int, item gamedata.Item) int {
	switch item {
	case gamedata.ItemSwordX2:
		return level * 2
	case gamedata.ItemSwordX3:
		return level * 3
	case gamedata.ItemCursedSword:
		return level * 4
	case gamedata.ItemPoisoned:
		return (level + 2) / 3
	default:
		return level
	}
}

// Beats returns true if attack defeats a tribe.
func Beats(attack int, tribe *gamedata.TribeDef) bool {
	return attack >= tribe.Level
}

// Resolve decides an encounter between c and a member of tribe and applies
// the stat changes to c. Positional consequences are left to the caller.
func Resolve(c Combatant, tribe *gamedata.TribeDef) Result {
	attack := Attack(c.GetLevel(), c.GetItem())
	before := c.GetLP()

	if !Beats(attack, tribe) {
		c.SetItem(gamedata.ItemNone, 0)
		c.SetLP(max(LPRespawnFloor, min(before, LPInit)))
		return Result{Outcome: OutcomeLose, Attack: attack, LPDelta: c.GetLP() - before}
	}

	gain := 1
	if tribe.Effect == gamedata.EffectSpecialExp {
		gain = 10
	}
	c.GainLevels(gain)

	lp := ClampLP(before + tribe.Feed)
	if tribe.Item == gamedata.ItemCursedSword {
		lp = max(1, lp/2)
	}
	c.SetLP(lp)
	c.SetItem(tribe.Item, tribe.SymbolRune())

	return Result{
		Outcome:   OutcomeWin,
		Attack:    attack,
		LevelGain: gain,
		LPDelta:   lp - before,
		ItemTaken: tribe.Item,
	}
}

// ClampLP keeps a life point value inside [1, LPMax].
func ClampLP(lp int) int {
	return clamp(lp, 1, LPMax)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

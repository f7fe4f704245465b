package entity

import (
	"codeberg.org/anaseto/gruid"

	"github.com/samdwyer/arlq/internal/combat"
	"github.com/samdwyer/arlq/internal/gamedata"
)

// KarmaLimit is the karma at which a companion leaves.
const KarmaLimit = 18

// Player represents the adventurer.
type Player struct {
	Pos      gruid.Point
	Symbol   rune
	Level    int
	LP       int
	Item     gamedata.Item
	ItemFrom rune // symbol of the tribe the item came from

	Companion    gamedata.Companion
	CompanionPos gruid.Point // cell the companion trails on
	Karma        int
}

// NewPlayer creates a level 1 player at pos.
func NewPlayer(pos gruid.Point) *Player {
	return &Player{
		Pos:          pos,
		Symbol:       '@',
		Level:        1,
		LP:           combat.LPInit,
		CompanionPos: pos,
	}
}

// MoveTo walks the player to pos; the companion takes the cell left behind.
func (p *Player) MoveTo(pos gruid.Point) {
	p.CompanionPos = p.Pos
	p.Pos = pos
}

// Relocate puts the player at pos with the companion on the same cell.
func (p *Player) Relocate(pos gruid.Point) {
	p.Pos = pos
	p.CompanionPos = pos
}

// Attack returns the player's current attack value.
func (p *Player) Attack() int {
	return combat.Attack(p.Level, p.Item)
}

// Starve consumes one life point and returns true if the player starved.
func (p *Player) Starve() bool {
	p.LP--
	return p.LP <= 0
}

// IsAlive returns true if the player has life points remaining.
func (p *Player) IsAlive() bool { return p.LP > 0 }

// TakeDamage reduces life points. The result may drop to zero or below.
func (p *Player) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	p.LP -= amount
}

// JoinCompanion replaces the current companion and resets karma.
func (p *Player) JoinCompanion(c gamedata.Companion) {
	p.Companion = c
	p.Karma = 0
}

// AddKarma increases karma by n.
func (p *Player) AddKarma(n int) {
	p.Karma += n
}

// CompanionLeaves drops the companion if karma reached the limit and
// reports whether it did.
func (p *Player) CompanionLeaves() bool {
	if p.Companion == gamedata.CompanionNone || p.Karma < KarmaLimit {
		return false
	}
	p.Companion = gamedata.CompanionNone
	p.Karma = 0
	return true
}

// HasCompanion returns true if c currently follows the player.
func (p *Player) HasCompanion(c gamedata.Companion) bool {
	return c != gamedata.CompanionNone && p.Companion == c
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetLevel returns the player's level.
func (p *Player) GetLevel() int { return p.Level }

// GetLP returns current life points.
func (p *Player) GetLP() int { return p.LP }

// GetItem returns the held item.
func (p *Player) GetItem() gamedata.Item { return p.Item }

// GainLevels raises the level by n.
func (p *Player) GainLevels(n int) { p.Level += n }

// SetLP sets life points.
func (p *Player) SetLP(lp int) { p.LP = lp }

// SetItem replaces the held item.
func (p *Player) SetItem(item gamedata.Item, from rune) {
	p.Item = item
	p.ItemFrom = from
	if item == gamedata.ItemNone {
		p.ItemFrom = 0
	}
}

// Ensure Player implements combat.Combatant
var _ combat.Combatant = (*Player)(nil)

// Package entity provides the player and the things it meets on the field.
package entity

import (
	"codeberg.org/anaseto/gruid"

	"github.com/samdwyer/arlq/internal/gamedata"
)

// Kind tags what an Entity is.
type Kind int

const (
	KindMonster Kind = iota
	KindCompanion
	KindTreasure
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMonster:
		return "monster"
	case KindCompanion:
		return "companion"
	case KindTreasure:
		return "treasure"
	default:
		return "unknown"
	}
}

// Entity is a monster, a would-be companion or a treasure on the field.
type Entity struct {
	Kind Kind
	Pos  gruid.Point

	// Monster and companion entities.
	Tribe gamedata.TribeID

	// Treasure entities.
	Symbol rune
	Unlock rune // tribe symbol that must be encountered first

	// Revealed is set once the torch has lit the entity's cell.
	Revealed bool
}

// NewTribeMember creates a member of a tribe at pos. Tribes that grant a
// companion produce KindCompanion entities.
func NewTribeMember(id gamedata.TribeID, def *gamedata.TribeDef, pos gruid.Point) *Entity {
	kind := KindMonster
	if def.Companion != gamedata.CompanionNone {
		kind = KindCompanion
	}
	return &Entity{
		Kind:  kind,
		Pos:   pos,
		Tribe: id,
	}
}

// NewTreasure creates a treasure at pos.
func NewTreasure(def *gamedata.TreasureDef, pos gruid.Point) *Entity {
	return &Entity{
		Kind:   KindTreasure,
		Pos:    pos,
		Symbol: def.SymbolRune(),
		Unlock: def.UnlockRune(),
	}
}

// IsTribe returns true for monsters and companions.
func (e *Entity) IsTribe() bool {
	return e.Kind == KindMonster || e.Kind == KindCompanion
}

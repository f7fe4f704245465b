package game

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"go.uber.org/zap"

	"github.com/samdwyer/arlq/internal/entity"
	"github.com/samdwyer/arlq/internal/gamedata"
	"github.com/samdwyer/arlq/internal/world"
)

// Spread area around the player.
const (
	spreadRadius     = 3
	spreadWidthRatio = 1.5
)

// applyVictory applies the side effects of defeating a tribe member.
// Level, life points and item were already settled by combat.Resolve.
func (s *Session) applyVictory(def *gamedata.TribeDef) {
	p := s.Player

	if def.Companion != gamedata.CompanionNone {
		p.JoinCompanion(def.Companion)
		s.log.Debug("companion joined", zap.String("companion", string(def.Companion)))
	} else {
		p.AddKarma(1)
	}

	switch def.Effect {
	case gamedata.EffectTreasurePointer:
		s.Encountered.Put(gamedata.TreasureChar)
	case gamedata.EffectCaltropSpread:
		s.spreadCaltrops()
	case gamedata.EffectRockSpread:
		s.spreadRocks()
	}

	if def.Message != "" {
		s.flash(def.Message)
	}
}

// consultNomicon identifies adjacent tribe members the player has not met.
func (s *Session) consultNomicon(around []*entity.Entity) {
	for _, e := range around {
		if !e.IsTribe() {
			continue
		}
		sym := s.Tribe(e).SymbolRune()
		if s.Encountered.Has(sym) {
			continue
		}
		s.Encountered.Put(sym)
		s.Player.AddKarma(1)
	}
}

// spreadCaltrops scatters traps on every other floor cell around the player.
func (s *Session) spreadCaltrops() {
	f := s.Field
	world.ForEllipse(s.Player.Pos, spreadRadius, spreadWidthRatio, func(c gruid.Point) {
		if (c.X+c.Y)%2 != 0 || !f.IsFloor(c) || s.isOccupied(c) {
			return
		}
		f.Set(c, world.TileCaltrop)
	})
}

// spreadRocks drops single-cell walls on a lattice around the player. A rock
// only lands where its whole 8-neighbourhood is passable, so the passable
// area stays connected.
func (s *Session) spreadRocks() {
	f := s.Field
	world.ForEllipse(s.Player.Pos, spreadRadius, spreadWidthRatio, func(c gruid.Point) {
		if c.X%2 != 0 || c.Y%2 != 0 || !f.InBounds(c) || f.OnBorder(c) {
			return
		}
		if !f.IsPassable(c) || s.isOccupied(c) {
			return
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if !f.IsPassable(c.Add(gruid.Point{X: dx, Y: dy})) {
					return
				}
			}
		}
		f.Set(c, world.TileWall)
	})
}

// HandleGameOverKey applies a letter typed on the game over screen.
func (s *Session) HandleGameOverKey(r rune) {
	switch r {
	case 'm':
		s.ShowAll = !s.ShowAll
	case 's':
		s.announce(fmt.Sprintf(msgSeedTemplate, s.SeedString()))
	}
}

package game

import (
	"context"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/arlq/internal/combat"
	"github.com/samdwyer/arlq/internal/entity"
	"github.com/samdwyer/arlq/internal/gamedata"
	"github.com/samdwyer/arlq/internal/telemetry"
	"github.com/samdwyer/arlq/internal/world"
)

// Direction is a one-cell step.
type Direction = gruid.Point

// Movement directions.
var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

const (
	pegasusStep   = 9
	ocularBonus   = 2
	caltropDamage = 2
)

// Game over and event messages.
const (
	msgStarved      = ">> Starved to Death. <<"
	msgKilled       = ">> Killed by Caltrops. <<"
	msgTreasure     = ">> Won the Treasure! <<"
	msgRespawned    = "-- Respawned."
	msgVanished     = "-- The companion vanishes."
	msgCaltropTrap  = "-- Ouch! Caltrops."
	msgSeedTemplate = "SEED: %s"
)

// BeginTurn advances the turn counter, consumes a life point and updates
// the torch. It returns false if the player starved, ending the session.
func (s *Session) BeginTurn() bool {
	if s.State != StatePlaying {
		return false
	}
	s.Turn++
	if s.Player.Starve() {
		s.announce(msgStarved)
		s.State = StateGameOver
		s.log.Info("game over", zap.String("reason", "starved"), zap.Int("turn", s.Turn))
		return false
	}

	s.updateTorch()
	s.Message.tick()
	return true
}

// updateTorch lights the cells around the player and reveals entities in them.
func (s *Session) updateTorch() {
	s.Current = world.Torch(s.Field.Width, s.Field.Height, s.Player.Pos, s.TorchRadius(), world.TorchWidthRatio)
	s.Explored.Accumulate(s.Current)
	for _, e := range s.Entities {
		if !e.Revealed && s.Current.Has(e.Pos) {
			e.Revealed = true
		}
	}
}

// Resolve applies one move of the player and everything it triggers.
func (s *Session) Resolve(ctx context.Context, dir Direction) {
	if s.State != StatePlaying {
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "turn.resolve")
	defer span.End()

	p := s.Player
	from := p.Pos
	s.move(dir)
	s.springTrap()

	// Fights happen on arrival only.
	here, around := s.scan()
	outcome := "none"
	if here != nil && p.Pos != from {
		outcome = s.encounter(here)
	}

	if p.HasCompanion(gamedata.CompanionNomicon) {
		s.consultNomicon(around)
	}

	if p.CompanionLeaves() {
		s.flash(msgVanished)
		s.log.Debug("companion left", zap.Int("turn", s.Turn))
	}

	if iv := s.stage.RespawnInterval; iv > 0 && s.Turn%iv == 0 {
		s.respawn()
	}

	switch {
	case !p.IsAlive():
		s.announce(msgKilled)
		s.State = StateGameOver
		s.log.Info("game over", zap.String("reason", "caltrops"), zap.Int("turn", s.Turn))
	case s.Victory:
		s.State = StateGameOver
		s.log.Info("game over", zap.String("reason", "treasure"), zap.Int("turn", s.Turn))
	}

	span.SetAttributes(
		attribute.Int("turn", s.Turn),
		attribute.Int("player.lp", p.LP),
		attribute.Int("player.level", p.Level),
		attribute.String("outcome", outcome),
	)
}

// move walks, leaps or breaks through a wall.
func (s *Session) move(dir Direction) {
	if dir == (Direction{}) {
		return
	}
	f := s.Field
	p := s.Player
	next := p.Pos.Add(dir)

	switch {
	case f.IsPassable(next):
		p.MoveTo(next)
	case p.HasCompanion(gamedata.CompanionPegasus) &&
		f.IsPassable(p.Pos.Add(gruid.Point{X: dir.X * pegasusStep, Y: dir.Y * pegasusStep})):
		p.MoveTo(p.Pos.Add(gruid.Point{X: dir.X * pegasusStep, Y: dir.Y * pegasusStep}))
		p.AddKarma(1)
	case p.Item.IsSword() && f.At(next).IsWall() && f.InBounds(next) && !f.OnBorder(next):
		f.Set(next, world.TileFloor)
		p.MoveTo(next)
		p.SetItem(gamedata.ItemNone, 0)
	}
}

// springTrap hurts the player standing on a caltrop and clears it.
func (s *Session) springTrap() {
	p := s.Player
	if s.Field.At(p.Pos) != world.TileCaltrop {
		return
	}
	p.TakeDamage(caltropDamage)
	s.Field.Set(p.Pos, world.TileFloor)
	s.flash(msgCaltropTrap)
}

// scan returns the entity on the player's cell and those adjacent to it.
func (s *Session) scan() (here *entity.Entity, around []*entity.Entity) {
	for _, e := range s.Entities {
		switch paths.DistanceChebyshev(e.Pos, s.Player.Pos) {
		case 0:
			if here == nil {
				here = e
			}
		case 1:
			around = append(around, e)
		}
	}
	return here, around
}

// encounter resolves the player stepping onto e and returns the outcome name.
func (s *Session) encounter(e *entity.Entity) string {
	p := s.Player

	if e.Kind == entity.KindTreasure {
		if !s.Encountered.Has(e.Unlock) {
			return "locked"
		}
		s.removeEntity(e)
		s.Encountered.Put(e.Symbol)
		s.Victory = true
		p.SetItem(gamedata.ItemTreasure, 0)
		s.announce(msgTreasure)
		return "treasure"
	}

	def := s.Tribe(e)
	s.Encountered.Put(def.SymbolRune())
	res := combat.Resolve(p, def)

	s.log.Debug("encounter",
		zap.String("tribe", def.Symbol),
		zap.Int("attack", res.Attack),
		zap.Int("level", def.Level),
		zap.Stringer("outcome", res.Outcome),
	)

	if res.Outcome == combat.OutcomeLose {
		if pos, ok := s.placer.FindRandomPlace(s.occupied(), spawnDistance); ok {
			p.Relocate(pos)
		} else {
			s.log.Warn("no room to relocate player", zap.String("tribe", def.Symbol), zap.Int("turn", s.Turn))
		}
		s.flash(msgRespawned)
		return res.Outcome.String()
	}

	s.removeEntity(e)
	s.applyVictory(def)
	return res.Outcome.String()
}

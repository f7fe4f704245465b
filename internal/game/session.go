package game

import (
	"context"
	"fmt"

	"codeberg.org/anaseto/gruid"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/arlq/internal/entity"
	"github.com/samdwyer/arlq/internal/gamedata"
	"github.com/samdwyer/arlq/internal/rng"
	"github.com/samdwyer/arlq/internal/telemetry"
	"github.com/samdwyer/arlq/internal/world"
)

// Message is a line shown under the status bar.
type Message struct {
	Text string
	TTL  int // renders left; -1 keeps the message until replaced
}

const flashTTL = 1

// tick ages the message by one render.
func (m *Message) tick() {
	if m.TTL < 0 {
		return
	}
	m.TTL--
	if m.TTL < 0 {
		*m = Message{TTL: -1}
	}
}

// Session is one playthrough: the field, the player and everything on it.
type Session struct {
	cfg     Config
	params  Params
	catalog *gamedata.Catalog
	stage   *gamedata.StageDef
	rng     *rng.Rand
	placer  *Placer
	log     *zap.Logger

	Field       *world.Field
	Player      *entity.Player
	Entities    []*entity.Entity
	Encountered mapset.Set[rune]
	Current     *world.Mask // cells lit this turn
	Explored    *world.Mask // cells ever lit

	Message Message
	Turn    int
	State   State
	Victory bool
	ShowAll bool
}

// NewSession generates the field and places the player, the treasures and
// the initial monsters of the configured stage.
func NewSession(ctx context.Context, cfg Config, catalog *gamedata.Catalog) (*Session, error) {
	if cfg.Stage == 0 {
		cfg.Stage = 1
	}
	if err := cfg.Validate(catalog); err != nil {
		return nil, err
	}
	stage, _ := catalog.Stage(cfg.Stage)

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.init")
	defer span.End()

	params := cfg.Params()
	r := rng.New(cfg.Seed)
	layout := world.Build(ctx, r, params.Build)

	s := &Session{
		cfg:         cfg,
		params:      params,
		catalog:     catalog,
		stage:       stage,
		rng:         r,
		log:         cfg.logger(),
		Field:       layout.Field,
		Player:      entity.NewPlayer(layout.Entry),
		Encountered: mapset.New[rune](),
		Current:     world.NewMask(params.Width, params.Height),
		Explored:    world.NewMask(params.Width, params.Height),
		Message:     Message{TTL: -1},
		Turn:        -1,
		State:       StatePlaying,
		ShowAll:     cfg.DebugShowEntities,
	}
	s.placer = NewPlacer(r, s.Field, cfg.PlacementMaxAttempts)

	for i := range stage.Treasures {
		def := &stage.Treasures[i]
		pos := layout.Exit
		if i > 0 {
			var ok bool
			if pos, ok = s.placer.FindRandomPlace(s.occupied(), spawnDistance); !ok {
				continue
			}
		}
		s.Entities = append(s.Entities, entity.NewTreasure(def, pos))
	}
	s.spawnInitial()

	span.SetAttributes(
		attribute.Int64("seed", cfg.Seed),
		attribute.Int("stage", cfg.Stage),
		attribute.Int("entities", len(s.Entities)),
		attribute.String("seed_string", cfg.SeedString()),
	)
	s.log.Info("session started",
		zap.String("seed_string", cfg.SeedString()),
		zap.Int("stage", cfg.Stage),
		zap.Int("entities", len(s.Entities)),
	)
	if ce := s.log.Check(zap.DebugLevel, "field generated"); ce != nil {
		ce.Write(
			zap.Int("width", s.Field.Width),
			zap.Int("height", s.Field.Height),
			zap.Int("floor", s.Field.Count(world.TileFloor)),
			zap.Int("reachable", len(s.Field.Reachable(layout.Entry))),
		)
	}

	return s, nil
}

// SeedString returns the string that reproduces this session.
func (s *Session) SeedString() string {
	return s.cfg.SeedString()
}

// Stage returns the stage being played.
func (s *Session) Stage() *gamedata.StageDef {
	return s.stage
}

// Catalog returns the tribe catalog.
func (s *Session) Catalog() *gamedata.Catalog {
	return s.catalog
}

// TorchRadius returns the torch radius for the current turn.
func (s *Session) TorchRadius() int {
	r := s.params.TorchRadius
	if s.Player.HasCompanion(gamedata.CompanionOcular) {
		r += ocularBonus
	}
	return r
}

// Tribe returns the tribe definition of a monster or companion entity.
func (s *Session) Tribe(e *entity.Entity) *gamedata.TribeDef {
	if !e.IsTribe() {
		return nil
	}
	return s.catalog.GetByID(e.Tribe)
}

// EntityAt returns the first entity on p, or nil.
func (s *Session) EntityAt(p gruid.Point) *entity.Entity {
	for _, e := range s.Entities {
		if e.Pos == p {
			return e
		}
	}
	return nil
}

// occupied returns the player's cell followed by every entity's cell.
func (s *Session) occupied() []gruid.Point {
	pts := make([]gruid.Point, 0, len(s.Entities)+1)
	pts = append(pts, s.Player.Pos)
	for _, e := range s.Entities {
		pts = append(pts, e.Pos)
	}
	return pts
}

func (s *Session) isOccupied(p gruid.Point) bool {
	return p == s.Player.Pos || s.EntityAt(p) != nil
}

func (s *Session) removeEntity(target *entity.Entity) {
	for i, e := range s.Entities {
		if e == target {
			s.Entities = append(s.Entities[:i], s.Entities[i+1:]...)
			return
		}
	}
}

// spawnInitial places the stage's starting population, entry by entry.
func (s *Session) spawnInitial() {
	for _, entry := range s.stage.Spawns {
		n := entry.Count
		if entry.Chance > 0 {
			n = 0
			if float64(s.rng.Intn(100))/100 < entry.Chance {
				n = 1
			}
		}
		for range n {
			s.spawn(entry.ID)
		}
	}
}

// respawn adds one hidden member of a randomly chosen populous tribe.
func (s *Session) respawn() {
	var pool []gamedata.TribeID
	for _, entry := range s.stage.Spawns {
		if entry.Count >= 2 {
			pool = append(pool, entry.ID)
		}
	}
	if len(pool) == 0 {
		return
	}
	id := rng.Choice(s.rng, pool)
	if e := s.spawn(id); e != nil {
		s.log.Debug("respawned",
			zap.String("tribe", s.catalog.GetByID(id).Symbol),
			zap.Int("turn", s.Turn),
		)
	}
}

func (s *Session) spawn(id gamedata.TribeID) *entity.Entity {
	pos, ok := s.placer.FindRandomPlace(s.occupied(), spawnDistance)
	if !ok {
		s.log.Warn("no room to spawn", zap.String("tribe", s.catalog.GetByID(id).Symbol))
		return nil
	}
	e := entity.NewTribeMember(id, s.catalog.GetByID(id), pos)
	s.Entities = append(s.Entities, e)
	return e
}

// flash shows a message for the next render only.
func (s *Session) flash(text string) {
	s.Message = Message{Text: text, TTL: flashTTL}
}

// announce shows a message until it is replaced.
func (s *Session) announce(text string) {
	s.Message = Message{Text: text, TTL: -1}
}

func (s *Session) String() string {
	return fmt.Sprintf("session %s turn %d %s", s.SeedString(), s.Turn, s.State)
}

package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/arlq/internal/gamedata"
	"github.com/samdwyer/arlq/internal/telemetry"
)

// UI is the front end a game talks to.
type UI interface {
	Render(v *View)
	// InputDirection blocks for a move. false means the player quit.
	InputDirection() (Direction, bool)
	// InputLetter blocks for a letter on the game over screen. false means the player quit.
	InputLetter() (rune, bool)
}

// StageSelector is implemented by front ends that can ask for a stage.
type StageSelector interface {
	SelectStage(stages []int) (int, bool)
}

// Result summarizes a finished session.
type Result struct {
	Victory    bool
	Quit       bool // the player quit during play
	Turns      int
	Level      int
	SeedString string
}

// Game holds the entire game state.
type Game struct {
	ui      UI
	cfg     Config
	catalog *gamedata.Catalog
	session *Session
}

// New creates a new game instance.
func New(cfg Config, ui UI, catalog *gamedata.Catalog) (*Game, error) {
	if err := cfg.Validate(catalog); err != nil {
		return nil, err
	}
	return &Game{ui: ui, cfg: cfg, catalog: catalog}, nil
}

// Session returns the running session, or nil before Run.
func (g *Game) Session() *Session {
	return g.session
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) (Result, error) {
	cfg := g.cfg
	if cfg.Stage == 0 {
		cfg.Stage = 1
		if sel, ok := g.ui.(StageSelector); ok {
			stage, ok := sel.SelectStage(g.catalog.StageIDs())
			if !ok {
				return Result{Quit: true}, nil
			}
			cfg.Stage = stage
		}
	}

	s, err := NewSession(ctx, cfg, g.catalog)
	if err != nil {
		return Result{}, err
	}
	g.session = s

	res := Result{SeedString: s.SeedString()}
	defer func() {
		g.end(ctx, res)
	}()

	for s.State == StatePlaying {
		if !s.BeginTurn() {
			break
		}
		g.ui.Render(s.View())

		dir, ok := g.ui.InputDirection()
		if !ok {
			res = g.result(true)
			return res, nil
		}
		s.Resolve(ctx, dir)
	}

	// Game over display
	for {
		g.ui.Render(s.View())
		r, ok := g.ui.InputLetter()
		if !ok {
			break
		}
		s.HandleGameOverKey(r)
	}

	res = g.result(false)
	return res, nil
}

func (g *Game) result(quit bool) Result {
	s := g.session
	return Result{
		Victory:    s.Victory,
		Quit:       quit,
		Turns:      s.Turn,
		Level:      s.Player.Level,
		SeedString: s.SeedString(),
	}
}

func (g *Game) end(ctx context.Context, res Result) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.end")
	span.SetAttributes(
		attribute.Bool("victory", res.Victory),
		attribute.Bool("quit", res.Quit),
		attribute.Int("turns", res.Turns),
		attribute.Int("level", res.Level),
	)
	span.End()

	g.session.log.Info("session ended",
		zap.Bool("victory", res.Victory),
		zap.Bool("quit", res.Quit),
		zap.Int("turns", res.Turns),
		zap.Int("level", res.Level),
	)
}

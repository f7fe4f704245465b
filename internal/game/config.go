package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/samdwyer/arlq/internal/gamedata"
	"github.com/samdwyer/arlq/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Stage selects the spawn table. 0 lets the front end choose, falling back to 1.
	Stage int

	LargeField      bool // one extra row of tiles
	LargeTorch      bool
	SmallTorch      bool
	NarrowCorridors bool

	// Seed for random number generation. The same seed and flags always
	// produce the same session.
	Seed int64

	DebugShowEntities bool
	CornerClutter     bool

	// PlacementMaxAttempts bounds the search for a free cell. 0 searches forever.
	PlacementMaxAttempts int

	Logger *zap.Logger
}

// DefaultConfig returns the configuration of a plain stage 1 session.
func DefaultConfig() Config {
	return Config{
		Stage:  1,
		Logger: zap.NewNop(),
	}
}

// Params are the values derived from a Config.
type Params struct {
	Build       world.BuildConfig
	Width       int
	Height      int
	TorchRadius int
}

// Params derives field geometry and torch radius from the flags.
func (c Config) Params() Params {
	b := world.DefaultBuildConfig()
	b.CornerClutter = c.CornerClutter
	if c.LargeField {
		b.TileNumY++
	}
	if c.NarrowCorridors {
		b.CorridorHWidth--
		b.CorridorVWidth--
	}

	radius := world.DefaultTorchRadius
	switch {
	case c.LargeTorch:
		radius++
	case c.SmallTorch:
		radius--
	}

	w, h := b.FieldSize()
	return Params{Build: b, Width: w, Height: h, TorchRadius: radius}
}

// Validate checks the flags, and the stage against catalog when it is not nil.
func (c Config) Validate(catalog *gamedata.Catalog) error {
	if c.LargeTorch && c.SmallTorch {
		return fmt.Errorf("large and small torch: %w", ErrConflictingFlags)
	}
	if c.Stage < 0 {
		return fmt.Errorf("stage %d: %w", c.Stage, ErrUnknownStage)
	}
	if catalog != nil && c.Stage != 0 {
		if _, ok := catalog.Stage(c.Stage); !ok {
			return fmt.Errorf("stage %d: %w", c.Stage, ErrUnknownStage)
		}
	}
	return nil
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

package world

import (
	"context"

	"codeberg.org/anaseto/gruid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/arlq/internal/rng"
	"github.com/samdwyer/arlq/internal/telemetry"
)

// Default field geometry.
const (
	DefaultTileWidth      = 10
	DefaultTileHeight     = 4
	DefaultTileNumX       = 7
	DefaultTileNumY       = 4
	DefaultCorridorHWidth = 2
	DefaultCorridorVWidth = 3
)

// clutterCycle is the period of the corner clutter counter.
const clutterCycle = 3

// BuildConfig holds the parameters for field generation.
type BuildConfig struct {
	TileWidth      int
	TileHeight     int
	TileNumX       int
	TileNumY       int
	CorridorHWidth int // cells carved through a vertical boundary
	CorridorVWidth int // cells carved through a horizontal boundary
	WallChars      string
	CornerClutter  bool
}

// DefaultBuildConfig returns the standard 78x21 field configuration.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		TileWidth:      DefaultTileWidth,
		TileHeight:     DefaultTileHeight,
		TileNumX:       DefaultTileNumX,
		TileNumY:       DefaultTileNumY,
		CorridorHWidth: DefaultCorridorHWidth,
		CorridorVWidth: DefaultCorridorVWidth,
		WallChars:      DefaultWallChars,
	}
}

// FieldSize returns the field dimensions implied by the tile layout.
func (c BuildConfig) FieldSize() (width, height int) {
	return (c.TileWidth+1)*c.TileNumX + 1, (c.TileHeight+1)*c.TileNumY + 1
}

// Layout is a generated field with its entry and exit cells.
type Layout struct {
	Field *Field
	Maze  Maze
	Entry gruid.Point
	Exit  gruid.Point
}

// Build generates a field. The same config and random state always produce
// the same layout.
func Build(ctx context.Context, r *rng.Rand, cfg BuildConfig) *Layout {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "field.generate")
	defer span.End()

	width, height := cfg.FieldSize()
	span.SetAttributes(
		attribute.Int("field.width", width),
		attribute.Int("field.height", height),
		attribute.Int("tiles.x", cfg.TileNumX),
		attribute.Int("tiles.y", cfg.TileNumY),
	)

	b := &builder{cfg: cfg, rng: r, field: NewField(width, height)}
	b.field.SetWallChars(cfg.WallChars)
	b.stampWalls()
	if cfg.CornerClutter && cfg.TileWidth >= 3 && cfg.TileHeight >= 3 {
		b.clutterCorners()
	}

	maze := GenerateMaze(r, cfg.TileNumX, cfg.TileNumY)
	for _, e := range maze.Edges {
		b.carve(e.Sorted())
	}

	layout := &Layout{
		Field: b.field,
		Maze:  maze,
		Entry: b.pickCell(maze.First),
		Exit:  b.pickCell(maze.Last),
	}
	span.SetAttributes(
		attribute.Int("maze.edges", len(maze.Edges)),
		attribute.Int("field.floor", b.field.Count(TileFloor)),
	)
	return layout
}

type builder struct {
	cfg   BuildConfig
	rng   *rng.Rand
	field *Field
}

// tileOrigin returns the top-left interior cell of a tile.
func (b *builder) tileOrigin(tile gruid.Point) gruid.Point {
	return gruid.Point{
		X: tile.X*(b.cfg.TileWidth+1) + 1,
		Y: tile.Y*(b.cfg.TileHeight+1) + 1,
	}
}

func (b *builder) stampWalls() {
	f := b.field
	for y := 0; y < f.Height; y++ {
		rowWall := y%(b.cfg.TileHeight+1) == 0
		for x := 0; x < f.Width; x++ {
			colWall := x%(b.cfg.TileWidth+1) == 0
			p := gruid.Point{X: x, Y: y}
			switch {
			case rowWall && colWall:
				f.Set(p, TileWallCross)
			case rowWall:
				f.Set(p, TileWallHorizontal)
			case colWall:
				f.Set(p, TileWallVertical)
			}
		}
	}
}

func (b *builder) clutterCorners() {
	counter := b.rng.Intn(clutterCycle)
	w, h := b.cfg.TileWidth, b.cfg.TileHeight
	for ty := range b.cfg.TileNumY {
		for tx := range b.cfg.TileNumX {
			lt := b.tileOrigin(gruid.Point{X: tx, Y: ty})
			corners := [4]gruid.Point{
				lt,
				lt.Add(gruid.Point{X: w - 1}),
				lt.Add(gruid.Point{Y: h - 1}),
				lt.Add(gruid.Point{X: w - 1, Y: h - 1}),
			}
			for _, c := range corners {
				counter = (counter + 1) % clutterCycle
				if counter == 0 {
					b.field.Set(c, TileWall)
				}
			}
		}
	}
}

// carve opens a corridor through the wall shared by the tiles of e.
func (b *builder) carve(e Edge) {
	if e.A.Y == e.B.Y {
		hw := clampWidth(b.cfg.CorridorHWidth, b.cfg.TileHeight)
		x := e.B.X * (b.cfg.TileWidth + 1)
		d := b.rng.Intn(b.cfg.TileHeight+1-hw) + 1
		for i := range hw {
			y := e.A.Y*(b.cfg.TileHeight+1) + d + i
			b.open(gruid.Point{X: x, Y: y}, gruid.Point{X: 1})
		}
		return
	}
	vw := clampWidth(b.cfg.CorridorVWidth, b.cfg.TileWidth)
	y := e.B.Y * (b.cfg.TileHeight + 1)
	d := b.rng.Intn(b.cfg.TileWidth+1-vw) + 1
	for i := range vw {
		x := e.A.X*(b.cfg.TileWidth+1) + d + i
		b.open(gruid.Point{X: x, Y: y}, gruid.Point{Y: 1})
	}
}

// open turns a wall cell and the cells on both sides of it along axis into floor.
func (b *builder) open(p, axis gruid.Point) {
	b.field.Set(p, TileFloor)
	b.field.Set(p.Sub(axis), TileFloor)
	b.field.Set(p.Add(axis), TileFloor)
}

// pickCell returns a random floor cell inside the given tile.
func (b *builder) pickCell(tile gruid.Point) gruid.Point {
	lt := b.tileOrigin(tile)
	for {
		p := gruid.Point{
			X: b.rng.Intn(b.cfg.TileWidth) + lt.X,
			Y: b.rng.Intn(b.cfg.TileHeight) + lt.Y,
		}
		if b.field.IsFloor(p) {
			return p
		}
	}
}

func clampWidth(width, extent int) int {
	return max(1, min(width, extent))
}

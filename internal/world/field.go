package world

import (
	"slices"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
)

// DefaultWallChars are the cross, horizontal and vertical wall glyphs.
const DefaultWallChars = "###"

// CaltropChar is the glyph of a caltrop trap.
const CaltropChar = 'x'

// Field is the mutable cell grid a session is played on.
type Field struct {
	Width     int
	Height    int
	WallChars [3]rune // cross, horizontal, vertical
	grid      rl.Grid
}

// NewField creates a field of the given size filled with floor.
func NewField(width, height int) *Field {
	f := &Field{
		Width:     width,
		Height:    height,
		WallChars: [3]rune{'#', '#', '#'},
		grid:      rl.NewGrid(width, height),
	}
	f.grid.Fill(rl.Cell(TileFloor))
	return f
}

// SetWallChars sets the wall glyphs from a cross/horizontal/vertical string.
// Missing characters keep their current glyph.
func (f *Field) SetWallChars(chars string) {
	i := 0
	for _, r := range chars {
		if i >= len(f.WallChars) {
			break
		}
		f.WallChars[i] = r
		i++
	}
}

// InBounds returns true if p lies on the field.
func (f *Field) InBounds(p gruid.Point) bool {
	return p.X >= 0 && p.X < f.Width && p.Y >= 0 && p.Y < f.Height
}

// OnBorder returns true if p lies on the outermost ring of cells.
func (f *Field) OnBorder(p gruid.Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == f.Width-1 || p.Y == f.Height-1
}

// At returns the tile at p. Out-of-bounds positions read as wall.
func (f *Field) At(p gruid.Point) Tile {
	if !f.InBounds(p) {
		return TileWall
	}
	return Tile(f.grid.At(p))
}

// Set writes a tile. Out-of-bounds writes are ignored.
func (f *Field) Set(p gruid.Point, t Tile) {
	if !f.InBounds(p) {
		return
	}
	f.grid.Set(p, rl.Cell(t))
}

// IsPassable returns true if the given position can be walked on.
func (f *Field) IsPassable(p gruid.Point) bool {
	return f.At(p).IsPassable()
}

// IsFloor returns true if the cell at p is plain floor.
func (f *Field) IsFloor(p gruid.Point) bool {
	return f.At(p) == TileFloor
}

// Count returns the number of cells holding tile t.
func (f *Field) Count(t Tile) int {
	return f.grid.Count(rl.Cell(t))
}

// Rune returns the display character of the cell at p.
func (f *Field) Rune(p gruid.Point) rune {
	switch t := f.At(p); t {
	case TileWallCross, TileWall:
		return f.WallChars[0]
	case TileWallHorizontal:
		return f.WallChars[1]
	case TileWallVertical:
		return f.WallChars[2]
	case TileCaltrop:
		return CaltropChar
	default:
		return ' '
	}
}

// Reachable returns every passable cell 4-connected to from, including from.
// It returns nil if from is not passable.
func (f *Field) Reachable(from gruid.Point) []gruid.Point {
	if !f.IsPassable(from) {
		return nil
	}
	pr := paths.NewPathRange(gruid.NewRange(0, 0, f.Width, f.Height))
	cc := pr.CCMap(&passablePath{field: f}, from)
	return slices.Clone(cc)
}

// passablePath walks cardinal neighbours over passable cells.
type passablePath struct {
	field *Field
	nbs   paths.Neighbors
}

func (pp *passablePath) Neighbors(p gruid.Point) []gruid.Point {
	if !pp.field.IsPassable(p) {
		return nil
	}
	return pp.nbs.Cardinal(p, pp.field.IsPassable)
}

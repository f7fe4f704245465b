// Package world provides field generation, the tile maze and visibility masks.
package world

import "codeberg.org/anaseto/gruid/rl"

// Tile represents a single field cell.
type Tile rl.Cell

// Out-of-bounds reads return the zero value, so TileWall must stay first.
const (
	// TileWall is a plain wall: tile-corner clutter and spread rocks.
	TileWall Tile = iota
	// TileWallCross is a wall at a tile-boundary intersection.
	TileWallCross
	// TileWallHorizontal is a wall on a horizontal tile boundary.
	TileWallHorizontal
	// TileWallVertical is a wall on a vertical tile boundary.
	TileWallVertical
	// TileFloor is a passable floor cell.
	TileFloor
	// TileCaltrop is a passable trap cell.
	TileCaltrop
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor || t == TileCaltrop
}

// IsWall returns true for every kind of wall.
func (t Tile) IsWall() bool {
	return t <= TileWallVertical
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileWallCross:
		return "wall_cross"
	case TileWallHorizontal:
		return "wall_horizontal"
	case TileWallVertical:
		return "wall_vertical"
	case TileFloor:
		return "floor"
	case TileCaltrop:
		return "caltrop"
	default:
		return "unknown"
	}
}

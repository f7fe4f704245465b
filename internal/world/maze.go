package world

import (
	"slices"

	"codeberg.org/anaseto/gruid"

	"github.com/samdwyer/arlq/internal/rng"
)

// Edge joins two cardinally adjacent tiles of the maze.
type Edge struct {
	A, B gruid.Point
}

// Sorted returns the edge with its endpoints ordered by X, then Y.
func (e Edge) Sorted() Edge {
	if e.B.X < e.A.X || (e.B.X == e.A.X && e.B.Y < e.A.Y) {
		return Edge{A: e.B, B: e.A}
	}
	return e
}

// Maze is a spanning tree over a grid of tiles.
type Maze struct {
	Width  int
	Height int
	Edges  []Edge
	First  gruid.Point // tile the growth started from
	Last   gruid.Point // tile connected most recently
}

// tileDirs is the neighbour order used when growing the maze: N, E, S, W.
var tileDirs = [4]gruid.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// GenerateMaze grows a spanning tree over width x height tiles by randomized
// frontier expansion. A grid smaller than 1x1 yields an empty maze.
func GenerateMaze(r *rng.Rand, width, height int) Maze {
	m := Maze{Width: width, Height: height}
	if width < 1 || height < 1 {
		return m
	}

	tiles := make([]gruid.Point, 0, width*height)
	for y := range height {
		for x := range width {
			tiles = append(tiles, gruid.Point{X: x, Y: y})
		}
	}
	connected := make([]bool, width*height)
	index := func(p gruid.Point) int { return p.Y*width + p.X }

	m.First = rng.Choice(r, tiles)
	m.Last = m.First
	connected[index(m.First)] = true
	frontier := []gruid.Point{m.First}
	done := 0

	for done < width*height {
		i := r.Intn(len(frontier))
		cur := frontier[i]

		var open []gruid.Point
		for _, d := range tileDirs {
			np := cur.Add(d)
			if np.X < 0 || np.X >= width || np.Y < 0 || np.Y >= height {
				continue
			}
			if !connected[index(np)] {
				open = append(open, np)
			}
		}
		if len(open) == 0 {
			done++
			frontier = slices.Delete(frontier, i, i+1)
			continue
		}

		next := rng.Choice(r, open)
		connected[index(next)] = true
		frontier = append(frontier, next)
		m.Edges = append(m.Edges, Edge{A: cur, B: next})
		m.Last = next
	}
	return m
}

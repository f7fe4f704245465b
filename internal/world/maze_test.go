package world

import (
	"testing"

	"codeberg.org/anaseto/gruid"

	"github.com/samdwyer/arlq/internal/rng"
)

func TestGenerateMazeSpanningTree(t *testing.T) {
	sizes := []struct {
		w, h int
	}{
		{1, 1}, {1, 5}, {5, 1}, {2, 2}, {3, 7}, {7, 4}, {7, 5}, {12, 9},
	}

	for _, sz := range sizes {
		for seed := int64(0); seed < 20; seed++ {
			m := GenerateMaze(rng.New(seed), sz.w, sz.h)

			if len(m.Edges) != sz.w*sz.h-1 {
				t.Fatalf("%dx%d seed %d: len(Edges) = %d, want %d", sz.w, sz.h, seed, len(m.Edges), sz.w*sz.h-1)
			}

			parent := make([]int, sz.w*sz.h)
			for i := range parent {
				parent[i] = i
			}
			var find func(int) int
			find = func(i int) int {
				if parent[i] != i {
					parent[i] = find(parent[i])
				}
				return parent[i]
			}

			for _, e := range m.Edges {
				if abs(e.A.X-e.B.X)+abs(e.A.Y-e.B.Y) != 1 {
					t.Fatalf("%dx%d seed %d: edge %v is not between neighbours", sz.w, sz.h, seed, e)
				}
				a, b := find(e.A.Y*sz.w+e.A.X), find(e.B.Y*sz.w+e.B.X)
				if a == b {
					t.Fatalf("%dx%d seed %d: edge %v closes a cycle", sz.w, sz.h, seed, e)
				}
				parent[a] = b
			}

			root := find(0)
			for i := range parent {
				if find(i) != root {
					t.Fatalf("%dx%d seed %d: tile %d not connected", sz.w, sz.h, seed, i)
				}
			}
		}
	}
}

func TestGenerateMazeSingleTile(t *testing.T) {
	m := GenerateMaze(rng.New(7), 1, 1)
	if m.First != (gruid.Point{}) || m.Last != m.First {
		t.Errorf("GenerateMaze(1x1) First/Last = %v/%v, want origin", m.First, m.Last)
	}
}

func TestGenerateMazeEmpty(t *testing.T) {
	m := GenerateMaze(rng.New(7), 0, 3)
	if len(m.Edges) != 0 {
		t.Errorf("GenerateMaze(0x3) edges = %d, want 0", len(m.Edges))
	}
}

func TestGenerateMazeLastIsLatestEdge(t *testing.T) {
	m := GenerateMaze(rng.New(99), 7, 4)
	if got := m.Edges[len(m.Edges)-1].B; got != m.Last {
		t.Errorf("Last = %v, want %v", m.Last, got)
	}
}

func TestGenerateMazeReproducible(t *testing.T) {
	m1 := GenerateMaze(rng.New(42), 7, 4)
	m2 := GenerateMaze(rng.New(42), 7, 4)
	if m1.First != m2.First || m1.Last != m2.Last {
		t.Fatalf("First/Last mismatch: %v/%v != %v/%v", m1.First, m1.Last, m2.First, m2.Last)
	}
	for i := range m1.Edges {
		if m1.Edges[i] != m2.Edges[i] {
			t.Errorf("edge %d mismatch: %v != %v", i, m1.Edges[i], m2.Edges[i])
		}
	}
}

func TestEdgeSorted(t *testing.T) {
	tests := []struct {
		in   Edge
		want Edge
	}{
		{Edge{gruid.Point{X: 1, Y: 0}, gruid.Point{X: 0, Y: 0}}, Edge{gruid.Point{X: 0, Y: 0}, gruid.Point{X: 1, Y: 0}}},
		{Edge{gruid.Point{X: 2, Y: 3}, gruid.Point{X: 2, Y: 2}}, Edge{gruid.Point{X: 2, Y: 2}, gruid.Point{X: 2, Y: 3}}},
		{Edge{gruid.Point{X: 0, Y: 1}, gruid.Point{X: 0, Y: 2}}, Edge{gruid.Point{X: 0, Y: 1}, gruid.Point{X: 0, Y: 2}}},
	}
	for _, tt := range tests {
		if got := tt.in.Sorted(); got != tt.want {
			t.Errorf("%v.Sorted() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

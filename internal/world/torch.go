package world

import (
	"math"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// Torch radii and shape.
const (
	DefaultTorchRadius = 4
	TorchWidthRatio    = 1.5
)

// Mask marks cells of a field. Values count how many times a cell was marked.
type Mask struct {
	width  int
	height int
	grid   rl.Grid
}

// NewMask creates an empty mask.
func NewMask(width, height int) *Mask {
	return &Mask{width: width, height: height, grid: rl.NewGrid(width, height)}
}

func (m *Mask) inBounds(p gruid.Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// Has returns true if p was marked at least once.
func (m *Mask) Has(p gruid.Point) bool {
	return m.inBounds(p) && m.grid.At(p) > 0
}

// Value returns the mark count of p.
func (m *Mask) Value(p gruid.Point) int {
	if !m.inBounds(p) {
		return 0
	}
	return int(m.grid.At(p))
}

// Mark increments p. Out-of-bounds points are ignored.
func (m *Mask) Mark(p gruid.Point) {
	if !m.inBounds(p) {
		return
	}
	m.grid.Set(p, m.grid.At(p)+1)
}

// Accumulate adds every cell of other into m.
func (m *Mask) Accumulate(other *Mask) {
	for y := range min(m.height, other.height) {
		for x := range min(m.width, other.width) {
			p := gruid.Point{X: x, Y: y}
			if v := other.grid.At(p); v > 0 {
				m.grid.Set(p, m.grid.At(p)+v)
			}
		}
	}
}

// Count returns the number of marked cells.
func (m *Mask) Count() int {
	return m.width*m.height - m.grid.Count(0)
}

// Torch returns the cells lit by a torch of the given radius at center.
// The lit area is an ellipse stretched horizontally by widthRatio.
func Torch(width, height int, center gruid.Point, radius int, widthRatio float64) *Mask {
	m := NewMask(width, height)
	ForEllipse(center, radius, widthRatio, func(p gruid.Point) {
		m.Mark(p)
	})
	return m
}

// ForEllipse calls fn for each cell of the ellipse around center, row by row.
// Cells may lie outside any field.
func ForEllipse(center gruid.Point, radius int, widthRatio float64, fn func(gruid.Point)) {
	if radius < 0 {
		return
	}
	rr := float64(radius) * widthRatio
	for dy := -radius; dy <= radius; dy++ {
		w := int(math.Sqrt(rr*rr-float64(dy*dy)) + 0.5)
		for dx := -w; dx <= w; dx++ {
			fn(gruid.Point{X: center.X + dx, Y: center.Y + dy})
		}
	}
}

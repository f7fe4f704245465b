package game

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"github.com/samdwyer/arlq/internal/rng"
	"github.com/samdwyer/arlq/internal/world"
)

// spawnDistance is the Chebyshev distance every spawn and respawn keeps from
// occupied cells.
const spawnDistance = 2

// Placer picks random free cells on a field.
type Placer struct {
	rng   *rng.Rand
	field *world.Field

	// MaxAttempts bounds FindRandomPlace. 0 means no bound.
	MaxAttempts int
}

// NewPlacer creates a placer drawing from r.
func NewPlacer(r *rng.Rand, field *world.Field, maxAttempts int) *Placer {
	return &Placer{rng: r, field: field, MaxAttempts: maxAttempts}
}

// FindRandomPlace returns a floor cell whose right neighbour is also floor
// and which is farther than minDistance (Chebyshev) from every occupied
// point. It reports false only when MaxAttempts is set and exhausted.
func (pl *Placer) FindRandomPlace(occupied []gruid.Point, minDistance int) (gruid.Point, bool) {
	f := pl.field
	if f.Width < 3 || f.Height < 3 {
		return gruid.Point{}, false
	}
	for attempt := 0; pl.MaxAttempts <= 0 || attempt < pl.MaxAttempts; attempt++ {
		p := gruid.Point{
			X: pl.rng.Intn(f.Width-2) + 1,
			Y: pl.rng.Intn(f.Height-2) + 1,
		}
		if !f.IsFloor(p) || !f.IsFloor(p.Add(gruid.Point{X: 1})) {
			continue
		}
		if tooClose(p, occupied, minDistance) {
			continue
		}
		return p, true
	}
	return gruid.Point{}, false
}

func tooClose(p gruid.Point, occupied []gruid.Point, minDistance int) bool {
	for _, q := range occupied {
		if paths.DistanceChebyshev(p, q) <= minDistance {
			return true
		}
	}
	return false
}

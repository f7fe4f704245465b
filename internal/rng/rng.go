// Package rng provides the seeded random source every part of the game draws from.
package rng

// LCG parameters. A draw is the new state reduced modulo the bound.
const (
	multiplier = 1103515245
	increment  = 12345
)

// Rand is a linear-congruential generator over a 32-bit state.
//
// The sequence is a pure function of the seed and the number of draws made,
// which is what makes a session replayable from its seed string.
type Rand struct {
	state uint32
}

// New returns a generator seeded with seed.
func New(seed int64) *Rand {
	r := &Rand{}
	r.Seed(seed)
	return r
}

// Seed resets the generator. The seed is reduced modulo 2^32.
func (r *Rand) Seed(seed int64) {
	r.state = uint32(seed)
}

// Intn returns an integer in [0, n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	r.state = multiplier*r.state + increment
	return int(r.state % uint32(n))
}

// Choice returns a uniformly chosen element of items using a single draw.
// It panics if items is empty.
func Choice[T any](r *Rand, items []T) T {
	return items[r.Intn(len(items))]
}

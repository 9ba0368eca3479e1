package core

import "math/rand/v2"

// Rand is a seedable random source held by value, so games can embed it in
// their state without a heap allocation. The same seed yields the same
// sequence on every host.
type Rand struct {
	src rand.PCG
}

// NewRand returns a source seeded with seed.
func NewRand(seed uint64) Rand {
	var r Rand
	r.Seed(seed)
	return r
}

// Seed resets the sequence.
func (r *Rand) Seed(seed uint64) {
	r.src.Seed(seed, seed^0x9e3779b97f4a7c15)
}

// Uint64 returns the next raw value.
func (r *Rand) Uint64() uint64 {
	return r.src.Uint64()
}

// Intn returns a value in [0, n). It returns 0 when n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.src.Uint64() % uint64(n))
}

// Chance reports true with probability 1/n.
func (r *Rand) Chance(n int) bool {
	return r.Intn(n) == 0
}

package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// Every generator run owns its own RNG so runs with equal seeds are reproducible.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Range returns a uniformly distributed integer in [min, max]. Both ends are
// inclusive; swapped bounds are accepted.
func (r *RNG) Range(min, max int) int {
	if max < min {
		min, max = max, min
	}
	if min == max {
		return min
	}
	return min + r.r.IntN(max-min+1)
}

// RangeFloat returns a uniformly distributed float in [min, max).
func (r *RNG) RangeFloat(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	return min + r.r.Float64()*(max-min)
}

// Chance reports true with probability p. Values outside [0, 1] saturate.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Package dice provides the random source used by combat rolls and automated
// controllers. Every roll in a match goes through a Roller so that a match can
// be replayed from a seed.
package dice

import (
	"math/rand/v2"
	"time"
)

// Roller is the subset of *rand.Rand used by the engine.
type Roller interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// IntN returns a value in [0, n). Panics if n <= 0.
	IntN(n int) int
}

// New returns a PCG-backed Roller for seed.
// Seed 0 picks a time-based seed.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Chance performs a Bernoulli trial with probability p.
func Chance(r Roller, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// Pick returns a uniformly random element of items.
// Panics on an empty slice.
func Pick[T any](r Roller, items []T) T {
	return items[r.IntN(len(items))]
}

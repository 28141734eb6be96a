// Package synthetic implements the dashboard data providers with fabricated
// data. It stands in for real analytics sources in the dashboard prototype.
package synthetic

import (
	"math/rand/v2"
	"sync"

	"mhtrends-backend/application/ports"
)

// LockedRand is a mutex-guarded PCG generator shared across requests
type LockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ ports.RandomSource = (*LockedRand)(nil)

// NewLockedRand creates a generator with a fixed seed
func NewLockedRand(seed uint64) *LockedRand {
	return &LockedRand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSeededRand creates a generator seeded from the clock
func NewTimeSeededRand(clock ports.Clock) *LockedRand {
	return NewLockedRand(uint64(clock.Now().UnixNano()))
}

// Float64 returns a uniform value in [0, 1)
func (r *LockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// IntN returns a uniform value in [0, n)
func (r *LockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

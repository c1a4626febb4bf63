package vmath

import (
	"math/rand/v2"
	"time"
)

// Random is a seeded source for gameplay randomness. A single Random is owned
// by the simulation goroutine; it is not safe for concurrent use.
type Random struct {
	r *rand.Rand
}

// NewRandom creates a deterministic source. Seed 0 picks a time-based seed.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

// Float returns a value in [0,1).
func (r *Random) Float() float64 {
	return r.r.Float64()
}

// Range returns a value in [lo, hi).
func (r *Random) Range(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// Angle returns a uniformly distributed direction in (-π, π].
func (r *Random) Angle() float64 {
	return NormalizeAngle(r.Range(0, Tau))
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (r *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Chance reports true with probability p.
func (r *Random) Chance(p float64) bool {
	return r.r.Float64() < p
}

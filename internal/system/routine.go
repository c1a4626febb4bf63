// Package system holds the game routines. Each routine selects the links it
// cares about by trait keys and is registered on a universe in the order
// Install uses; that order is the only sequencing between them.
package system

import (
	"math"

	"github.com/orbitfall/engine/internal/core/ecs"
	"github.com/orbitfall/engine/internal/vmath"
)

// Spawner builds links from archetype names. content.Factory implements it.
type Spawner interface {
	Spawn(name string, at vmath.Vec, direction float64) (*ecs.Link, error)
}

// defaultMaxStep caps integration after a stall, in seconds.
const defaultMaxStep = 10.0

func clampStep(elapsed, max float64) float64 {
	return math.Min(elapsed, max)
}

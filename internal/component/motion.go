package component

import (
	"fmt"
	"strings"

	"github.com/orbitfall/engine/internal/vmath"
)

// EdgePolicy decides what happens when a moving link leaves the play field.
type EdgePolicy uint8

const (
	RemoveOnEdge EdgePolicy = iota
	BounceOnEdge
	IgnoreEdges
)

var edgeNames = [...]string{"remove", "bounce", "ignore"}

func (p EdgePolicy) String() string {
	if int(p) < len(edgeNames) {
		return edgeNames[p]
	}
	return fmt.Sprintf("EdgePolicy(%d)", p)
}

// ParseEdgePolicy reads a policy name. Empty means remove.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RemoveOnEdge, nil
	}
	for i, n := range edgeNames {
		if n == s {
			return EdgePolicy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown edge policy %q", s)
}

// Motion is integrated into the link's Transform every tick.
type Motion struct {
	Velocity        vmath.Vec
	AngularVelocity float64 // radians per second
	Edge            EdgePolicy
	Restitution     float64 // velocity kept by a bounce, 0..1
}

// Propulsion keeps the velocity aligned with the facing direction.
type Propulsion struct {
	Speed float64
}

// Pilot marks a link steered by the player's input.
type Pilot struct {
	Thrust       float64 // acceleration, units/s²
	TurnSpeed    float64 // radians per second
	MaxSpeed     float64
	AimAtPointer bool
}

// Lifetime removes the link once Remaining seconds have passed.
type Lifetime struct {
	Remaining float64
}

// Package steering turns transforms toward targets. Every function is
// stateless; callers own the transform and angular velocity they pass in.
package steering

import (
	"math"

	"github.com/orbitfall/engine/internal/vmath"
)

// Target is a point being aimed at and how fast it moves.
type Target struct {
	Position vmath.Vec
	Velocity vmath.Vec
}

// Bearing returns the angle from from to to. Coincident points give 0.
func Bearing(from, to vmath.Vec) float64 {
	d := to.Sub(from)
	if d.IsZero() {
		return 0
	}
	return d.Angle()
}

// InstantFacing points tr straight at point.
func InstantFacing(tr *vmath.Transform, point vmath.Vec) {
	tr.SetDirection(tr.DirectionTo(point))
}

// SmoothFacing turns tr toward point at no more than speed radians per
// second. When the remaining arc can be covered within elapsed it snaps onto
// the bearing and zeroes angularVelocity; otherwise it sets angularVelocity
// for the motion routine to integrate. Returns true once aligned.
func SmoothFacing(tr *vmath.Transform, angularVelocity *float64, point vmath.Vec, speed, elapsed float64) bool {
	bearing := tr.DirectionTo(point)
	arc := vmath.ShortestArc(tr.Direction(), bearing)

	if math.Abs(arc) < speed*elapsed || arc == 0 {
		tr.SetDirection(bearing)
		*angularVelocity = 0
		return true
	}
	if arc > 0 {
		*angularVelocity = speed
	} else {
		*angularVelocity = -speed
	}
	return false
}

// AnticipatedFacing aims where target will be when a projectile fired now at
// projectileSpeed reaches it. A positive steeringSpeed turns smoothly, zero
// turns instantly.
func AnticipatedFacing(tr *vmath.Transform, angularVelocity *float64, target Target, projectileSpeed, steeringSpeed, elapsed float64) {
	point := AnticipatedPoint(tr.Position, target, projectileSpeed)
	if steeringSpeed <= 0 {
		InstantFacing(tr, point)
		if angularVelocity != nil {
			*angularVelocity = 0
		}
		return
	}
	SmoothFacing(tr, angularVelocity, point, steeringSpeed, elapsed)
}

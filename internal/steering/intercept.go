package steering

import (
	"math"

	"github.com/orbitfall/engine/internal/vmath"
)

// linearEpsilon is the leading coefficient below which the intercept
// equation is solved as linear.
const linearEpsilon = 1e-9

// Intercept solves for the earliest time t >= 0 at which a projectile leaving
// subject at speed meets a target moving at constant velocity:
//
//	(|v|² - s²)t² + 2v·(T-S)t + |T-S|² = 0
//
// It returns the meeting point and t, or ok=false when no such time exists.
func Intercept(subject vmath.Vec, target Target, speed float64) (point vmath.Vec, t float64, ok bool) {
	d := target.Position.Sub(subject)
	c := d.LengthSq()
	if c == 0 {
		return target.Position, 0, true
	}
	a := target.Velocity.LengthSq() - speed*speed
	b := 2 * target.Velocity.Dot(d)

	if math.Abs(a) < linearEpsilon {
		if b == 0 {
			return target.Position, 0, false
		}
		t = -c / b
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			return target.Position, 0, false
		}
		sq := math.Sqrt(disc)
		t1 := (-b - sq) / (2 * a)
		t2 := (-b + sq) / (2 * a)
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		switch {
		case t1 >= 0:
			t = t1
		case t2 >= 0:
			t = t2
		default:
			return target.Position, 0, false
		}
	}

	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return target.Position, 0, false
	}
	return target.Position.Add(target.Velocity.Scale(t)), t, true
}

// AnticipatedPoint is the intercept point, or the target's current position
// when no intercept exists.
func AnticipatedPoint(subject vmath.Vec, target Target, speed float64) vmath.Vec {
	p, _, ok := Intercept(subject, target, speed)
	if !ok {
		return target.Position
	}
	return p
}

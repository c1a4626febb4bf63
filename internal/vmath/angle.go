package vmath

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// NormalizeAngle wraps x into (-π, π].
func NormalizeAngle(x float64) float64 {
	if x > -math.Pi && x <= math.Pi {
		return x
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	a := math.Mod(x+math.Pi, Tau)
	if a <= 0 {
		a += Tau
	}
	r := a - math.Pi
	if r <= -math.Pi {
		return math.Pi
	}
	return r
}

// ShortestArc returns the signed rotation that takes from onto to along the
// shorter way round. The result lies in (-π, π].
func ShortestArc(from, to float64) float64 {
	return NormalizeAngle(to - from)
}

// LongestArc returns the signed rotation that takes from onto to along the
// longer way round. Its magnitude lies in [π, 2π].
func LongestArc(from, to float64) float64 {
	s := ShortestArc(from, to)
	if s > 0 {
		return s - Tau
	}
	if s < 0 {
		return s + Tau
	}
	return Tau
}

// AbsArc is the unsigned angular distance between a and b, in [0, π].
func AbsArc(a, b float64) float64 {
	return math.Abs(ShortestArc(a, b))
}

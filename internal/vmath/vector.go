// Package vmath holds the float 2D math shared by the simulation: vectors,
// point+direction transforms, angle arithmetic and a few small helpers.
package vmath

import "math"

// Vec is a 2D vector with x and y components.
type Vec struct {
	X float64
	Y float64
}

// Polar creates a vector from an angle (radians) and a length.
func Polar(angle, length float64) Vec {
	return Vec{
		X: length * math.Cos(angle),
		Y: length * math.Sin(angle),
	}
}

// Add returns the sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference between two vectors.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies the vector by a scalar value.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Dot returns the dot product of two vectors.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the magnitude of the vector.
func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSq returns magnitude squared (comparisons without a square root).
func (v Vec) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between two points.
func (v Vec) Distance(o Vec) float64 {
	return v.Sub(o).Length()
}

// DistanceSq returns the squared distance between two points.
func (v Vec) DistanceSq(o Vec) float64 {
	return v.Sub(o).LengthSq()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Angle returns the direction of the vector in radians, in (-π, π].
func (v Vec) Angle() float64 {
	return NormalizeAngle(math.Atan2(v.Y, v.X))
}

// Rotate rotates the vector by angle (radians).
func (v Vec) Rotate(angle float64) Vec {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// WithLength keeps the direction and replaces the length.
// A zero vector has no direction and stays zero.
func (v Vec) WithLength(length float64) Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return v.Scale(length / l)
}

// WithAngle keeps the length and replaces the direction.
func (v Vec) WithAngle(angle float64) Vec {
	return Polar(angle, v.Length())
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

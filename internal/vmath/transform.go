package vmath

// Transform is a point plus a facing direction. The direction is always kept
// in (-π, π]; every write goes through SetDirection.
type Transform struct {
	Position  Vec
	direction float64
}

// NewTransform creates a transform at position facing direction.
func NewTransform(position Vec, direction float64) Transform {
	t := Transform{Position: position}
	t.SetDirection(direction)
	return t
}

// Direction returns the facing angle in radians.
func (t *Transform) Direction() float64 {
	return t.direction
}

// SetDirection sets the facing angle, wrapping it into (-π, π].
func (t *Transform) SetDirection(a float64) {
	t.direction = NormalizeAngle(a)
}

// Rotate turns the transform by da radians.
func (t *Transform) Rotate(da float64) {
	t.SetDirection(t.direction + da)
}

// Heading returns the unit vector of the facing direction.
func (t *Transform) Heading() Vec {
	return Polar(t.direction, 1)
}

// Offset moves the position by v.
func (t *Transform) Offset(v Vec) {
	t.Position = t.Position.Add(v)
}

// Advance moves the position dist units along the facing direction.
func (t *Transform) Advance(dist float64) {
	t.Offset(Polar(t.direction, dist))
}

// Ahead returns the point dist units in front of the transform.
func (t *Transform) Ahead(dist float64) Vec {
	return t.Position.Add(Polar(t.direction, dist))
}

// DirectionTo returns the bearing from the transform's position to p.
// When p coincides with the position the current direction is kept.
func (t *Transform) DirectionTo(p Vec) float64 {
	d := p.Sub(t.Position)
	if d.IsZero() {
		return t.direction
	}
	return d.Angle()
}

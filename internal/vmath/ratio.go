package vmath

// Ratio is a value bounded by [0, Max], used for hit points, cooldown
// progress and HUD bars.
type Ratio struct {
	Value float64
	Max   float64
}

// Full creates a ratio at its maximum.
func Full(max float64) Ratio {
	return Ratio{Value: max, Max: max}
}

// Fraction returns Value/Max clamped to [0,1]. A zero Max reads as empty.
func (r Ratio) Fraction() float64 {
	if r.Max <= 0 {
		return 0
	}
	return Clamp(r.Value/r.Max, 0, 1)
}

// IsFull reports whether the value reached its maximum.
func (r Ratio) IsFull() bool {
	return r.Value >= r.Max
}

// IsEmpty reports whether the value is depleted.
func (r Ratio) IsEmpty() bool {
	return r.Value <= 0
}

// Add shifts the value by d, clamped to [0, Max].
func (r *Ratio) Add(d float64) {
	r.Value = Clamp(r.Value+d, 0, r.Max)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

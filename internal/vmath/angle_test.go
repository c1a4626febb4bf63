package vmath

import (
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func sampleAngles(n int) []float64 {
	r := rand.New(rand.NewPCG(7, 11))
	out := []float64{0, math.Pi, -math.Pi, Tau, -Tau, 3 * math.Pi, -3 * math.Pi, 1e-12, -1e-12, 1e6, -1e6}
	for i := 0; i < n; i++ {
		out = append(out, (r.Float64()-0.5)*200)
	}
	return out
}

func TestNormalizeAngle_Range(t *testing.T) {
	for _, x := range sampleAngles(5000) {
		n := NormalizeAngle(x)
		if n <= -math.Pi || n > math.Pi {
			t.Fatalf("NormalizeAngle(%v) = %v, outside (-π, π]", x, n)
		}
		if NormalizeAngle(n) != n {
			t.Fatalf("NormalizeAngle not idempotent for %v: %v -> %v", x, n, NormalizeAngle(n))
		}
	}
}

func TestNormalizeAngle_Values(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"pi_stays_pi", math.Pi, math.Pi},
		{"minus_pi_becomes_pi", -math.Pi, math.Pi},
		{"full_turn", Tau, 0},
		{"three_halves", 1.5 * math.Pi, -0.5 * math.Pi},
		{"minus_three_halves", -1.5 * math.Pi, 0.5 * math.Pi},
		{"nan", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.in)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestShortestArc_Antisymmetric(t *testing.T) {
	angles := sampleAngles(300)
	for i := 0; i+1 < len(angles); i += 2 {
		a, b := angles[i], angles[i+1]
		ab := ShortestArc(a, b)
		ba := ShortestArc(b, a)
		if math.Abs(ab) > math.Pi || math.Abs(ba) > math.Pi {
			t.Fatalf("arc out of range: %v, %v", ab, ba)
		}
		// antipodal pairs both read +π; they are equal modulo a full turn
		sum := NormalizeAngle(ab + ba)
		if math.Abs(sum) > 1e-6 && math.Abs(math.Abs(sum)-Tau) > 1e-6 {
			t.Fatalf("ShortestArc(%v,%v)=%v but ShortestArc(%v,%v)=%v", a, b, ab, b, a, ba)
		}
	}
}

func TestShortestArc_Values(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     float64
	}{
		{"quarter_ccw", 0, math.Pi / 2, math.Pi / 2},
		{"quarter_cw", 0, -math.Pi / 2, -math.Pi / 2},
		{"across_seam", 3, -3, Tau - 6},
		{"behind", 0, math.Pi, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortestArc(tt.from, tt.to)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("ShortestArc(%v,%v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestLongestArc(t *testing.T) {
	got := LongestArc(0, math.Pi/2)
	if math.Abs(got-(-1.5*math.Pi)) > epsilon {
		t.Errorf("LongestArc(0, π/2) = %v, want -3π/2", got)
	}
	if got := LongestArc(1, 1); got != Tau {
		t.Errorf("LongestArc of equal angles = %v, want 2π", got)
	}
	for _, a := range sampleAngles(50) {
		l := LongestArc(0, a)
		if math.Abs(l) < math.Pi-epsilon || math.Abs(l) > Tau {
			t.Fatalf("LongestArc(0,%v) = %v, magnitude outside [π, 2π]", a, l)
		}
	}
}

func TestAbsArc(t *testing.T) {
	if got := AbsArc(-3, 3); math.Abs(got-(Tau-6)) > epsilon {
		t.Errorf("AbsArc(-3,3) = %v", got)
	}
}

package steering

import (
	"math"
	"testing"

	"github.com/orbitfall/engine/internal/vmath"
)

const epsilon = 1e-9

func TestInstantFacing(t *testing.T) {
	tr := vmath.NewTransform(vmath.Vec{X: 1, Y: 1}, 0)
	InstantFacing(&tr, vmath.Vec{X: 1, Y: 5})
	if math.Abs(tr.Direction()-math.Pi/2) > epsilon {
		t.Errorf("direction = %v, want π/2", tr.Direction())
	}

	InstantFacing(&tr, tr.Position)
	if math.Abs(tr.Direction()-math.Pi/2) > epsilon {
		t.Errorf("coincident target changed direction to %v", tr.Direction())
	}
}

func TestSmoothFacingSnapsWithoutOvershoot(t *testing.T) {
	tr := vmath.NewTransform(vmath.Vec{}, 0)
	angVel := 3.0
	settled := SmoothFacing(&tr, &angVel, vmath.Vec{X: -10}, 10, 1)

	if !settled {
		t.Error("settled = false")
	}
	if tr.Direction() != math.Pi {
		t.Errorf("direction = %v, want exactly π", tr.Direction())
	}
	if angVel != 0 {
		t.Errorf("angular velocity = %v, want 0", angVel)
	}
}

func TestSmoothFacingTurnsShortWay(t *testing.T) {
	tests := []struct {
		name   string
		dir    float64
		target vmath.Vec
		want   float64
	}{
		{"target_left", 0, vmath.Vec{X: 1, Y: 1}, 2},
		{"target_right", 0, vmath.Vec{X: 1, Y: -1}, -2},
		{"across_the_seam", 3, vmath.Vec{X: -1, Y: -0.5}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := vmath.NewTransform(vmath.Vec{}, tc.dir)
			var angVel float64
			if SmoothFacing(&tr, &angVel, tc.target, 2, 0.01) {
				t.Fatal("settled on a wide arc")
			}
			if angVel != tc.want {
				t.Errorf("angular velocity = %v, want %v", angVel, tc.want)
			}
			if tr.Direction() != vmath.NormalizeAngle(tc.dir) {
				t.Errorf("direction changed to %v", tr.Direction())
			}
		})
	}
}

func TestSmoothFacingConverges(t *testing.T) {
	tr := vmath.NewTransform(vmath.Vec{}, 0)
	var angVel float64
	target := vmath.Vec{X: -3, Y: 4}
	const dt = 1.0 / 60
	for i := 0; i < 600; i++ {
		if SmoothFacing(&tr, &angVel, target, 4, dt) {
			break
		}
		tr.Rotate(angVel * dt)
	}
	if angVel != 0 || vmath.AbsArc(tr.Direction(), target.Angle()) > epsilon {
		t.Fatalf("did not converge: dir=%v angVel=%v", tr.Direction(), angVel)
	}
}

func TestInterceptStationaryTarget(t *testing.T) {
	p, tt, ok := Intercept(vmath.Vec{}, Target{Position: vmath.Vec{X: 30, Y: 40}}, 10)
	if !ok {
		t.Fatal("no intercept")
	}
	if math.Abs(tt-5) > epsilon || p != (vmath.Vec{X: 30, Y: 40}) {
		t.Errorf("intercept = %v at %v, want (30,40) at 5", p, tt)
	}
}

func TestInterceptCrossingTarget(t *testing.T) {
	target := Target{Position: vmath.Vec{X: 100}, Velocity: vmath.Vec{Y: 10}}
	p, tt, ok := Intercept(vmath.Vec{}, target, 20)
	if !ok {
		t.Fatal("no intercept")
	}
	// projectile and target must arrive together
	if math.Abs(p.Length()-20*tt) > 1e-6 {
		t.Errorf("projectile travel %v != %v", p.Length(), 20*tt)
	}
	if math.Abs(p.Y-10*tt) > 1e-6 || p.X != 100 {
		t.Errorf("point %v not on target path at t=%v", p, tt)
	}
}

func TestInterceptEqualSpeeds(t *testing.T) {
	// target approaching at the projectile's speed: linear case
	target := Target{Position: vmath.Vec{X: 100}, Velocity: vmath.Vec{X: -10}}
	p, tt, ok := Intercept(vmath.Vec{}, target, 10)
	if !ok || math.Abs(tt-5) > epsilon || math.Abs(p.X-50) > epsilon {
		t.Fatalf("intercept = %v at %v ok=%v, want (50,0) at 5", p, tt, ok)
	}

	// fleeing at the same speed: never caught
	target.Velocity = vmath.Vec{X: 10}
	if _, _, ok := Intercept(vmath.Vec{}, target, 10); ok {
		t.Fatal("caught a target fleeing at equal speed")
	}
}

func TestAnticipatedFallback(t *testing.T) {
	target := Target{Position: vmath.Vec{X: 10, Y: 10}, Velocity: vmath.Vec{X: 50, Y: 50}}
	if _, _, ok := Intercept(vmath.Vec{}, target, 5); ok {
		t.Fatal("intercept found for a faster fleeing target")
	}
	p := AnticipatedPoint(vmath.Vec{}, target, 5)
	if p != target.Position {
		t.Errorf("fallback = %v, want current position %v", p, target.Position)
	}

	tr := vmath.NewTransform(vmath.Vec{}, 0)
	angVel := 1.0
	AnticipatedFacing(&tr, &angVel, target, 5, 0, 0.016)
	if math.IsNaN(tr.Direction()) || math.Abs(tr.Direction()-math.Pi/4) > epsilon {
		t.Errorf("direction = %v, want π/4", tr.Direction())
	}
	if angVel != 0 {
		t.Errorf("angular velocity = %v, want 0 for instant facing", angVel)
	}
}

func TestAnticipatedFacingLeads(t *testing.T) {
	tr := vmath.NewTransform(vmath.Vec{}, 0)
	target := Target{Position: vmath.Vec{X: 100}, Velocity: vmath.Vec{Y: 10}}
	var angVel float64
	AnticipatedFacing(&tr, &angVel, target, 20, 0, 0)
	if tr.Direction() <= 0 {
		t.Errorf("direction = %v, want a lead above the current bearing", tr.Direction())
	}

	smooth := vmath.NewTransform(vmath.Vec{}, 0)
	AnticipatedFacing(&smooth, &angVel, target, 20, 0.1, 0.01)
	if angVel != 0.1 {
		t.Errorf("smooth angular velocity = %v, want 0.1", angVel)
	}
}

func TestBearing(t *testing.T) {
	if b := Bearing(vmath.Vec{}, vmath.Vec{Y: -2}); math.Abs(b+math.Pi/2) > epsilon {
		t.Errorf("Bearing = %v, want -π/2", b)
	}
	if b := Bearing(vmath.Vec{X: 1}, vmath.Vec{X: 1}); b != 0 {
		t.Errorf("coincident Bearing = %v, want 0", b)
	}
}

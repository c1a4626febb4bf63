package system

import (
	"time"

	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	coresys "github.com/orbitfall/engine/internal/core/system"
	"github.com/orbitfall/engine/internal/vmath"
)

// MotionRoutine integrates velocity and angular velocity, then applies each
// link's edge policy against the field rectangle [0,w]x[0,h].
type MotionRoutine struct {
	coresys.Requirement
	universe *coresys.Universe
	field    vmath.Vec
	maxStep  float64
}

// NewMotionRoutine caps each integration step at maxStep; zero uses 10s.
func NewMotionRoutine(u *coresys.Universe, field vmath.Vec, maxStep time.Duration) *MotionRoutine {
	step := maxStep.Seconds()
	if step <= 0 {
		step = defaultMaxStep
	}
	return &MotionRoutine{
		Requirement: coresys.Requires(component.TransformKey, component.MotionKey),
		universe:    u,
		field:       field,
		maxStep:     step,
	}
}

func (s *MotionRoutine) OnStepLinks(t coresys.Tick, links []*ecs.Link) {
	dt := clampStep(t.Elapsed, s.maxStep)
	for _, l := range links {
		if !l.Live() {
			continue
		}
		tr, mo := ecs.Get2(l, component.TransformKey, component.MotionKey)

		tr.Offset(mo.Velocity.Scale(dt))
		if mo.AngularVelocity != 0 {
			tr.Rotate(mo.AngularVelocity * dt)
		}

		switch mo.Edge {
		case component.RemoveOnEdge:
			if s.outside(tr.Position) {
				s.universe.Remove(l)
			}
		case component.BounceOnEdge:
			s.bounce(tr, mo)
		case component.IgnoreEdges:
		}
	}
}

func (s *MotionRoutine) outside(p vmath.Vec) bool {
	return p.X < 0 || p.X > s.field.X || p.Y < 0 || p.Y > s.field.Y
}

func (s *MotionRoutine) bounce(tr *vmath.Transform, mo *component.Motion) {
	p := tr.Position
	switch {
	case p.X < 0:
		p.X = 0
		mo.Velocity.X = -mo.Velocity.X * mo.Restitution
	case p.X > s.field.X:
		p.X = s.field.X
		mo.Velocity.X = -mo.Velocity.X * mo.Restitution
	}
	switch {
	case p.Y < 0:
		p.Y = 0
		mo.Velocity.Y = -mo.Velocity.Y * mo.Restitution
	case p.Y > s.field.Y:
		p.Y = s.field.Y
		mo.Velocity.Y = -mo.Velocity.Y * mo.Restitution
	}
	tr.Position = p
}

package system

import (
	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	coresys "github.com/orbitfall/engine/internal/core/system"
	"github.com/orbitfall/engine/internal/core/tag"
	"github.com/orbitfall/engine/internal/steering"
	"github.com/orbitfall/engine/internal/vmath"
)

// FacingRoutine turns links with a Facing trait toward their target. A link
// without a target picks the nearest collider whose tag matches
// Facing.TargetTag and keeps it until the target is removed.
type FacingRoutine struct {
	facers     *ecs.LinkSet
	candidates *ecs.LinkSet
}

func NewFacingRoutine() *FacingRoutine {
	return &FacingRoutine{
		facers:     ecs.NewLinkSet(),
		candidates: ecs.NewLinkSet(),
	}
}

func (s *FacingRoutine) Test(l *ecs.Link) bool {
	return l.Has(component.TransformKey) && l.HasAny(component.FacingKey, component.ColliderKey)
}

func (s *FacingRoutine) OnAdd(l *ecs.Link) {
	if l.Has(component.FacingKey) {
		s.facers.Add(l)
	}
	if l.Has(component.ColliderKey) {
		s.candidates.Add(l)
	}
}

func (s *FacingRoutine) OnRemove(l *ecs.Link) {
	s.facers.Remove(l)
	if !s.candidates.Remove(l) {
		return
	}
	for _, f := range s.facers.Snapshot() {
		if fc := ecs.Must(f, component.FacingKey); fc.Target == l {
			fc.Target = nil
		}
	}
}

func (s *FacingRoutine) OnStep(t coresys.Tick) {
	for _, l := range s.facers.Snapshot() {
		if !l.Live() {
			continue
		}
		fc, tr := ecs.Get2(l, component.FacingKey, component.TransformKey)
		mo, hasMotion := ecs.Get(l, component.MotionKey)

		if fc.Target == nil {
			fc.Target = s.nearest(l, tr.Position, fc.TargetTag)
		}
		if fc.Target == nil {
			if hasMotion {
				mo.AngularVelocity = 0
			}
			continue
		}

		target := steering.Target{Position: ecs.Must(fc.Target, component.TransformKey).Position}
		if tm, ok := ecs.Get(fc.Target, component.MotionKey); ok {
			target.Velocity = tm.Velocity
		}

		// without Motion nothing integrates the turn, so apply it here
		var spin float64
		angVel := &spin
		if hasMotion {
			angVel = &mo.AngularVelocity
		}

		switch fc.Mode {
		case component.FaceInstant:
			steering.InstantFacing(tr, target.Position)
			*angVel = 0
		case component.FaceSmooth:
			steering.SmoothFacing(tr, angVel, target.Position, fc.SteeringSpeed, t.Elapsed)
		case component.FaceAnticipated:
			steering.AnticipatedFacing(tr, angVel, target, fc.ProjectileSpeed, fc.SteeringSpeed, t.Elapsed)
		}

		if !hasMotion && spin != 0 {
			tr.Rotate(spin * t.Elapsed)
		}
	}
}

func (s *FacingRoutine) nearest(self *ecs.Link, from vmath.Vec, want tag.Flags) *ecs.Link {
	if want == tag.None {
		return nil
	}
	var (
		best   *ecs.Link
		bestSq float64
	)
	for _, c := range s.candidates.Snapshot() {
		if c == self || !c.Live() {
			continue
		}
		col, tr := ecs.Get2(c, component.ColliderKey, component.TransformKey)
		if !tag.Matches(col.Tag, want) {
			continue
		}
		d := from.DistanceSq(tr.Position)
		if best == nil || d < bestSq {
			best, bestSq = c, d
		}
	}
	return best
}

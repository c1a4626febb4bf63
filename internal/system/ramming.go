package system

import (
	"github.com/orbitfall/engine/internal/collision"
	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	"github.com/orbitfall/engine/internal/core/event"
	coresys "github.com/orbitfall/engine/internal/core/system"
	"github.com/orbitfall/engine/internal/core/tag"
	"github.com/orbitfall/engine/internal/vmath"
)

// RammingDamageRoutine resolves contacts found by CollisionDetectionRoutine.
// Both directions of damage are computed before either is applied, so the
// order of a pair never matters. When any damage was exchanged each side
// reacts according to its collider: remove itself, bounce itself, bounce
// the other side, or nothing.
type RammingDamageRoutine struct {
	universe   *coresys.Universe
	registry   *collision.Registry
	bus        *event.Bus
	separation float64
}

func NewRammingDamageRoutine(u *coresys.Universe, reg *collision.Registry, bus *event.Bus, separation float64) *RammingDamageRoutine {
	return &RammingDamageRoutine{
		universe:   u,
		registry:   reg,
		bus:        bus,
		separation: separation,
	}
}

func (s *RammingDamageRoutine) Test(l *ecs.Link) bool {
	return l.HasAll(component.TransformKey, component.ColliderKey) &&
		l.HasAny(component.DamageKey, component.HitPointsKey)
}

func (s *RammingDamageRoutine) OnStepLinks(_ coresys.Tick, links []*ecs.Link) {
	for i, a := range links {
		for _, b := range links[i+1:] {
			if !a.Live() {
				break
			}
			if !b.Live() || !s.registry.Colliding(a, b) {
				continue
			}
			s.resolve(a, b)
		}
	}
}

// damage returns what src deals to dst, and whether dst can take it.
func damage(src, dst *ecs.Link) (float64, bool) {
	d, ok := ecs.Get(src, component.DamageKey)
	if !ok || d.Targets == tag.None {
		return 0, false
	}
	if !dst.Has(component.HitPointsKey) {
		return 0, false
	}
	if !tag.Matches(ecs.Must(dst, component.ColliderKey).Tag, d.Targets) {
		return 0, false
	}
	return d.Amount, true
}

func (s *RammingDamageRoutine) resolve(a, b *ecs.Link) {
	toA, hitA := damage(b, a)
	toB, hitB := damage(a, b)
	if !hitA && !hitB {
		return
	}

	if hitA {
		ecs.Must(a, component.HitPointsKey).Add(-toA)
		event.Emit(s.bus, event.Damaged{Victim: a, Source: b, Amount: toA})
	}
	if hitB {
		ecs.Must(b, component.HitPointsKey).Add(-toB)
		event.Emit(s.bus, event.Damaged{Victim: b, Source: a, Amount: toB})
	}

	ca, cb := ecs.Must(a, component.ColliderKey), ecs.Must(b, component.ColliderKey)
	ta, tb := ecs.Must(a, component.TransformKey), ecs.Must(b, component.TransformKey)
	ma, _ := ecs.Get(a, component.MotionKey)
	mb, _ := ecs.Get(b, component.MotionKey)
	speed := (speedOf(ma) + speedOf(mb)) / 2

	removeA := ca.Reaction == component.RemoveSelf
	removeB := cb.Reaction == component.RemoveSelf
	moveA := !removeA && (ca.Reaction == component.BounceSelf || cb.Reaction == component.BounceOther)
	moveB := !removeB && (cb.Reaction == component.BounceSelf || ca.Reaction == component.BounceOther)

	if removeA {
		s.universe.Remove(a)
	}
	if removeB {
		s.universe.Remove(b)
	}
	moveA = moveA && a.Live()
	moveB = moveB && b.Live()
	if !moveA && !moveB {
		return
	}

	axis := tb.Position.Sub(ta.Position)
	dist := axis.Length()
	if dist == 0 {
		axis = vmath.Vec{X: 1}
	} else {
		axis = axis.Scale(1 / dist)
	}
	overlap := ca.Radius + cb.Radius - dist
	if overlap < 0 {
		overlap = 0
	}
	movers := 0
	for _, m := range []bool{moveA, moveB} {
		if m {
			movers++
		}
	}
	push := overlap * s.separation / float64(movers)

	if moveA {
		ta.Offset(axis.Scale(-push))
		if ma != nil {
			ma.Velocity = axis.Scale(-speed)
		}
	}
	if moveB {
		tb.Offset(axis.Scale(push))
		if mb != nil {
			mb.Velocity = axis.Scale(speed)
		}
	}
}

func speedOf(mo *component.Motion) float64 {
	if mo == nil {
		return 0
	}
	return mo.Velocity.Length()
}

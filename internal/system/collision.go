package system

import (
	"github.com/orbitfall/engine/internal/collision"
	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	"github.com/orbitfall/engine/internal/core/event"
	coresys "github.com/orbitfall/engine/internal/core/system"
	"github.com/orbitfall/engine/internal/vmath"
)

// CollisionDetectionRoutine rebuilds the collision registry every tick from
// the circle colliders of live links. Pairs are tested all against all.
type CollisionDetectionRoutine struct {
	coresys.Requirement
	registry *collision.Registry
	bus      *event.Bus
}

func NewCollisionDetectionRoutine(reg *collision.Registry, bus *event.Bus) *CollisionDetectionRoutine {
	return &CollisionDetectionRoutine{
		Requirement: coresys.Requires(component.TransformKey, component.ColliderKey),
		registry:    reg,
		bus:         bus,
	}
}

// Registry returns the registry this routine fills.
func (s *CollisionDetectionRoutine) Registry() *collision.Registry {
	return s.registry
}

type circle struct {
	link   *ecs.Link
	center vmath.Vec
	radius float64
}

func (s *CollisionDetectionRoutine) OnStepLinks(_ coresys.Tick, links []*ecs.Link) {
	s.registry.Clear()

	circles := make([]circle, 0, len(links))
	for _, l := range links {
		if !l.Live() {
			continue
		}
		tr, col := ecs.Get2(l, component.TransformKey, component.ColliderKey)
		circles = append(circles, circle{link: l, center: tr.Position, radius: col.Radius})
	}

	for i := range circles {
		a := &circles[i]
		for j := i + 1; j < len(circles); j++ {
			b := &circles[j]
			if collision.Overlaps(a.center, a.radius, b.center, b.radius) {
				s.registry.Add(a.link, b.link)
			}
		}
	}

	for _, p := range s.registry.Started() {
		event.Emit(s.bus, event.ContactStarted{A: p.A, B: p.B})
	}
	for _, p := range s.registry.Ended() {
		event.Emit(s.bus, event.ContactEnded{A: p.A, B: p.B})
	}
}

func (s *CollisionDetectionRoutine) OnRemove(l *ecs.Link) {
	s.registry.Forget(l)
}

package system

import (
	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	coresys "github.com/orbitfall/engine/internal/core/system"
)

// LifetimeRoutine removes links whose lifetime ran out.
type LifetimeRoutine struct {
	coresys.Requirement
	universe *coresys.Universe
}

func NewLifetimeRoutine(u *coresys.Universe) *LifetimeRoutine {
	return &LifetimeRoutine{
		Requirement: coresys.Requires(component.LifetimeKey),
		universe:    u,
	}
}

func (s *LifetimeRoutine) OnStepLinks(t coresys.Tick, links []*ecs.Link) {
	for _, l := range links {
		if !l.Live() {
			continue
		}
		lt := ecs.Must(l, component.LifetimeKey)
		lt.Remaining -= t.Elapsed
		if lt.Remaining <= 0 {
			s.universe.Remove(l)
		}
	}
}

package system

import (
	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	coresys "github.com/orbitfall/engine/internal/core/system"
)

// PropulsionRoutine keeps self-propelled links moving along their facing
// direction at cruise speed. Homing missiles and drones combine it with
// FacingRoutine.
type PropulsionRoutine struct {
	coresys.Requirement
}

func NewPropulsionRoutine() *PropulsionRoutine {
	return &PropulsionRoutine{
		Requirement: coresys.Requires(component.PropulsionKey, component.TransformKey, component.MotionKey),
	}
}

func (s *PropulsionRoutine) OnStepLinks(_ coresys.Tick, links []*ecs.Link) {
	for _, l := range links {
		if !l.Live() {
			continue
		}
		p, tr, mo := ecs.Get3(l, component.PropulsionKey, component.TransformKey, component.MotionKey)
		mo.Velocity = tr.Heading().Scale(p.Speed)
	}
}

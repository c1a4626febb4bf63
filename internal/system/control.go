package system

import (
	"math"

	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	coresys "github.com/orbitfall/engine/internal/core/system"
	"github.com/orbitfall/engine/internal/input"
	"github.com/orbitfall/engine/internal/steering"
)

// ControlRoutine flies piloted links from player input: turn, thrust, brake
// and the weapon trigger.
type ControlRoutine struct {
	coresys.Requirement
	in input.State
}

func NewControlRoutine(in input.State) *ControlRoutine {
	return &ControlRoutine{
		Requirement: coresys.Requires(component.PilotKey, component.TransformKey, component.MotionKey),
		in:          in,
	}
}

func (s *ControlRoutine) OnStepLinks(t coresys.Tick, links []*ecs.Link) {
	for _, l := range links {
		if !l.Live() {
			continue
		}
		p, tr, mo := ecs.Get3(l, component.PilotKey, component.TransformKey, component.MotionKey)

		if p.AimAtPointer {
			steering.InstantFacing(tr, s.in.Pointer())
			mo.AngularVelocity = 0
		} else {
			turn := 0.0
			if s.in.IsPressed(input.KeyLeft) {
				turn--
			}
			if s.in.IsPressed(input.KeyRight) {
				turn++
			}
			mo.AngularVelocity = turn * p.TurnSpeed
		}

		if s.in.IsPressed(input.KeyThrust) {
			mo.Velocity = mo.Velocity.Add(tr.Heading().Scale(p.Thrust * t.Elapsed))
		}
		if s.in.IsPressed(input.KeyBrake) {
			speed := math.Max(0, mo.Velocity.Length()-p.Thrust*t.Elapsed)
			mo.Velocity = mo.Velocity.WithLength(speed)
		}
		if p.MaxSpeed > 0 && mo.Velocity.Length() > p.MaxSpeed {
			mo.Velocity = mo.Velocity.WithLength(p.MaxSpeed)
		}

		if w, ok := ecs.Get(l, component.WeaponKey); ok {
			w.Trigger = s.in.IsPressed(input.KeyFire)
		}
	}
}

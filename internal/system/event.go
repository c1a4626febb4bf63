package system

import (
	"github.com/orbitfall/engine/internal/core/ecs"
	"github.com/orbitfall/engine/internal/core/event"
	coresys "github.com/orbitfall/engine/internal/core/system"
)

// EventRoutine delivers last tick's events at the start of this one and
// reports every link entering or leaving the universe. Register it first.
type EventRoutine struct {
	coresys.MatchFunc
	bus *event.Bus
}

func NewEventRoutine(bus *event.Bus) *EventRoutine {
	return &EventRoutine{
		MatchFunc: func(*ecs.Link) bool { return true },
		bus:       bus,
	}
}

func (s *EventRoutine) OnAdd(l *ecs.Link) {
	event.Emit(s.bus, event.LinkAdded{Link: l})
}

func (s *EventRoutine) OnRemove(l *ecs.Link) {
	event.Emit(s.bus, event.LinkRemoved{Link: l})
}

func (s *EventRoutine) OnStep(coresys.Tick) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}

package system

import (
	coresys "github.com/orbitfall/engine/internal/core/system"
	"github.com/orbitfall/engine/internal/input"
)

// InputRoutine latches host input so edge queries cover exactly this tick.
type InputRoutine struct {
	buf *input.Buffer
}

func NewInputRoutine(buf *input.Buffer) *InputRoutine {
	return &InputRoutine{buf: buf}
}

func (s *InputRoutine) OnStep(coresys.Tick) {
	s.buf.Latch()
}

// PauseRoutine toggles the universe time scale between zero and its running
// value on the pause key. The change applies from the next tick.
type PauseRoutine struct {
	universe *coresys.Universe
	in       input.State
	resume   float64
}

func NewPauseRoutine(u *coresys.Universe, in input.State) *PauseRoutine {
	return &PauseRoutine{universe: u, in: in}
}

// Paused reports whether the time scale is held at zero.
func (s *PauseRoutine) Paused() bool {
	return s.universe.Clock().TimeScale == 0
}

func (s *PauseRoutine) OnStep(coresys.Tick) {
	if !s.in.WasPressed(input.KeyPause) {
		return
	}
	if s.Paused() {
		s.universe.SetTimeScale(s.resume)
		return
	}
	s.resume = s.universe.Clock().TimeScale
	s.universe.SetTimeScale(0)
}

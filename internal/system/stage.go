package system

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	"github.com/orbitfall/engine/internal/core/event"
	coresys "github.com/orbitfall/engine/internal/core/system"
	"github.com/orbitfall/engine/internal/scripting"
)

// StagePhase is the arena progression state.
type StagePhase uint8

const (
	StageWaiting StagePhase = iota // counting down the next stage's delay
	StageActive                    // hostiles of the current stage are alive
	StageDone                      // every stage cleared
)

func (p StagePhase) String() string {
	switch p {
	case StageWaiting:
		return "waiting"
	case StageActive:
		return "active"
	case StageDone:
		return "done"
	}
	return fmt.Sprintf("StagePhase(%d)", p)
}

// StageRoutine runs the arena: it spawns each stage after its delay and
// moves on once no hostile link is left.
type StageRoutine struct {
	coresys.Requirement
	universe *coresys.Universe
	spawner  Spawner
	bus      *event.Bus
	log      *zap.Logger

	stages   []scripting.Stage
	index    int
	phase    StagePhase
	wait     float64
	hostiles *ecs.LinkSet
}

func NewStageRoutine(u *coresys.Universe, spawner Spawner, stages []scripting.Stage, bus *event.Bus, log *zap.Logger) *StageRoutine {
	s := &StageRoutine{
		Requirement: coresys.Requires(component.Hostile),
		universe:    u,
		spawner:     spawner,
		bus:         bus,
		log:         log,
		stages:      stages,
		hostiles:    ecs.NewLinkSet(),
	}
	if len(stages) == 0 {
		s.phase = StageDone
	} else {
		s.wait = stages[0].Delay
	}
	return s
}

func (s *StageRoutine) Phase() StagePhase { return s.phase }
func (s *StageRoutine) Index() int        { return s.index }
func (s *StageRoutine) Hostiles() int     { return s.hostiles.Len() }

func (s *StageRoutine) OnAdd(l *ecs.Link)    { s.hostiles.Add(l) }
func (s *StageRoutine) OnRemove(l *ecs.Link) { s.hostiles.Remove(l) }

func (s *StageRoutine) OnStep(t coresys.Tick) {
	switch s.phase {
	case StageWaiting:
		s.wait -= t.Elapsed
		if s.wait <= 0 {
			s.start()
		}
	case StageActive:
		if s.hostiles.Len() > 0 {
			return
		}
		st := s.stages[s.index]
		s.log.Info("stage cleared", zap.Int("stage", s.index), zap.String("name", st.Name))
		event.Emit(s.bus, event.StageCleared{Index: s.index, Name: st.Name})

		s.index++
		if s.index >= len(s.stages) {
			s.phase = StageDone
			s.log.Info("arena cleared", zap.Int("stages", len(s.stages)))
			event.Emit(s.bus, event.ArenaCleared{Stages: len(s.stages)})
			return
		}
		s.phase = StageWaiting
		s.wait = s.stages[s.index].Delay
		if s.wait <= 0 {
			s.start()
		}
	case StageDone:
	}
}

func (s *StageRoutine) start() {
	st := s.stages[s.index]
	s.phase = StageActive
	s.log.Info("stage started",
		zap.Int("stage", s.index),
		zap.String("name", st.Name),
		zap.Int("spawns", len(st.Spawns)))
	event.Emit(s.bus, event.StageStarted{Index: s.index, Name: st.Name})

	for _, sp := range st.Spawns {
		l, err := s.spawner.Spawn(sp.Archetype, sp.At, sp.Direction)
		if err != nil {
			s.log.Error("stage spawn failed",
				zap.String("stage", st.Name),
				zap.String("archetype", sp.Archetype),
				zap.Error(err))
			panic(err)
		}
		s.universe.Add(l)
	}
}

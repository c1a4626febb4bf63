package system

import (
	"go.uber.org/zap"

	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	"github.com/orbitfall/engine/internal/core/event"
	coresys "github.com/orbitfall/engine/internal/core/system"
	"github.com/orbitfall/engine/internal/vmath"
)

// LifeAndDeathRoutine removes links whose hit points are depleted and
// reports them with their score value.
type LifeAndDeathRoutine struct {
	coresys.Requirement
	universe *coresys.Universe
	bus      *event.Bus
	log      *zap.Logger
}

func NewLifeAndDeathRoutine(u *coresys.Universe, bus *event.Bus, log *zap.Logger) *LifeAndDeathRoutine {
	return &LifeAndDeathRoutine{
		Requirement: coresys.Requires(component.HitPointsKey),
		universe:    u,
		bus:         bus,
		log:         log,
	}
}

func (s *LifeAndDeathRoutine) OnStepLinks(_ coresys.Tick, links []*ecs.Link) {
	for _, l := range links {
		if !l.Live() || !ecs.Must(l, component.HitPointsKey).IsEmpty() {
			continue
		}
		points := 0
		if sc, ok := ecs.Get(l, component.ScoreKey); ok {
			points = sc.Points
		}
		if ce := s.log.Check(zap.DebugLevel, "link destroyed"); ce != nil {
			ce.Write(zap.Stringer("link", l), zap.Int("points", points))
		}
		event.Emit(s.bus, event.Destroyed{Link: l, Points: points})
		s.universe.Remove(l)
	}
}

// DeathEffectsRoutine bursts explosive links into debris when they leave
// the universe, whatever removed them.
type DeathEffectsRoutine struct {
	coresys.Requirement
	universe *coresys.Universe
	spawner  Spawner
	rng      *vmath.Random
	log      *zap.Logger
}

func NewDeathEffectsRoutine(u *coresys.Universe, spawner Spawner, rng *vmath.Random, log *zap.Logger) *DeathEffectsRoutine {
	return &DeathEffectsRoutine{
		Requirement: coresys.Requires(component.ExplosiveKey, component.TransformKey),
		universe:    u,
		spawner:     spawner,
		rng:         rng,
		log:         log,
	}
}

func (s *DeathEffectsRoutine) OnRemove(l *ecs.Link) {
	ex, tr := ecs.Get2(l, component.ExplosiveKey, component.TransformKey)
	if ex.Count <= 0 {
		return
	}
	base := s.rng.Angle()
	step := vmath.Tau / float64(ex.Count)
	for i := range ex.Count {
		dir := base + step*float64(i) + s.rng.Range(-step/4, step/4)
		shard, err := s.spawner.Spawn(ex.Archetype, tr.Position, dir)
		if err != nil {
			s.log.Error("debris spawn failed",
				zap.Stringer("link", l),
				zap.String("archetype", ex.Archetype),
				zap.Error(err))
			panic(err)
		}
		if mo, ok := ecs.Get(shard, component.MotionKey); ok && ex.Speed > 0 {
			mo.Velocity = vmath.Polar(dir, ex.Speed)
		}
		s.universe.Add(shard)
	}
}

package system

import (
	"go.uber.org/zap"

	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	"github.com/orbitfall/engine/internal/core/event"
	coresys "github.com/orbitfall/engine/internal/core/system"
	"github.com/orbitfall/engine/internal/vmath"
)

// WeaponRoutine counts cooldowns down and spawns projectiles. A weapon fires
// when its trigger is held, or on auto fire once the link's facing has a
// target. Links with auto fire and no Facing fire continuously.
type WeaponRoutine struct {
	coresys.Requirement
	universe *coresys.Universe
	spawner  Spawner
	bus      *event.Bus
	log      *zap.Logger
}

func NewWeaponRoutine(u *coresys.Universe, spawner Spawner, bus *event.Bus, log *zap.Logger) *WeaponRoutine {
	return &WeaponRoutine{
		Requirement: coresys.Requires(component.WeaponKey, component.TransformKey),
		universe:    u,
		spawner:     spawner,
		bus:         bus,
		log:         log,
	}
}

func (s *WeaponRoutine) OnStepLinks(t coresys.Tick, links []*ecs.Link) {
	for _, l := range links {
		if !l.Live() {
			continue
		}
		w, tr := ecs.Get2(l, component.WeaponKey, component.TransformKey)
		if w.Remaining > 0 {
			w.Remaining -= t.Elapsed
		}
		if w.Remaining > 0 {
			continue
		}
		if !w.Trigger && !(w.AutoFire && hasTarget(l)) {
			continue
		}
		s.fire(l, w, tr)
	}
}

func (s *WeaponRoutine) fire(shooter *ecs.Link, w *component.Weapon, tr *vmath.Transform) {
	p, err := s.spawner.Spawn(w.Projectile, tr.Ahead(w.Offset), tr.Direction())
	if err != nil {
		// archetypes are validated at load, so this is a broken content table
		s.log.Error("projectile spawn failed",
			zap.Stringer("shooter", shooter),
			zap.String("projectile", w.Projectile),
			zap.Error(err))
		panic(err)
	}

	if mo, ok := ecs.Get(p, component.MotionKey); ok && w.MuzzleSpeed > 0 {
		mo.Velocity = tr.Heading().Scale(w.MuzzleSpeed)
	}
	// homing projectiles start on the shooter's target
	if pf, ok := ecs.Get(p, component.FacingKey); ok {
		if sf, ok := ecs.Get(shooter, component.FacingKey); ok && sf.Target != nil && sf.Target.Live() {
			pf.Target = sf.Target
		}
	}

	s.universe.Add(p)
	w.Remaining = w.Cooldown
	event.Emit(s.bus, event.WeaponFired{Shooter: shooter, Projectile: p})
}

func hasTarget(l *ecs.Link) bool {
	fc, ok := ecs.Get(l, component.FacingKey)
	if !ok {
		return true
	}
	return fc.Target != nil
}

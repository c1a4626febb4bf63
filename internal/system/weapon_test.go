package system

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	"github.com/orbitfall/engine/internal/core/event"
	"github.com/orbitfall/engine/internal/vmath"
)

func shooter(w component.Weapon, extra ...ecs.Trait) *ecs.Link {
	traits := []ecs.Trait{
		component.TransformKey.Of(vmath.NewTransform(vmath.Vec{X: 10, Y: 10}, 0)),
		component.WeaponKey.Of(w),
	}
	return ecs.NewLink(append(traits, extra...)...)
}

func TestWeaponAutoFireCooldown(t *testing.T) {
	u := newUniverse(t)
	bus := event.NewBus()
	spawns := &spawnLog{}
	u.Register(NewWeaponRoutine(u, spawns, bus, zaptest.NewLogger(t)))

	s := shooter(component.Weapon{Projectile: "bolt", Cooldown: 1, MuzzleSpeed: 50, Offset: 2, AutoFire: true})
	u.Add(s)

	u.Step(0)
	if len(spawns.names) != 1 {
		t.Fatalf("spawns after first tick = %d, want 1", len(spawns.names))
	}
	if spawns.names[0] != "bolt" || spawns.at[0] != (vmath.Vec{X: 12, Y: 10}) {
		t.Fatalf("spawned %q at %v", spawns.names[0], spawns.at[0])
	}

	bus.SwapBuffers()
	fired := event.Drain[event.WeaponFired](bus)
	if len(fired) != 1 || fired[0].Shooter != s {
		t.Fatalf("fired events = %+v", fired)
	}
	if got := ecs.Must(fired[0].Projectile, component.MotionKey).Velocity; !nearVec(got, vmath.Vec{X: 50}) {
		t.Fatalf("projectile velocity = %v, want (50,0)", got)
	}
	if !u.Contains(fired[0].Projectile) {
		t.Fatal("projectile should be in the universe")
	}

	u.Advance(500 * time.Millisecond)
	if len(spawns.names) != 1 {
		t.Fatal("fired during cooldown")
	}
	u.Advance(500 * time.Millisecond)
	if len(spawns.names) != 2 {
		t.Fatalf("spawns after cooldown = %d, want 2", len(spawns.names))
	}
	if u.Len() != 3 {
		t.Fatalf("universe holds %d links, want 3", u.Len())
	}
}

func TestWeaponHoldsFire(t *testing.T) {
	tests := []struct {
		name   string
		weapon component.Weapon
		extra  []ecs.Trait
	}{
		{"no_trigger", component.Weapon{Projectile: "bolt", Cooldown: 1}, nil},
		{
			"auto_fire_without_target",
			component.Weapon{Projectile: "bolt", Cooldown: 1, AutoFire: true},
			[]ecs.Trait{component.FacingKey.Of(component.Facing{})},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newUniverse(t)
			spawns := &spawnLog{}
			u.Register(NewWeaponRoutine(u, spawns, event.NewBus(), zaptest.NewLogger(t)))
			u.Add(shooter(tt.weapon, tt.extra...))

			u.Step(0)
			u.Advance(frame)

			if len(spawns.names) != 0 {
				t.Fatalf("fired %d times", len(spawns.names))
			}
		})
	}
}

func TestWeaponTrigger(t *testing.T) {
	u := newUniverse(t)
	spawns := &spawnLog{}
	u.Register(NewWeaponRoutine(u, spawns, event.NewBus(), zaptest.NewLogger(t)))
	s := shooter(component.Weapon{Projectile: "bolt", Cooldown: 0.25})
	u.Add(s)

	ecs.Must(s, component.WeaponKey).Trigger = true
	u.Step(0)
	ecs.Must(s, component.WeaponKey).Trigger = false
	u.Advance(time.Second)

	if len(spawns.names) != 1 {
		t.Fatalf("fired %d times, want 1", len(spawns.names))
	}
}

func TestWeaponSpawnFailurePanics(t *testing.T) {
	u := newUniverse(t)
	u.Register(NewWeaponRoutine(u, failingSpawner(), event.NewBus(), zaptest.NewLogger(t)))
	u.Add(shooter(component.Weapon{Projectile: "missing", Cooldown: 1, AutoFire: true}))

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, errSpawn) {
			t.Fatalf("recovered %v, want spawn error", r)
		}
	}()
	u.Step(0)
}

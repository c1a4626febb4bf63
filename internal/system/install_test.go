package system

import (
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/text/language"

	"github.com/orbitfall/engine/internal/content"
	"github.com/orbitfall/engine/internal/core/event"
	"github.com/orbitfall/engine/internal/data"
	"github.com/orbitfall/engine/internal/input"
	"github.com/orbitfall/engine/internal/render"
	"github.com/orbitfall/engine/internal/scripting"
	"github.com/orbitfall/engine/internal/vmath"
)

const duelArchetypes = `
archetypes:
  - name: fighter
    radius: 2
    hp: 30
    tags: [player, ship]
    reaction: bounce
    player: true
    motion: { edge: bounce }
    pilot: { thrust: 40, turn_speed: 3, max_speed: 60 }
    weapon: { projectile: bolt, cooldown: 0.1, muzzle_speed: 100, offset: 2 }
    visual: { glyph: "A" }
  - name: bolt
    radius: 1
    damage: 5
    tags: [player, bullet]
    targets: [hostile]
    reaction: remove
    lifetime: 2
    motion: { edge: remove }
    visual: { glyph: "." }
  - name: drone
    radius: 3
    hp: 2
    tags: [hostile, ship]
    hostile: true
    score: 100
    explode: { archetype: shard, count: 3, speed: 20 }
    visual: { glyph: "D" }
  - name: shard
    lifetime: 0.2
    motion: { edge: ignore }
    visual: { glyph: "*" }
`

func duelFactory(t *testing.T) *content.Factory {
	t.Helper()
	tbl, err := data.ParseArchetypes([]byte(duelArchetypes))
	if err != nil {
		t.Fatal(err)
	}
	factory, err := content.NewFactory(tbl, content.Defaults{Restitution: 0.5}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	return factory
}

func duelStages() []scripting.Stage {
	return []scripting.Stage{{Name: "duel", Spawns: []scripting.Spawn{{Archetype: "drone", At: vmath.Vec{X: 80, Y: 24}}}}}
}

func TestInstallDuel(t *testing.T) {
	log := zaptest.NewLogger(t)
	factory := duelFactory(t)

	u := newUniverse(t)
	bus := event.NewBus()
	buf := input.NewBuffer()
	rec := render.NewRecorder(4)
	r := Install(Deps{
		Universe:   u,
		Bus:        bus,
		Spawner:    factory,
		Random:     vmath.NewRandom(3),
		Stages:     duelStages(),
		Input:      buf,
		Sink:       rec,
		Field:      vmath.Vec{X: 160, Y: 48},
		Separation: 1,
		Language:   language.English,
		Log:        log,
	})

	u.Add(factory.MustSpawn("fighter", vmath.Vec{X: 50, Y: 24}, 0))
	buf.Press(input.KeyFire)

	u.Step(0)
	for range 60 {
		u.Advance(frame)
	}

	if r.Stage.Phase() != StageDone {
		t.Fatalf("stage phase = %v, want done", r.Stage.Phase())
	}
	hud := r.HUD.HUD()
	if hud.Score != "100" || hud.Status != "ARENA CLEARED" || hud.Stage != "duel" {
		t.Fatalf("hud = %+v", hud)
	}
	if hud.HP != "30/30" {
		t.Fatalf("player hp = %q", hud.HP)
	}
	if last, ok := rec.Last(); !ok || len(last.Sprites) == 0 {
		t.Fatal("no frame rendered")
	}
	if len(rec.Frames()) != 4 {
		t.Fatalf("recorder kept %d frames, want 4", len(rec.Frames()))
	}
}

func TestInstallWithoutBus(t *testing.T) {
	factory := duelFactory(t)
	u := newUniverse(t)
	buf := input.NewBuffer()
	r := Install(Deps{
		Universe:   u,
		Spawner:    factory,
		Random:     vmath.NewRandom(3),
		Stages:     duelStages(),
		Input:      buf,
		Field:      vmath.Vec{X: 160, Y: 48},
		Separation: 1,
		Language:   language.English,
		Log:        zaptest.NewLogger(t),
	})

	u.Add(factory.MustSpawn("fighter", vmath.Vec{X: 50, Y: 24}, 0))
	buf.Press(input.KeyFire)

	u.Step(0)
	for range 60 {
		u.Advance(frame)
	}

	if r.Stage.Phase() != StageDone {
		t.Fatalf("stage phase = %v, want done", r.Stage.Phase())
	}
	// nothing reaches the HUD without a bus
	if r.HUD.Score() != 0 {
		t.Fatalf("score = %d, want 0", r.HUD.Score())
	}
}

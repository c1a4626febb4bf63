package system

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/orbitfall/engine/internal/collision"
	"github.com/orbitfall/engine/internal/core/event"
	coresys "github.com/orbitfall/engine/internal/core/system"
	"github.com/orbitfall/engine/internal/input"
	"github.com/orbitfall/engine/internal/render"
	"github.com/orbitfall/engine/internal/scripting"
	"github.com/orbitfall/engine/internal/vmath"
)

// Deps is what Install needs to build the routine set. Input and Sink are
// optional.
type Deps struct {
	Universe   *coresys.Universe
	Bus        *event.Bus
	Spawner    Spawner
	Random     *vmath.Random
	Stages     []scripting.Stage
	Input      *input.Buffer
	Sink       render.Sink
	Field      vmath.Vec
	MaxStep    time.Duration
	Separation float64
	Language   language.Tag
	Log        *zap.Logger
}

// Routines gives the host access to the stateful routines after Install.
type Routines struct {
	Collision *CollisionDetectionRoutine
	Stage     *StageRoutine
	HUD       *HUDRoutine
}

// Install registers every routine in dispatch order. Events are delivered
// first, so handlers see the previous tick's events; rendering is last.
func Install(d Deps) *Routines {
	u := d.Universe
	reg := collision.NewRegistry()
	r := &Routines{
		Collision: NewCollisionDetectionRoutine(reg, d.Bus),
		Stage:     NewStageRoutine(u, d.Spawner, d.Stages, d.Bus, d.Log),
		HUD:       NewHUDRoutine(d.Bus, d.Language),
	}

	u.Register(NewEventRoutine(d.Bus))
	if d.Input != nil {
		u.Register(NewInputRoutine(d.Input))
		u.Register(NewPauseRoutine(u, d.Input))
		u.Register(NewControlRoutine(d.Input))
	}
	u.Register(r.Stage)
	u.Register(NewFacingRoutine())
	u.Register(NewPropulsionRoutine())
	u.Register(NewWeaponRoutine(u, d.Spawner, d.Bus, d.Log))
	u.Register(NewMotionRoutine(u, d.Field, d.MaxStep))
	u.Register(r.Collision)
	u.Register(NewRammingDamageRoutine(u, reg, d.Bus, d.Separation))
	u.Register(NewLifetimeRoutine(u))
	u.Register(NewLifeAndDeathRoutine(u, d.Bus, d.Log))
	u.Register(NewDeathEffectsRoutine(u, d.Spawner, d.Random, d.Log))
	u.Register(r.HUD)
	if d.Sink != nil {
		u.Register(NewRenderRoutine(d.Sink, d.Field, r.HUD))
	}
	return r
}

// Package component holds the trait types attached to links and the keys
// routines look them up by. Traits are pure data; every mutation happens in
// routines.
package component

import (
	"github.com/orbitfall/engine/internal/core/ecs"
	"github.com/orbitfall/engine/internal/vmath"
)

var (
	TransformKey  = ecs.NewKey[vmath.Transform]("transform")
	MotionKey     = ecs.NewKey[Motion]("motion")
	ColliderKey   = ecs.NewKey[Collider]("collider")
	HitPointsKey  = ecs.NewKey[HitPoints]("hitpoints")
	DamageKey     = ecs.NewKey[Damage]("damage")
	FacingKey     = ecs.NewKey[Facing]("facing")
	PropulsionKey = ecs.NewKey[Propulsion]("propulsion")
	PilotKey      = ecs.NewKey[Pilot]("pilot")
	WeaponKey     = ecs.NewKey[Weapon]("weapon")
	LifetimeKey   = ecs.NewKey[Lifetime]("lifetime")
	ExplosiveKey  = ecs.NewKey[Explosive]("explosive")
	VisualKey     = ecs.NewKey[Visual]("visual")
	ScoreKey      = ecs.NewKey[Score]("score")
	ArchetypeKey  = ecs.NewKey[Archetype]("archetype")
)

// Markers.
var (
	Player  = ecs.NewMarker("player")
	Hostile = ecs.NewMarker("hostile")
)

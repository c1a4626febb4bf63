package event

import (
	"github.com/orbitfall/engine/internal/core/ecs"
)

// LinkAdded is emitted when a link enters the universe.
type LinkAdded struct {
	Link *ecs.Link
}

// LinkRemoved is emitted when a link leaves the universe.
type LinkRemoved struct {
	Link *ecs.Link
}

// Damaged reports hit points taken from Victim by Source in a ramming contact.
type Damaged struct {
	Victim *ecs.Link
	Source *ecs.Link
	Amount float64
}

// Destroyed reports a link whose hit points ran out.
type Destroyed struct {
	Link   *ecs.Link
	Points int
}

// ContactStarted and ContactEnded report collision pair transitions between
// two consecutive ticks.
type ContactStarted struct {
	A, B *ecs.Link
}

type ContactEnded struct {
	A, B *ecs.Link
}

// WeaponFired reports a projectile spawned by Shooter.
type WeaponFired struct {
	Shooter    *ecs.Link
	Projectile *ecs.Link
}

// StageStarted and StageCleared track arena progression.
type StageStarted struct {
	Index int
	Name  string
}

type StageCleared struct {
	Index int
	Name  string
}

// ArenaCleared is emitted once after the last stage is cleared.
type ArenaCleared struct {
	Stages int
}

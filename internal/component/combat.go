package component

import (
	"fmt"
	"strings"

	"github.com/orbitfall/engine/internal/core/ecs"
	"github.com/orbitfall/engine/internal/core/tag"
	"github.com/orbitfall/engine/internal/vmath"
)

// Reaction is what a collider does after a ramming contact that exchanged
// damage.
type Reaction uint8

const (
	Ignore Reaction = iota
	RemoveSelf
	BounceSelf
	BounceOther
)

var reactionNames = [...]string{"ignore", "remove", "bounce", "bounce_other"}

func (r Reaction) String() string {
	if int(r) < len(reactionNames) {
		return reactionNames[r]
	}
	return fmt.Sprintf("Reaction(%d)", r)
}

// ParseReaction reads a reaction name. Empty means ignore.
func ParseReaction(s string) (Reaction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Ignore, nil
	}
	for i, n := range reactionNames {
		if n == s {
			return Reaction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown reaction %q", s)
}

// Collider is a circle classified by tag.
type Collider struct {
	Radius   float64
	Tag      tag.Flags
	Reaction Reaction
}

// HitPoints is current over maximum health.
type HitPoints struct {
	vmath.Ratio
}

// NewHitPoints returns full health.
func NewHitPoints(max float64) HitPoints {
	return HitPoints{Ratio: vmath.Full(max)}
}

// Damage is dealt on contact to colliders whose tag matches Targets.
// Zero Targets deals no damage.
type Damage struct {
	Amount  float64
	Targets tag.Flags
}

// FacingMode selects the steering algorithm.
type FacingMode uint8

const (
	FaceInstant FacingMode = iota
	FaceSmooth
	FaceAnticipated
)

var facingNames = [...]string{"instant", "smooth", "anticipated"}

func (m FacingMode) String() string {
	if int(m) < len(facingNames) {
		return facingNames[m]
	}
	return fmt.Sprintf("FacingMode(%d)", m)
}

// ParseFacingMode reads a mode name. Empty means instant.
func ParseFacingMode(s string) (FacingMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FaceInstant, nil
	}
	for i, n := range facingNames {
		if n == s {
			return FacingMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown facing mode %q", s)
}

// Facing turns the link toward the nearest collider matching TargetTag.
// Target is owned by the facing routine and cleared when the target leaves.
type Facing struct {
	Mode            FacingMode
	SteeringSpeed   float64 // radians per second; smooth and anticipated
	ProjectileSpeed float64 // anticipated only
	TargetTag       tag.Flags
	Target          *ecs.Link
}

// Weapon spawns Projectile archetypes every Cooldown seconds while triggered.
type Weapon struct {
	Projectile  string
	Cooldown    float64
	Remaining   float64
	MuzzleSpeed float64
	Offset      float64 // spawn distance ahead of the shooter
	AutoFire    bool
	Trigger     bool
}

// Explosive spawns Count links of Archetype, spread evenly, when the link is
// removed.
type Explosive struct {
	Archetype string
	Count     int
	Speed     float64
}

// Score is awarded when the link is destroyed.
type Score struct {
	Points int
}

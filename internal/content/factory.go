// Package content builds fully populated links from archetype tables.
package content

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/orbitfall/engine/internal/collision"
	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	"github.com/orbitfall/engine/internal/core/tag"
	"github.com/orbitfall/engine/internal/data"
	"github.com/orbitfall/engine/internal/vmath"
)

// ErrUnknownArchetype is returned when spawning a name the table lacks.
var ErrUnknownArchetype = errors.New("unknown archetype")

// Defaults fill archetype fields left at zero.
type Defaults struct {
	Restitution float64
}

// blueprint is an archetype with its names already parsed.
type blueprint struct {
	arch          *data.Archetype
	tags          tag.Flags
	targets       tag.Flags
	facingTargets tag.Flags
	reaction      component.Reaction
	edge          component.EdgePolicy
	facing        component.FacingMode
	glyph         rune
}

// Factory turns archetype names into links. It is read-only after
// construction.
type Factory struct {
	blueprints map[string]*blueprint
	names      []string
	defaults   Defaults
	log        *zap.Logger
}

// NewFactory parses and cross-checks every archetype in table. All problems
// are reported together.
func NewFactory(table *data.ArchetypeTable, defaults Defaults, log *zap.Logger) (*Factory, error) {
	if log == nil {
		log = zap.NewNop()
	}
	f := &Factory{
		blueprints: make(map[string]*blueprint, table.Count()),
		names:      table.Names(),
		defaults:   defaults,
		log:        log,
	}

	var errs error
	for _, name := range f.names {
		bp, err := compile(table.Get(name))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("archetype %q: %w", name, err))
			continue
		}
		f.blueprints[name] = bp
	}
	if errs != nil {
		return nil, errs
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	log.Info("content factory ready", zap.Int("archetypes", len(f.blueprints)))
	return f, nil
}

func compile(a *data.Archetype) (*blueprint, error) {
	bp := &blueprint{arch: a, glyph: '*'}
	var err, e error

	if bp.tags, e = tag.Parse(a.Tags); e != nil {
		err = multierr.Append(err, fmt.Errorf("tags: %w", e))
	}
	if bp.targets, e = tag.Parse(a.Targets); e != nil {
		err = multierr.Append(err, fmt.Errorf("targets: %w", e))
	}
	if bp.reaction, e = component.ParseReaction(a.Reaction); e != nil {
		err = multierr.Append(err, e)
	}
	if a.Motion != nil {
		if bp.edge, e = component.ParseEdgePolicy(a.Motion.Edge); e != nil {
			err = multierr.Append(err, e)
		}
	}
	if a.Facing != nil {
		if bp.facing, e = component.ParseFacingMode(a.Facing.Mode); e != nil {
			err = multierr.Append(err, e)
		}
		if bp.facingTargets, e = tag.Parse(a.Facing.Targets); e != nil {
			err = multierr.Append(err, fmt.Errorf("facing targets: %w", e))
		}
	}
	if r, size := utf8.DecodeRuneInString(a.Visual.Glyph); size > 0 && r != utf8.RuneError {
		bp.glyph = r
	}
	return bp, err
}

// Validate checks cross references and collider shapes.
func (f *Factory) Validate() error {
	var err error
	for _, name := range f.names {
		bp := f.blueprints[name]
		a := bp.arch
		if a.Radius != 0 {
			if e := collision.CheckRadius(a.Radius); e != nil {
				err = multierr.Append(err, fmt.Errorf("archetype %q: %w", name, e))
			}
		}
		if a.Damage > 0 && a.Radius == 0 {
			err = multierr.Append(err, fmt.Errorf("archetype %q: damage without a collider", name))
		}
		if a.Weapon != nil {
			if _, ok := f.blueprints[a.Weapon.Projectile]; !ok {
				err = multierr.Append(err, fmt.Errorf("archetype %q: weapon projectile: %w %q", name, ErrUnknownArchetype, a.Weapon.Projectile))
			}
			if a.Weapon.Cooldown <= 0 {
				err = multierr.Append(err, fmt.Errorf("archetype %q: weapon cooldown must be positive", name))
			}
		}
		if a.Explode != nil {
			if _, ok := f.blueprints[a.Explode.Archetype]; !ok {
				err = multierr.Append(err, fmt.Errorf("archetype %q: explode: %w %q", name, ErrUnknownArchetype, a.Explode.Archetype))
			}
			if chain := f.explodeCycle(name); chain != nil {
				err = multierr.Append(err, fmt.Errorf("archetype %q: explodes into itself (%s)", name, strings.Join(chain, " -> ")))
			}
		}
		if a.Facing != nil && bp.facing == component.FaceSmooth && a.Facing.SteeringSpeed <= 0 {
			err = multierr.Append(err, fmt.Errorf("archetype %q: smooth facing needs steering_speed", name))
		}
	}
	return err
}

// explodeCycle follows the debris chain from name and returns it when it
// leads back to name, so every removal would spawn debris forever.
func (f *Factory) explodeCycle(name string) []string {
	chain := []string{name}
	seen := map[string]bool{name: true}
	cur := name
	for {
		bp, ok := f.blueprints[cur]
		if !ok || bp.arch.Explode == nil || bp.arch.Explode.Count <= 0 {
			return nil
		}
		next := bp.arch.Explode.Archetype
		chain = append(chain, next)
		if next == name {
			return chain
		}
		if seen[next] {
			// a cycle that does not pass through name
			return nil
		}
		seen[next] = true
		cur = next
	}
}

// Names returns the archetype names in table order.
func (f *Factory) Names() []string {
	return append([]string(nil), f.names...)
}

// Has reports whether name can be spawned.
func (f *Factory) Has(name string) bool {
	_, ok := f.blueprints[name]
	return ok
}

// Spawn builds a link of archetype name at the given position and facing.
// Motion speed is applied along direction.
func (f *Factory) Spawn(name string, at vmath.Vec, direction float64) (*ecs.Link, error) {
	bp, ok := f.blueprints[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownArchetype, name)
	}
	a := bp.arch
	tr := vmath.NewTransform(at, direction)

	traits := []ecs.Trait{
		component.TransformKey.Of(tr),
		component.ArchetypeKey.Of(component.Archetype{Name: name}),
		component.VisualKey.Of(component.Visual{
			Glyph:  bp.glyph,
			Color:  a.Visual.Color,
			Radius: a.Radius,
			Sprite: a.Visual.Sprite,
		}),
	}
	if a.Radius > 0 {
		traits = append(traits, component.ColliderKey.Of(component.Collider{
			Radius:   a.Radius,
			Tag:      bp.tags,
			Reaction: bp.reaction,
		}))
	}
	if a.HP > 0 {
		traits = append(traits, component.HitPointsKey.Of(component.NewHitPoints(a.HP)))
	}
	if a.Damage > 0 {
		traits = append(traits, component.DamageKey.Of(component.Damage{Amount: a.Damage, Targets: bp.targets}))
	}
	if m := a.Motion; m != nil {
		rest := m.Restitution
		if rest == 0 {
			rest = f.defaults.Restitution
		}
		traits = append(traits, component.MotionKey.Of(component.Motion{
			Velocity:        vmath.Polar(tr.Direction(), m.Speed),
			AngularVelocity: m.Spin,
			Edge:            bp.edge,
			Restitution:     rest,
		}))
	}
	if a.Propulsion > 0 {
		traits = append(traits, component.PropulsionKey.Of(component.Propulsion{Speed: a.Propulsion}))
	}
	if fc := a.Facing; fc != nil {
		traits = append(traits, component.FacingKey.Of(component.Facing{
			Mode:            bp.facing,
			SteeringSpeed:   fc.SteeringSpeed,
			ProjectileSpeed: fc.ProjectileSpeed,
			TargetTag:       bp.facingTargets,
		}))
	}
	if p := a.Pilot; p != nil {
		traits = append(traits, component.PilotKey.Of(component.Pilot{
			Thrust:       p.Thrust,
			TurnSpeed:    p.TurnSpeed,
			MaxSpeed:     p.MaxSpeed,
			AimAtPointer: p.AimPointer,
		}))
	}
	if w := a.Weapon; w != nil {
		traits = append(traits, component.WeaponKey.Of(component.Weapon{
			Projectile:  w.Projectile,
			Cooldown:    w.Cooldown,
			MuzzleSpeed: w.MuzzleSpeed,
			Offset:      w.Offset,
			AutoFire:    w.AutoFire,
		}))
	}
	if a.Lifetime > 0 {
		traits = append(traits, component.LifetimeKey.Of(component.Lifetime{Remaining: a.Lifetime}))
	}
	if x := a.Explode; x != nil && x.Count > 0 {
		traits = append(traits, component.ExplosiveKey.Of(component.Explosive{
			Archetype: x.Archetype,
			Count:     x.Count,
			Speed:     x.Speed,
		}))
	}
	if a.Score != 0 {
		traits = append(traits, component.ScoreKey.Of(component.Score{Points: a.Score}))
	}
	if a.Player {
		traits = append(traits, component.Player)
	}
	if a.Hostile {
		traits = append(traits, component.Hostile)
	}

	return ecs.NewLink(traits...), nil
}

// MustSpawn is Spawn for names already checked by Validate. An unknown name
// is a content bug and panics.
func (f *Factory) MustSpawn(name string, at vmath.Vec, direction float64) *ecs.Link {
	l, err := f.Spawn(name, at, direction)
	if err != nil {
		f.log.Error("spawn failed", zap.String("archetype", name), zap.Error(err))
		panic(err)
	}
	return l
}

package system

import (
	"errors"
	"math"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	coresys "github.com/orbitfall/engine/internal/core/system"
	"github.com/orbitfall/engine/internal/core/tag"
	"github.com/orbitfall/engine/internal/vmath"
)

const frame = 16 * time.Millisecond

func newUniverse(t *testing.T) *coresys.Universe {
	t.Helper()
	return coresys.NewUniverse(zaptest.NewLogger(t))
}

// spawnFunc adapts a function to Spawner.
type spawnFunc func(name string, at vmath.Vec, direction float64) (*ecs.Link, error)

func (f spawnFunc) Spawn(name string, at vmath.Vec, direction float64) (*ecs.Link, error) {
	return f(name, at, direction)
}

// spawnLog records every spawn and builds plain moving links.
type spawnLog struct {
	names []string
	at    []vmath.Vec
	dirs  []float64
}

func (s *spawnLog) Spawn(name string, at vmath.Vec, direction float64) (*ecs.Link, error) {
	s.names = append(s.names, name)
	s.at = append(s.at, at)
	s.dirs = append(s.dirs, direction)
	return ecs.NewLink(
		component.TransformKey.Of(vmath.NewTransform(at, direction)),
		component.MotionKey.Of(component.Motion{Edge: component.IgnoreEdges}),
		component.ArchetypeKey.Of(component.Archetype{Name: name}),
	), nil
}

var errSpawn = errors.New("spawn failed")

func failingSpawner() Spawner {
	return spawnFunc(func(string, vmath.Vec, float64) (*ecs.Link, error) {
		return nil, errSpawn
	})
}

// body builds a collidable link; extra traits are appended.
func body(at vmath.Vec, radius float64, tags tag.Flags, reaction component.Reaction, extra ...ecs.Trait) *ecs.Link {
	traits := []ecs.Trait{
		component.TransformKey.Of(vmath.NewTransform(at, 0)),
		component.ColliderKey.Of(component.Collider{Radius: radius, Tag: tags, Reaction: reaction}),
	}
	return ecs.NewLink(append(traits, extra...)...)
}

func hp(max float64) ecs.Trait {
	return component.HitPointsKey.Of(component.NewHitPoints(max))
}

func dmg(amount float64, targets tag.Flags) ecs.Trait {
	return component.DamageKey.Of(component.Damage{Amount: amount, Targets: targets})
}

func moving(v vmath.Vec) ecs.Trait {
	return component.MotionKey.Of(component.Motion{Velocity: v, Edge: component.IgnoreEdges})
}

func position(l *ecs.Link) vmath.Vec {
	return ecs.Must(l, component.TransformKey).Position
}

func health(l *ecs.Link) float64 {
	return ecs.Must(l, component.HitPointsKey).Value
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func nearVec(a, b vmath.Vec) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

package system

import (
	"math"
	"testing"
	"time"

	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	"github.com/orbitfall/engine/internal/vmath"
)

var field = vmath.Vec{X: 100, Y: 100}

func mover(at, v vmath.Vec, edge component.EdgePolicy, restitution float64) *ecs.Link {
	return ecs.NewLink(
		component.TransformKey.Of(vmath.NewTransform(at, 0)),
		component.MotionKey.Of(component.Motion{Velocity: v, Edge: edge, Restitution: restitution}),
	)
}

func TestMotionEdgePolicies(t *testing.T) {
	u := newUniverse(t)
	u.Register(NewMotionRoutine(u, field, 0))

	leaving := mover(vmath.Vec{X: 99, Y: 50}, vmath.Vec{X: 100}, component.RemoveOnEdge, 0)
	onEdge := mover(vmath.Vec{X: 100, Y: 50}, vmath.Vec{}, component.RemoveOnEdge, 0)
	bouncing := mover(vmath.Vec{X: 1, Y: 50}, vmath.Vec{X: -100}, component.BounceOnEdge, 0.5)
	free := mover(vmath.Vec{X: 1, Y: 50}, vmath.Vec{X: -100}, component.IgnoreEdges, 0)
	for _, l := range []*ecs.Link{leaving, onEdge, bouncing, free} {
		u.Add(l)
	}

	u.Step(0)
	u.Advance(frame)

	if u.Contains(leaving) {
		t.Error("link past the edge should be removed")
	}
	if !u.Contains(onEdge) {
		t.Error("link on the edge is still inside")
	}

	if got := position(bouncing); got != (vmath.Vec{X: 0, Y: 50}) {
		t.Errorf("bounced position = %v, want (0,50)", got)
	}
	if got := ecs.Must(bouncing, component.MotionKey).Velocity; got != (vmath.Vec{X: 50}) {
		t.Errorf("bounced velocity = %v, want (50,0)", got)
	}

	if got := position(free); !near(got.X, -0.6) {
		t.Errorf("ignored edge x = %v, want -0.6", got.X)
	}
	if !u.Contains(free) {
		t.Error("ignore policy never removes")
	}
}

func TestMotionBounceBothAxes(t *testing.T) {
	u := newUniverse(t)
	u.Register(NewMotionRoutine(u, field, 0))
	l := mover(vmath.Vec{X: 99, Y: 99}, vmath.Vec{X: 200, Y: 200}, component.BounceOnEdge, 1)
	u.Add(l)

	u.Step(0)
	u.Advance(frame)

	if got := position(l); got != field {
		t.Fatalf("position = %v, want corner %v", got, field)
	}
	if got := ecs.Must(l, component.MotionKey).Velocity; got != (vmath.Vec{X: -200, Y: -200}) {
		t.Fatalf("velocity = %v", got)
	}
}

func TestMotionStepCap(t *testing.T) {
	u := newUniverse(t)
	u.Register(NewMotionRoutine(u, field, time.Second))
	l := mover(vmath.Vec{}, vmath.Vec{X: 1}, component.IgnoreEdges, 0)
	ecs.Must(l, component.MotionKey).AngularVelocity = 0.5
	u.Add(l)

	u.Step(0)
	u.Advance(5 * time.Second)

	if got := position(l); !near(got.X, 1) {
		t.Fatalf("x = %v, want 1 after a capped step", got.X)
	}
	if got := ecs.Must(l, component.TransformKey).Direction(); !near(got, 0.5) {
		t.Fatalf("direction = %v, want 0.5", got)
	}
}

func TestPropulsionFollowsFacing(t *testing.T) {
	u := newUniverse(t)
	u.Register(NewPropulsionRoutine())
	l := ecs.NewLink(
		component.TransformKey.Of(vmath.NewTransform(vmath.Vec{}, math.Pi/2)),
		component.MotionKey.Of(component.Motion{}),
		component.PropulsionKey.Of(component.Propulsion{Speed: 30}),
	)
	u.Add(l)

	u.Step(0)

	if got := ecs.Must(l, component.MotionKey).Velocity; !nearVec(got, vmath.Vec{Y: 30}) {
		t.Fatalf("velocity = %v, want (0,30)", got)
	}
}

func TestLifetimeExpires(t *testing.T) {
	u := newUniverse(t)
	u.Register(NewLifetimeRoutine(u))
	l := ecs.NewLink(component.LifetimeKey.Of(component.Lifetime{Remaining: 0.5}))
	u.Add(l)

	u.Step(0)
	u.Advance(400 * time.Millisecond)
	if !u.Contains(l) {
		t.Fatal("removed too early")
	}
	u.Advance(100 * time.Millisecond)
	if u.Contains(l) {
		t.Fatal("lifetime should have run out")
	}
}

package system

import (
	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	coresys "github.com/orbitfall/engine/internal/core/system"
	"github.com/orbitfall/engine/internal/render"
	"github.com/orbitfall/engine/internal/vmath"
)

// HUDSource supplies the status line drawn with each frame.
type HUDSource interface {
	HUD() render.HUD
}

// RenderRoutine hands every visible link to the sink, one frame per tick.
// Register it last so the frame shows the tick's final state.
type RenderRoutine struct {
	coresys.Requirement
	sink  render.Sink
	field vmath.Vec
	hud   HUDSource
}

func NewRenderRoutine(sink render.Sink, field vmath.Vec, hud HUDSource) *RenderRoutine {
	return &RenderRoutine{
		Requirement: coresys.Requires(component.TransformKey, component.VisualKey),
		sink:        sink,
		field:       field,
		hud:         hud,
	}
}

func (s *RenderRoutine) OnStepLinks(_ coresys.Tick, links []*ecs.Link) {
	s.sink.Begin(s.field)
	for _, l := range links {
		if !l.Live() {
			continue
		}
		tr, vis := ecs.Get2(l, component.TransformKey, component.VisualKey)
		s.sink.Draw(render.Sprite{
			Position:  tr.Position,
			Direction: tr.Direction(),
			Glyph:     vis.Glyph,
			Color:     vis.Color,
			Radius:    vis.Radius,
			Sprite:    vis.Sprite,
		})
	}
	if s.hud != nil {
		s.sink.Text(s.hud.HUD())
	}
	s.sink.End()
}

package system

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/orbitfall/engine/internal/component"
	"github.com/orbitfall/engine/internal/core/ecs"
	"github.com/orbitfall/engine/internal/core/event"
	coresys "github.com/orbitfall/engine/internal/core/system"
	"github.com/orbitfall/engine/internal/render"
)

// HUDRoutine keeps the score and the player's status line up to date.
type HUDRoutine struct {
	coresys.Requirement
	printer *message.Printer
	player  *ecs.Link
	score   int
	stage   string
	status  string
	hud     render.HUD
}

func NewHUDRoutine(bus *event.Bus, lang language.Tag) *HUDRoutine {
	s := &HUDRoutine{
		Requirement: coresys.Requires(component.Player, component.HitPointsKey),
		printer:     message.NewPrinter(lang),
	}
	event.Subscribe(bus, s.onDestroyed)
	event.Subscribe(bus, func(ev event.StageStarted) {
		s.stage = ev.Name
	})
	event.Subscribe(bus, func(ev event.ArenaCleared) {
		if s.status == "" {
			s.status = "ARENA CLEARED"
		}
	})
	return s
}

func (s *HUDRoutine) onDestroyed(ev event.Destroyed) {
	if ev.Link.Has(component.Player) {
		s.status = "DESTROYED"
		return
	}
	s.score += ev.Points
}

func (s *HUDRoutine) OnAdd(l *ecs.Link) {
	s.player = l
	s.status = ""
}

func (s *HUDRoutine) OnRemove(l *ecs.Link) {
	if s.player == l {
		s.player = nil
	}
}

func (s *HUDRoutine) OnStep(coresys.Tick) {
	h := render.HUD{
		Score:  s.printer.Sprintf("%d", s.score),
		Stage:  s.stage,
		Status: s.status,
	}
	if s.player != nil {
		hp := ecs.Must(s.player, component.HitPointsKey)
		h.Health = hp.Fraction()
		h.HP = s.printer.Sprintf("%.0f/%.0f", hp.Value, hp.Max)
	}
	s.hud = h
}

// HUD returns the status line computed on the last tick.
func (s *HUDRoutine) HUD() render.HUD { return s.hud }

// Score returns the points collected so far.
func (s *HUDRoutine) Score() int { return s.score }

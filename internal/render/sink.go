// Package render is the boundary between the simulation and whatever draws
// it. Sinks only read what they are handed.
package render

import (
	"github.com/orbitfall/engine/internal/vmath"
)

// Sprite is one renderable link for one frame.
type Sprite struct {
	Position  vmath.Vec
	Direction float64
	Glyph     rune
	Color     string
	Radius    float64
	Sprite    string
}

// HUD is the status line drawn over the field.
type HUD struct {
	Health float64 // player hit points as a fraction, 0..1
	HP     string
	Score  string
	Stage  string
	Status string
}

// Sink receives one frame at a time: Begin, any number of Draw calls, Text,
// then End.
type Sink interface {
	Begin(field vmath.Vec)
	Draw(s Sprite)
	Text(h HUD)
	End()
}

// Frame is a recorded frame.
type Frame struct {
	Field   vmath.Vec
	Sprites []Sprite
	HUD     HUD
}

// Recorder keeps the frames it receives. Used headless and in tests.
type Recorder struct {
	frames []Frame
	cur    *Frame
	limit  int
}

// NewRecorder keeps at most limit frames, dropping the oldest. Zero keeps
// every frame.
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

func (r *Recorder) Begin(field vmath.Vec) {
	r.cur = &Frame{Field: field}
}

func (r *Recorder) Draw(s Sprite) {
	if r.cur != nil {
		r.cur.Sprites = append(r.cur.Sprites, s)
	}
}

func (r *Recorder) Text(h HUD) {
	if r.cur != nil {
		r.cur.HUD = h
	}
}

func (r *Recorder) End() {
	if r.cur == nil {
		return
	}
	r.frames = append(r.frames, *r.cur)
	r.cur = nil
	if r.limit > 0 && len(r.frames) > r.limit {
		r.frames = append(r.frames[:0], r.frames[len(r.frames)-r.limit:]...)
	}
}

// Frames returns the recorded frames, oldest first.
func (r *Recorder) Frames() []Frame {
	return r.frames
}

// Last returns the most recent frame.
func (r *Recorder) Last() (Frame, bool) {
	if len(r.frames) == 0 {
		return Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}

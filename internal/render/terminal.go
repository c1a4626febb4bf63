package render

import (
	"math"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/orbitfall/engine/internal/vmath"
)

// hudRows is the number of rows reserved under the field.
const hudRows = 2

var headingGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Terminal draws frames onto a tcell screen. Field y grows downward, like
// screen rows. ScreenToField may be called from the input goroutine while
// frames are drawn.
type Terminal struct {
	screen tcell.Screen

	mu    sync.RWMutex // guards field, cols and rows
	field vmath.Vec
	cols  int
	rows  int
}

// NewTerminal wraps an initialised screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Begin(field vmath.Vec) {
	w, h := t.screen.Size()
	t.mu.Lock()
	t.field = field
	t.cols, t.rows = w, max(h-hudRows, 1)
	t.mu.Unlock()
	t.screen.Clear()
}

// cell maps a field position to a screen cell.
func (t *Terminal) cell(p vmath.Vec) (int, int, bool) {
	if t.field.X <= 0 || t.field.Y <= 0 {
		return 0, 0, false
	}
	x := int(p.X / t.field.X * float64(t.cols))
	y := int(p.Y / t.field.Y * float64(t.rows))
	if x == t.cols {
		x--
	}
	if y == t.rows {
		y--
	}
	return x, y, x >= 0 && x < t.cols && y >= 0 && y < t.rows
}

// ScreenToField maps a screen cell to the centre of its field area.
func (t *Terminal) ScreenToField(x, y int) vmath.Vec {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.cols == 0 || t.rows == 0 {
		return vmath.Vec{}
	}
	return vmath.Vec{
		X: (float64(x) + 0.5) * t.field.X / float64(t.cols),
		Y: (float64(y) + 0.5) * t.field.Y / float64(t.rows),
	}
}

func (t *Terminal) Draw(s Sprite) {
	x, y, ok := t.cell(s.Position)
	if !ok {
		return
	}
	glyph := s.Glyph
	if s.Sprite == "heading" || glyph == 0 {
		glyph = HeadingGlyph(s.Direction)
	}
	style := tcell.StyleDefault
	if s.Color != "" {
		style = style.Foreground(tcell.GetColor(s.Color))
	}
	if runewidth.RuneWidth(glyph) == 2 && x == t.cols-1 {
		x--
	}
	t.screen.SetContent(x, y, glyph, nil, style)
}

func (t *Terminal) Text(h HUD) {
	base := t.rows
	for x := 0; x < t.cols; x++ {
		t.screen.SetContent(x, base, '─', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	line := strings.Join(nonEmpty(
		"HP "+Bar(h.Health, 10)+" "+h.HP,
		"SCORE "+h.Score,
		h.Stage,
		h.Status,
	), "   ")
	t.drawText(0, base+1, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (t *Terminal) End() {
	t.screen.Show()
}

// drawText writes text at (x, y), advancing by each rune's display width.
func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > t.cols {
			return
		}
		t.screen.SetContent(col, y, ch, nil, style)
		col += w
	}
}

// HeadingGlyph picks the arrow closest to direction.
func HeadingGlyph(direction float64) rune {
	i := int(math.Round(vmath.NormalizeAngle(direction)/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return headingGlyphs[i]
}

// Bar renders fraction as a fixed-width bar.
func Bar(fraction float64, width int) string {
	filled := int(math.Round(vmath.Clamp(fraction, 0, 1) * float64(width)))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

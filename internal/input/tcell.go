package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/orbitfall/engine/internal/vmath"
)

// DefaultHold covers the gap between a terminal's key repeats.
const DefaultHold = 150 * time.Millisecond

// TcellAdapter feeds tcell events into a Buffer.
type TcellAdapter struct {
	Buffer *Buffer
	Hold   time.Duration
	// ToField converts a screen cell to field coordinates. Nil ignores the
	// mouse.
	ToField func(x, y int) vmath.Vec

	mouseDown bool
}

// KeyFor maps a tcell key event to a game key.
func KeyFor(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyUp:
		return KeyThrust
	case tcell.KeyDown:
		return KeyBrake
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	}
	switch ev.Rune() {
	case 'a', 'A', 'h':
		return KeyLeft
	case 'd', 'D', 'l':
		return KeyRight
	case 'w', 'W', 'k':
		return KeyThrust
	case 's', 'S', 'j':
		return KeyBrake
	case ' ', 'f', 'F':
		return KeyFire
	case 'p', 'P':
		return KeyPause
	case 'q', 'Q':
		return KeyQuit
	}
	return KeyNone
}

// Handle applies ev and returns the key it produced, or KeyNone.
func (a *TcellAdapter) Handle(ev tcell.Event) Key {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k := KeyFor(ev)
		if k == KeyNone {
			return KeyNone
		}
		hold := a.Hold
		if hold <= 0 {
			hold = DefaultHold
		}
		a.Buffer.Hold(k, hold)
		return k
	case *tcell.EventMouse:
		if a.ToField == nil {
			return KeyNone
		}
		x, y := ev.Position()
		a.Buffer.MovePointer(a.ToField(x, y))
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !a.mouseDown:
			a.mouseDown = true
			a.Buffer.Press(KeyFire)
			return KeyFire
		case !down && a.mouseDown:
			a.mouseDown = false
			a.Buffer.Release(KeyFire)
		}
	}
	return KeyNone
}

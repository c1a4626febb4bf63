// Package input collects key and pointer events from the host and exposes
// them to the simulation as per-tick state.
package input

import (
	"sync"
	"time"

	"github.com/orbitfall/engine/internal/vmath"
)

// Key is a logical game key.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyThrust
	KeyBrake
	KeyFire
	KeyPause
	KeyQuit
	keyCount
)

var keyNames = [...]string{"none", "left", "right", "thrust", "brake", "fire", "pause", "quit"}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// State is the debounced view routines query. Edge queries are true only
// during the tick following the transition.
type State interface {
	IsPressed(k Key) bool
	WasPressed(k Key) bool
	WasReleased(k Key) bool
	Pointer() vmath.Vec
}

type latched struct {
	pressed [keyCount]bool
	down    [keyCount]bool
	up      [keyCount]bool
	pointer vmath.Vec
}

// Buffer accumulates host events between ticks. Press, Release, Hold and
// MovePointer may be called from any goroutine; Latch and the State queries
// belong to the simulation goroutine.
type Buffer struct {
	mu       sync.Mutex
	raw      [keyCount]bool
	down     [keyCount]bool
	up       [keyCount]bool
	deadline [keyCount]time.Time
	pointer  vmath.Vec
	now      func() time.Time

	cur latched
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{now: time.Now}
}

// Press marks k down.
func (b *Buffer) Press(k Key) {
	if k >= keyCount {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deadline[k] = time.Time{}
	if !b.raw[k] {
		b.raw[k] = true
		b.down[k] = true
	}
}

// Release marks k up.
func (b *Buffer) Release(k Key) {
	if k >= keyCount {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deadline[k] = time.Time{}
	if b.raw[k] {
		b.raw[k] = false
		b.up[k] = true
	}
}

// Hold presses k and releases it automatically d after the last call. It
// serves hosts, like terminals, that report key repeats but no key-up.
func (b *Buffer) Hold(k Key, d time.Duration) {
	if k >= keyCount {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.raw[k] {
		b.raw[k] = true
		b.down[k] = true
	}
	b.deadline[k] = b.now().Add(d)
}

// MovePointer records the pointer position in field coordinates.
func (b *Buffer) MovePointer(p vmath.Vec) {
	b.mu.Lock()
	b.pointer = p
	b.mu.Unlock()
}

// Latch publishes everything received since the previous call. A key pressed
// and released between two latches reads as pressed for exactly one tick.
func (b *Buffer) Latch() {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	for k := range b.raw {
		if !b.deadline[k].IsZero() && !now.Before(b.deadline[k]) {
			b.deadline[k] = time.Time{}
			b.raw[k] = false
			b.up[k] = true
		}
		b.cur.pressed[k] = b.raw[k] || b.down[k]
		b.cur.down[k] = b.down[k]
		b.cur.up[k] = b.up[k]
		b.down[k] = false
		b.up[k] = false
	}
	b.cur.pointer = b.pointer
}

func (b *Buffer) IsPressed(k Key) bool   { return k < keyCount && b.cur.pressed[k] }
func (b *Buffer) WasPressed(k Key) bool  { return k < keyCount && b.cur.down[k] }
func (b *Buffer) WasReleased(k Key) bool { return k < keyCount && b.cur.up[k] }
func (b *Buffer) Pointer() vmath.Vec     { return b.cur.pointer }

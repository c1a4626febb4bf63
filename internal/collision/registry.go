// Package collision keeps the per-tick set of overlapping link pairs.
package collision

import (
	"errors"
	"fmt"

	"github.com/orbitfall/engine/internal/core/ecs"
	"github.com/orbitfall/engine/internal/vmath"
)

// ErrNoCollisionTest is raised for a collider that no overlap test covers.
var ErrNoCollisionTest = errors.New("no collision test for collider")

// Pair is an unordered pair of links in contact.
type Pair struct {
	A, B *ecs.Link
}

// MaxPairID is the largest id PairHash keeps collision free. Cantor pairing
// of two ids at or below it stays within uint64.
const MaxPairID = 1<<31 - 1

// PairHash combines two ids into one key independent of argument order,
// using Cantor pairing over (min, max). Ids above MaxPairID may collide;
// registry ids are handed out sequentially and stay far below it.
func PairHash(a, b uint32) uint64 {
	if a > b {
		a, b = b, a
	}
	x, y := uint64(a), uint64(b)
	return (x+y)*(x+y+1)/2 + y
}

// Overlaps reports whether two circles overlap. Touching circles do not.
func Overlaps(ca vmath.Vec, ra float64, cb vmath.Vec, rb float64) bool {
	r := ra + rb
	return ca.DistanceSq(cb) < r*r
}

// CheckRadius validates a collider radius.
func CheckRadius(r float64) error {
	if !(r > 0) {
		return fmt.Errorf("%w: radius %v", ErrNoCollisionTest, r)
	}
	return nil
}

// Registry is rebuilt every tick by the detection routine. The previous tick's
// pairs are kept so routines can tell contacts that started from contacts
// that ended. Ids are scoped to the registry and never reused.
type Registry struct {
	ids      *ecs.IDPool
	current  map[uint64]Pair
	previous map[uint64]Pair
	order    []uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ids:      ecs.NewIDPool(),
		current:  make(map[uint64]Pair),
		previous: make(map[uint64]Pair),
	}
}

// Clear starts a new tick: the current pairs become the previous ones.
func (r *Registry) Clear() {
	r.previous, r.current = r.current, r.previous
	clear(r.current)
	r.order = r.order[:0]
}

// Add records a and b as overlapping this tick.
func (r *Registry) Add(a, b *ecs.Link) {
	h := PairHash(r.ids.ID(a), r.ids.ID(b))
	if _, ok := r.current[h]; ok {
		return
	}
	r.current[h] = Pair{A: a, B: b}
	r.order = append(r.order, h)
}

func (r *Registry) key(a, b *ecs.Link) (uint64, bool) {
	ia, ok := r.ids.Lookup(a)
	if !ok {
		return 0, false
	}
	ib, ok := r.ids.Lookup(b)
	if !ok {
		return 0, false
	}
	return PairHash(ia, ib), true
}

// Colliding reports whether a and b overlap this tick.
func (r *Registry) Colliding(a, b *ecs.Link) bool {
	h, ok := r.key(a, b)
	if !ok {
		return false
	}
	_, hit := r.current[h]
	return hit
}

// WasColliding reports whether a and b overlapped during the previous tick.
func (r *Registry) WasColliding(a, b *ecs.Link) bool {
	h, ok := r.key(a, b)
	if !ok {
		return false
	}
	_, hit := r.previous[h]
	return hit
}

// Pairs returns this tick's pairs in detection order.
func (r *Registry) Pairs() []Pair {
	out := make([]Pair, 0, len(r.order))
	for _, h := range r.order {
		out = append(out, r.current[h])
	}
	return out
}

// Started returns pairs overlapping now but not during the previous tick.
func (r *Registry) Started() []Pair {
	var out []Pair
	for _, h := range r.order {
		if _, was := r.previous[h]; !was {
			out = append(out, r.current[h])
		}
	}
	return out
}

// Ended returns pairs that overlapped during the previous tick but no longer
// do. Order is unspecified.
func (r *Registry) Ended() []Pair {
	var out []Pair
	for h, p := range r.previous {
		if _, still := r.current[h]; !still {
			out = append(out, p)
		}
	}
	return out
}

// Forget drops every pair involving l and releases its id.
func (r *Registry) Forget(l *ecs.Link) {
	if _, ok := r.ids.Lookup(l); !ok {
		return
	}
	for h, p := range r.previous {
		if p.A == l || p.B == l {
			delete(r.previous, h)
		}
	}
	for h, p := range r.current {
		if p.A == l || p.B == l {
			delete(r.current, h)
		}
	}
	kept := r.order[:0]
	for _, h := range r.order {
		if _, ok := r.current[h]; ok {
			kept = append(kept, h)
		}
	}
	r.order = kept
	r.ids.Forget(l)
}

// Len returns the number of pairs overlapping this tick.
func (r *Registry) Len() int {
	return len(r.current)
}

package collision

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/orbitfall/engine/internal/core/ecs"
	"github.com/orbitfall/engine/internal/vmath"
)

func TestPairHashSymmetric(t *testing.T) {
	seen := make(map[uint64][2]uint32)
	for a := uint32(1); a <= 200; a++ {
		for b := a + 1; b <= 200; b++ {
			h := PairHash(a, b)
			if h != PairHash(b, a) {
				t.Fatalf("PairHash(%d,%d) != PairHash(%d,%d)", a, b, b, a)
			}
			if prev, dup := seen[h]; dup {
				t.Fatalf("PairHash(%d,%d) collides with %v", a, b, prev)
			}
			seen[h] = [2]uint32{a, b}
		}
	}
}

func TestPairHashExactUpToMaxID(t *testing.T) {
	cantor := func(a, b uint32) *big.Int {
		x, y := big.NewInt(int64(min(a, b))), big.NewInt(int64(max(a, b)))
		sum := new(big.Int).Add(x, y)
		h := new(big.Int).Mul(sum, new(big.Int).Add(sum, big.NewInt(1)))
		return h.Rsh(h, 1).Add(h, y)
	}

	seen := make(map[uint64][2]uint32)
	for a := uint32(MaxPairID - 20); a <= MaxPairID; a++ {
		for _, b := range []uint32{1, 2, MaxPairID - 30, a, MaxPairID} {
			h := PairHash(a, b)
			if want := cantor(a, b); !want.IsUint64() || want.Uint64() != h {
				t.Fatalf("PairHash(%d,%d) = %d, want %v", a, b, h, want)
			}
			if prev, dup := seen[h]; dup && prev != [2]uint32{min(a, b), max(a, b)} {
				t.Fatalf("PairHash(%d,%d) collides with %v", a, b, prev)
			}
			seen[h] = [2]uint32{min(a, b), max(a, b)}
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		d      float64
		r1, r2 float64
		want   bool
	}{
		{"apart", 10, 2, 3, false},
		{"circles_touching", 5, 2, 3, false},
		{"just_inside", 4.999, 2, 3, true},
		{"concentric", 0, 1, 1, true},
		{"one_inside_other", 1, 10, 0.5, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, dir := range []float64{0, math.Pi / 3, -2} {
				a := vmath.Vec{X: 7, Y: -3}
				b := a.Add(vmath.Polar(dir, tc.d))
				// polar placement can round; only check the exact axis for the boundary case
				if tc.name == "circles_touching" && dir != 0 {
					continue
				}
				if got := Overlaps(a, tc.r1, b, tc.r2); got != tc.want {
					t.Errorf("dir %v: Overlaps = %v, want %v", dir, got, tc.want)
				}
				if got := Overlaps(b, tc.r2, a, tc.r1); got != tc.want {
					t.Errorf("dir %v: swapped Overlaps = %v, want %v", dir, got, tc.want)
				}
			}
		})
	}
}

func TestCheckRadius(t *testing.T) {
	for _, r := range []float64{0, -1, math.NaN()} {
		if err := CheckRadius(r); !errors.Is(err, ErrNoCollisionTest) {
			t.Errorf("CheckRadius(%v) = %v", r, err)
		}
	}
	if err := CheckRadius(0.1); err != nil {
		t.Errorf("CheckRadius(0.1) = %v", err)
	}
}

func TestRegistryTransitions(t *testing.T) {
	a, b, c := ecs.NewLink(), ecs.NewLink(), ecs.NewLink()
	r := NewRegistry()

	if r.Colliding(a, b) {
		t.Fatal("empty registry reports contact")
	}

	r.Clear()
	r.Add(a, b)
	r.Add(b, a)
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1 after symmetric double add", r.Len())
	}
	if !r.Colliding(b, a) || r.Colliding(a, c) {
		t.Fatal("wrong contact set")
	}
	if got := r.Started(); len(got) != 1 {
		t.Fatalf("Started = %v, want one pair", got)
	}

	r.Clear()
	r.Add(b, a)
	r.Add(a, c)
	if !r.WasColliding(a, b) {
		t.Error("WasColliding(a,b) = false")
	}
	started := r.Started()
	if len(started) != 1 || started[0].A != a || started[0].B != c {
		t.Errorf("Started = %v, want (a,c)", started)
	}
	if len(r.Ended()) != 0 {
		t.Errorf("Ended = %v, want none", r.Ended())
	}

	r.Clear()
	ended := r.Ended()
	if len(ended) != 2 {
		t.Errorf("Ended = %d pairs, want 2", len(ended))
	}
	if r.Len() != 0 || len(r.Pairs()) != 0 {
		t.Error("cleared registry not empty")
	}
}

func TestRegistryForget(t *testing.T) {
	a, b, c := ecs.NewLink(), ecs.NewLink(), ecs.NewLink()
	r := NewRegistry()
	r.Clear()
	r.Add(a, b)
	r.Add(b, c)

	r.Forget(b)
	if r.Colliding(a, b) || r.Colliding(b, c) {
		t.Error("forgotten link still colliding")
	}
	if r.Len() != 0 || len(r.Pairs()) != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}

	r.Clear()
	r.Add(a, c)
	if len(r.Ended()) != 0 {
		t.Error("forgotten pairs reported as ended")
	}
	r.Forget(ecs.NewLink())
}

func TestRegistriesDoNotShareIDs(t *testing.T) {
	a, b := ecs.NewLink(), ecs.NewLink()
	r1, r2 := NewRegistry(), NewRegistry()
	r1.Clear()
	r1.Add(a, b)
	if r2.Colliding(a, b) {
		t.Fatal("second registry sees first registry's pair")
	}
	if r2.ids.Len() != 0 {
		t.Fatal("lookup assigned ids")
	}
}

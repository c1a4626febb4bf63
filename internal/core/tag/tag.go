// Package tag implements the small bitflag algebra used to classify colliders
// and to describe which colliders a damage dealer may hit. Coarse categories
// (player, hostile) compose with fine ones (ship, bullet, field) in one value.
package tag

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// Flags is a set of classification bits.
type Flags uint32

const (
	Player Flags = 1 << iota
	Hostile
	Neutral
	Ship
	Bullet
	Field
	Debris
)

// None is the empty set.
const None Flags = 0

// ErrUnknownTag is returned by Parse for names that have no bit.
var ErrUnknownTag = errors.New("unknown tag")

var names = map[string]Flags{
	"player":  Player,
	"hostile": Hostile,
	"neutral": Neutral,
	"ship":    Ship,
	"bullet":  Bullet,
	"field":   Field,
	"debris":  Debris,
}

// Contains reports whether a carries every bit in b.
func Contains(a, b Flags) bool {
	return a&b == b
}

// Matches is the symmetric "could this pair interact" test: either side's
// bits are a superset of the other's.
func Matches(a, b Flags) bool {
	return Contains(a, b) || Contains(b, a)
}

// Has reports whether f carries every bit in other.
func (f Flags) Has(other Flags) bool {
	return Contains(f, other)
}

// Count returns the number of set bits.
func (f Flags) Count() int {
	return bits.OnesCount32(uint32(f))
}

// Parse combines lowercase tag names into Flags.
func Parse(list []string) (Flags, error) {
	var f Flags
	for _, n := range list {
		bit, ok := names[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownTag, n)
		}
		f |= bit
	}
	return f, nil
}

// String renders the set as "hostile|ship".
func (f Flags) String() string {
	if f == None {
		return "none"
	}
	var parts []string
	for n, bit := range names {
		if f&bit != 0 {
			parts = append(parts, n)
		}
	}
	sort.Slice(parts, func(i, j int) bool { return names[parts[i]] < names[parts[j]] })
	return strings.Join(parts, "|")
}

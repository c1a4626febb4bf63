package system

import (
	"errors"

	"github.com/orbitfall/engine/internal/core/ecs"
)

var (
	// ErrEmptyRoutine is raised when a registered value implements no hook.
	ErrEmptyRoutine = errors.New("routine implements no hook")
	// ErrNoMatcher is raised when a routine has per-link hooks but no way to
	// select links.
	ErrNoMatcher = errors.New("routine has link hooks but no matcher")
	// ErrForeignLink is raised when a link still owned by another universe is
	// added.
	ErrForeignLink = errors.New("link belongs to another universe")
)

// Tick is the clock reading shared by every routine during one step.
// Elapsed and Total are in seconds, already scaled by the time scale.
type Tick struct {
	Index   uint64
	Elapsed float64
	Total   float64
}

// Routine is a unit of game logic. It implements any subset of the hook
// interfaces below; the universe discovers them when the routine is
// registered.
type Routine interface{}

// Matcher selects which links a routine tracks.
type Matcher interface {
	Test(l *ecs.Link) bool
}

// Adder is notified once when a matching link is added.
type Adder interface {
	OnAdd(l *ecs.Link)
}

// Stepper is notified once per tick. Routines implementing only Stepper
// iterate whatever they track themselves.
type Stepper interface {
	OnStep(t Tick)
}

// LinkStepper is notified once per tick with a stable snapshot of every link
// the routine accepted. Links removed while the routine iterates stay in the
// slice; check Live before touching them.
type LinkStepper interface {
	OnStepLinks(t Tick, links []*ecs.Link)
}

// Remover is notified exactly once when a previously accepted link is
// removed.
type Remover interface {
	OnRemove(l *ecs.Link)
}

// Requirement is a declarative matcher: a link matches when it carries every
// listed key. Embed it in a routine to satisfy Matcher.
type Requirement []ecs.TraitKey

// Requires declares the trait keys a routine needs.
func Requires(keys ...ecs.TraitKey) Requirement {
	return Requirement(keys)
}

// Test implements Matcher.
func (r Requirement) Test(l *ecs.Link) bool {
	return l.HasAll(r...)
}

// MatchFunc adapts a predicate to Matcher.
type MatchFunc func(l *ecs.Link) bool

// Test implements Matcher.
func (f MatchFunc) Test(l *ecs.Link) bool {
	return f(l)
}

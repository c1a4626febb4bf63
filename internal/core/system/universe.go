package system

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/orbitfall/engine/internal/core/ecs"
)

// Clock is the universe's time state.
type Clock struct {
	Ticks     uint64
	Elapsed   float64 // seconds since the previous step, scaled
	Total     float64 // accumulated scaled seconds
	TimeScale float64
}

type entry struct {
	name        string
	matcher     Matcher
	adder       Adder
	stepper     Stepper
	linkStepper LinkStepper
	remover     Remover
	tracked     *ecs.LinkSet
}

// Universe owns the tick clock, the live link set and the ordered routine
// list. Registration order is dispatch order. All methods must be called from
// the simulation goroutine.
type Universe struct {
	log       *zap.Logger
	routines  []*entry
	live      *ecs.LinkSet
	clock     Clock
	scheduler Scheduler
	running   bool
	gen       uint64
	last      time.Duration
	hasLast   bool
}

// NewUniverse creates an empty, stopped universe with time scale 1.
func NewUniverse(log *zap.Logger) *Universe {
	if log == nil {
		log = zap.NewNop()
	}
	return &Universe{
		log:   log,
		live:  ecs.NewLinkSet(),
		clock: Clock{TimeScale: 1},
	}
}

// Register appends a routine. Links already live are offered to it
// immediately so late registration keeps the tracking invariant.
func (u *Universe) Register(r Routine) {
	e := &entry{
		name:    fmt.Sprintf("%T", r),
		tracked: ecs.NewLinkSet(),
	}
	e.matcher, _ = r.(Matcher)
	e.adder, _ = r.(Adder)
	e.stepper, _ = r.(Stepper)
	e.linkStepper, _ = r.(LinkStepper)
	e.remover, _ = r.(Remover)

	if e.adder == nil && e.stepper == nil && e.linkStepper == nil && e.remover == nil {
		panic(fmt.Errorf("%w: %s", ErrEmptyRoutine, e.name))
	}
	if e.matcher == nil && (e.adder != nil || e.linkStepper != nil || e.remover != nil) {
		panic(fmt.Errorf("%w: %s", ErrNoMatcher, e.name))
	}

	u.routines = append(u.routines, e)
	u.log.Debug("routine registered", zap.String("routine", e.name), zap.Int("order", len(u.routines)-1))

	if e.matcher == nil {
		return
	}
	for _, l := range u.live.Snapshot() {
		if e.matcher.Test(l) {
			u.accept(e, l)
		}
	}
}

// Add inserts l into the live set and notifies every matching routine, in
// registration order. Adding a link that is already live is a no-op.
func (u *Universe) Add(l *ecs.Link) {
	if u.live.Contains(l) {
		return
	}
	if !l.Bind(u) {
		panic(fmt.Errorf("%w: %s", ErrForeignLink, l))
	}
	u.live.Add(l)
	if ce := u.log.Check(zap.DebugLevel, "link added"); ce != nil {
		ce.Write(zap.Stringer("link", l), zap.Strings("traits", l.Keys()))
	}

	for _, e := range u.routines {
		if e.matcher == nil || !e.matcher.Test(l) {
			continue
		}
		// an earlier OnAdd may already have removed it
		if !u.live.Contains(l) {
			return
		}
		u.accept(e, l)
	}
}

func (u *Universe) accept(e *entry, l *ecs.Link) {
	e.tracked.Add(l)
	if e.adder != nil {
		e.adder.OnAdd(l)
	}
}

// Remove takes l out of the live set, then notifies every routine that had
// accepted it, in registration order. Removing an absent link is a no-op.
func (u *Universe) Remove(l *ecs.Link) {
	if !u.live.Remove(l) {
		return
	}
	l.Unbind(u)
	if ce := u.log.Check(zap.DebugLevel, "link removed"); ce != nil {
		ce.Write(zap.Stringer("link", l))
	}

	for _, e := range u.routines {
		if !e.tracked.Remove(l) {
			continue
		}
		if e.remover != nil {
			e.remover.OnRemove(l)
		}
	}
}

// Contains reports whether l is live in this universe.
func (u *Universe) Contains(l *ecs.Link) bool {
	return u.live.Contains(l)
}

// Len returns the number of live links.
func (u *Universe) Len() int {
	return u.live.Len()
}

// Links returns a snapshot of the live links in insertion order.
func (u *Universe) Links() []*ecs.Link {
	return u.live.Snapshot()
}

// Clock returns the current clock state.
func (u *Universe) Clock() Clock {
	return u.clock
}

// SetTimeScale changes the factor applied to wall time from the next step.
func (u *Universe) SetTimeScale(s float64) {
	u.clock.TimeScale = s
}

// Running reports whether the frame loop is active.
func (u *Universe) Running() bool {
	return u.running
}

// Start begins the frame loop on s. Starting a running universe is a no-op.
func (u *Universe) Start(s Scheduler) {
	if u.running {
		return
	}
	u.scheduler = s
	u.running = true
	u.gen++
	u.last = s.Now()
	u.hasLast = true
	u.log.Debug("universe started", zap.Uint64("generation", u.gen))
	s.RequestFrame(u.frame(u.gen))
}

// Stop halts scheduling. The frame already requested becomes a no-op when it
// fires; the tick in flight, if any, completes.
func (u *Universe) Stop() {
	if !u.running {
		return
	}
	u.running = false
	u.log.Debug("universe stopped", zap.Uint64("ticks", u.clock.Ticks), zap.Float64("total", u.clock.Total))
}

func (u *Universe) frame(gen uint64) func(time.Duration) {
	return func(ts time.Duration) {
		if !u.running || gen != u.gen {
			return
		}
		u.Step(ts)
		if u.running && gen == u.gen {
			u.scheduler.RequestFrame(u.frame(gen))
		}
	}
}

// Step advances the clock to timestamp and dispatches one tick to every
// routine in registration order. Hosts without a scheduler may call it
// directly.
func (u *Universe) Step(timestamp time.Duration) {
	var elapsed float64
	if u.hasLast && timestamp > u.last {
		elapsed = (timestamp - u.last).Seconds() * u.clock.TimeScale
	}
	u.last = timestamp
	u.hasLast = true

	u.clock.Elapsed = elapsed
	u.clock.Total += elapsed
	t := Tick{Index: u.clock.Ticks, Elapsed: elapsed, Total: u.clock.Total}
	u.clock.Ticks++

	// routines registered mid-tick start stepping next tick
	n := len(u.routines)
	for i := 0; i < n; i++ {
		e := u.routines[i]
		if e.stepper != nil {
			e.stepper.OnStep(t)
		}
		if e.linkStepper != nil {
			e.linkStepper.OnStepLinks(t, e.tracked.Snapshot())
		}
	}
}

// Advance steps the universe d after the previous step.
func (u *Universe) Advance(d time.Duration) {
	u.Step(u.last + d)
}

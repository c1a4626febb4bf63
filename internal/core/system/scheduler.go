package system

import (
	"context"
	"sync"
	"time"
)

// Scheduler is the host's frame source. RequestFrame asks for fn to be called
// once, on the simulation goroutine, with the frame timestamp.
type Scheduler interface {
	Now() time.Duration
	RequestFrame(fn func(timestamp time.Duration))
}

// ManualScheduler fires frames only when the host advances it. Used by tests
// and by hosts that own their own loop.
type ManualScheduler struct {
	now     time.Duration
	pending []func(time.Duration)
}

// NewManualScheduler creates a scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) Now() time.Duration { return m.now }

func (m *ManualScheduler) RequestFrame(fn func(time.Duration)) {
	m.pending = append(m.pending, fn)
}

// Advance moves time forward by d and fires the frames requested so far.
// Frames requested while firing wait for the next Advance. It returns the
// number of frames fired.
func (m *ManualScheduler) Advance(d time.Duration) int {
	m.now += d
	fire := m.pending
	m.pending = nil
	for _, fn := range fire {
		fn(m.now)
	}
	return len(fire)
}

// Pending returns the number of frames waiting.
func (m *ManualScheduler) Pending() int {
	return len(m.pending)
}

// TickerScheduler fires frames from a time.Ticker. Every frame runs on the
// goroutine calling Run.
type TickerScheduler struct {
	interval time.Duration
	start    time.Time

	mu      sync.Mutex
	pending func(time.Duration)
}

// NewTickerScheduler creates a scheduler firing at most once per interval.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	return &TickerScheduler{interval: interval, start: time.Now()}
}

func (s *TickerScheduler) Now() time.Duration { return time.Since(s.start) }

func (s *TickerScheduler) RequestFrame(fn func(time.Duration)) {
	s.mu.Lock()
	s.pending = fn
	s.mu.Unlock()
}

// Run fires requested frames until ctx is done.
func (s *TickerScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.mu.Lock()
			fn := s.pending
			s.pending = nil
			s.mu.Unlock()
			if fn != nil {
				fn(s.Now())
			}
		}
	}
}

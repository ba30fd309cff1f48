package tooltip

import (
	"sort"
	"time"
)

// Scheduler runs a function after a delay. Sessions use it for open and
// close delays. Implementations must run fn on the same goroutine that drives
// the Session.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a handle to a scheduled function.
type Timer interface {
	// Stop prevents the function from running. It returns false if the
	// function already ran or the timer was already stopped.
	Stop() bool
}

// ManualScheduler is a Scheduler whose clock only moves when Advance is
// called. Functions run synchronously inside Advance, on the caller's
// goroutine. It suits tests and hosts that already own a frame clock.
type ManualScheduler struct {
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	s        *ManualScheduler
	deadline time.Duration
	seq      uint64
	fn       func()
	done     bool
}

// NewManualScheduler returns a scheduler with its clock at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc schedules fn to run once the clock has advanced by d.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{s: s, deadline: s.now + d, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Stop implements Timer.
func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.s.remove(t)
	return true
}

func (s *ManualScheduler) remove(t *manualTimer) {
	for i, other := range s.timers {
		if other == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward by d and runs every function that comes
// due, in deadline order. Functions scheduled while advancing also run if
// they come due before the new time.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := s.next(target)
		if next == nil {
			break
		}
		s.now = next.deadline
		next.done = true
		s.remove(next)
		next.fn()
	}
	s.now = target
}

// next returns the earliest pending timer due at or before target.
func (s *ManualScheduler) next(target time.Duration) *manualTimer {
	if len(s.timers) == 0 {
		return nil
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		a, b := s.timers[i], s.timers[j]
		if a.deadline != b.deadline {
			return a.deadline < b.deadline
		}
		return a.seq < b.seq
	})
	if s.timers[0].deadline > target {
		return nil
	}
	return s.timers[0]
}

// Now returns the time elapsed since the scheduler was created.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of scheduled functions that have not run.
func (s *ManualScheduler) Pending() int {
	return len(s.timers)
}

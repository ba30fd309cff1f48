package tooltip

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/grindlemire/go-tooltip/internal/debug"
)

// ErrLoopStopped is returned when work is submitted to a stopped Loop.
var ErrLoopStopped = errors.New("tooltip: loop stopped")

// Loop is a single-threaded event loop. Functions queued with QueueUpdate
// and timers created with AfterFunc all run on the goroutine that called
// Run, one at a time, so Sessions driven by a Loop need no locking.
type Loop struct {
	queue    chan func()
	stopCh   chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	queueSize int
}

// LoopOption is a functional option for configuring a Loop.
type LoopOption func(*Loop) error

// WithQueueSize sets the capacity of the event queue buffer.
// Default is 256. Must be at least 1.
func WithQueueSize(size int) LoopOption {
	return func(l *Loop) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		l.queueSize = size
		return nil
	}
}

// NewLoop creates a Loop. It does nothing until Run is called.
func NewLoop(opts ...LoopOption) (*Loop, error) {
	l := &Loop{
		stopCh:    make(chan struct{}),
		queueSize: 256,
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	l.queue = make(chan func(), l.queueSize)
	return l, nil
}

// Run processes queued functions until Stop is called or ctx is done.
// It returns nil after Stop and ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return fmt.Errorf("tooltip: loop is already running")
	}
	defer l.running.Store(false)

	debug.Log("loop started (queue=%d)", l.queueSize)
	for {
		select {
		case fn := <-l.queue:
			fn()
		case <-l.stopCh:
			debug.Log("loop stopped")
			return nil
		case <-ctx.Done():
			debug.Log("loop cancelled: %v", ctx.Err())
			return ctx.Err()
		}
	}
}

// Stop signals Run to return and releases every pending timer goroutine.
// Functions still queued are dropped. Stop is idempotent.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
	})
}

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool {
	select {
	case <-l.stopCh:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed when Stop is called.
func (l *Loop) Done() <-chan struct{} {
	return l.stopCh
}

// QueueUpdate enqueues fn to run on the loop. Safe to call from any
// goroutine. It blocks while the queue is full and returns ErrLoopStopped
// if the loop stops first. Calling it from the loop goroutine with a full
// queue deadlocks.
func (l *Loop) QueueUpdate(fn func()) error {
	select {
	case l.queue <- fn:
		return nil
	case <-l.stopCh:
		return ErrLoopStopped
	}
}

// Do runs fn on the loop and waits for it to finish.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	if err := l.QueueUpdate(func() {
		defer close(done)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-l.stopCh:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

const (
	timerPending int32 = iota
	timerFired
	timerStopped
)

// loopTimer posts its function to the loop when the wall-clock timer fires.
// The state check happens on the loop, so a Stop made on the loop always
// wins against a function that was already queued.
type loopTimer struct {
	t     *time.Timer
	state atomic.Int32
}

// AfterFunc schedules fn to run on the loop after d. It implements Scheduler.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{}
	lt.t = time.AfterFunc(d, func() {
		select {
		case l.queue <- func() {
			if lt.state.CompareAndSwap(timerPending, timerFired) {
				fn()
			}
		}:
		case <-l.stopCh:
		}
	})
	return lt
}

// Stop implements Timer.
func (lt *loopTimer) Stop() bool {
	if !lt.state.CompareAndSwap(timerPending, timerStopped) {
		return false
	}
	lt.t.Stop()
	return true
}

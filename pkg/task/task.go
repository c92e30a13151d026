// Package task provides the cross-thread scheduler the UI loop depends on.
//
// A Runner owns three independently locked queues: sync callbacks executed on
// the main thread during Drain, async tasks executed by a dedicated worker
// goroutine, and delayed callbacks gated on elapsed time. The queues are the
// only shared mutable state crossing the thread boundary; every drain swaps a
// queue out under its lock and runs the callbacks outside it, so a callback
// may safely submit new work for the next cycle.
package task

import (
	"sync"
	"time"

	"github.com/go-boreal/boreal/pkg/errors"
)

// Callback is a unit of scheduled work.
type Callback func()

// Clock abstracts time for the delay queue so tests can drive it.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock backed by time.Now.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// DefaultPollInterval is how long the worker sleeps between async queue polls.
const DefaultPollInterval = 500 * time.Millisecond

// delayOperation is one entry in the delay queue.
type delayOperation struct {
	start time.Time
	delay time.Duration
	fn    Callback
	id    uint64
}

// Runner is a thread-safe mailbox bridging a background worker with a
// single-threaded UI loop. The zero value is not usable; construct with
// NewRunner.
type Runner struct {
	clock        Clock
	pollInterval time.Duration

	syncMu    sync.Mutex
	syncQueue []Callback

	asyncMu    sync.Mutex
	asyncQueue []Callback

	delayMu    sync.Mutex
	delayQueue []delayOperation
	delayIndex uint64
	cancelled  map[uint64]struct{}

	workerMu sync.Mutex
	running  bool
	stop     chan struct{}
	done     chan struct{}
}

// NewRunner returns a stopped Runner with the system clock and the default
// worker poll interval.
func NewRunner() *Runner {
	return &Runner{
		clock:        systemClock{},
		pollInterval: DefaultPollInterval,
		cancelled:    make(map[uint64]struct{}),
	}
}

// SetClock replaces the clock used by the delay queue.
// Must be called before any Delay submission.
func (r *Runner) SetClock(clock Clock) {
	if clock != nil {
		r.clock = clock
	}
}

// SetPollInterval sets how long the worker sleeps between async polls.
// Must be called before Start.
func (r *Runner) SetPollInterval(interval time.Duration) {
	if interval > 0 {
		r.pollInterval = interval
	}
}

// Sync enqueues a callback to run on the main thread during the next Drain.
func (r *Runner) Sync(fn Callback) {
	if fn == nil {
		return
	}
	r.syncMu.Lock()
	r.syncQueue = append(r.syncQueue, fn)
	r.syncMu.Unlock()
}

// Async enqueues a fire-and-forget task for the background worker.
func (r *Runner) Async(fn Callback) {
	if fn == nil {
		return
	}
	r.asyncMu.Lock()
	r.asyncQueue = append(r.asyncQueue, fn)
	r.asyncMu.Unlock()
}

// Delay enqueues a callback to run on the main thread once the given duration
// has elapsed, and returns an identifier for CancelDelay. Identifiers are
// monotonically increasing and never reused.
func (r *Runner) Delay(delay time.Duration, fn Callback) uint64 {
	r.delayMu.Lock()
	defer r.delayMu.Unlock()
	r.delayIndex++
	r.delayQueue = append(r.delayQueue, delayOperation{
		start: r.clock.Now(),
		delay: delay,
		fn:    fn,
		id:    r.delayIndex,
	})
	return r.delayIndex
}

// CancelDelay marks a delayed callback as cancelled. Idempotent: unknown or
// already-fired identifiers are silently ignored. Cancellation is a
// best-effort marker, not a hard guarantee — a cancel racing the due-check
// may lose and the callback fires once.
func (r *Runner) CancelDelay(id uint64) {
	r.delayMu.Lock()
	r.cancelled[id] = struct{}{}
	r.delayMu.Unlock()
}

// Drain runs all pending sync callbacks, then all due delayed callbacks.
// It must be called from the main thread, once per frame. A callback that
// panics is reported and isolated; the remaining callbacks still run.
func (r *Runner) Drain() {
	r.syncMu.Lock()
	pending := r.syncQueue
	r.syncQueue = nil
	r.syncMu.Unlock()

	for _, fn := range pending {
		runIsolated("task.Runner.Drain", fn)
	}

	r.delayMu.Lock()
	delayed := r.delayQueue
	r.delayQueue = nil
	r.delayMu.Unlock()

	for _, op := range delayed {
		r.delayMu.Lock()
		if _, ok := r.cancelled[op.id]; ok {
			delete(r.cancelled, op.id)
			r.delayMu.Unlock()
			continue
		}
		r.delayMu.Unlock()

		if r.clock.Now().Sub(op.start) >= op.delay {
			runIsolated("task.Runner.Drain(delay)", op.fn)

			// A cancel submitted while the callback ran is now moot.
			r.delayMu.Lock()
			delete(r.cancelled, op.id)
			r.delayMu.Unlock()
		} else {
			r.delayMu.Lock()
			r.delayQueue = append(r.delayQueue, op)
			r.delayMu.Unlock()
		}
	}
}

// runIsolated executes one callback with panic isolation.
func runIsolated(op string, fn Callback) {
	if fn == nil {
		return
	}
	defer errors.Recover(op)
	fn()
}

// Start launches the background worker. Calling Start on a running Runner is
// a no-op.
func (r *Runner) Start() {
	r.workerMu.Lock()
	defer r.workerMu.Unlock()
	if r.running {
		return
	}
	r.running = true
	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	go r.workerLoop(r.stop, r.done)
}

// Stop signals the worker to exit and blocks until it has. Stopping an
// already-stopped Runner is a no-op.
func (r *Runner) Stop() {
	r.workerMu.Lock()
	if !r.running {
		r.workerMu.Unlock()
		return
	}
	r.running = false
	stop, done := r.stop, r.done
	r.workerMu.Unlock()

	close(stop)
	<-done
}

// workerLoop drains the async queue until stopped. Async task panics are not
// recovered: a misbehaving detached task has no context that could report a
// failure meaningfully, so it takes the process down.
func (r *Runner) workerLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		r.asyncMu.Lock()
		tasks := r.asyncQueue
		r.asyncQueue = nil
		r.asyncMu.Unlock()

		for _, fn := range tasks {
			fn()
		}

		select {
		case <-stop:
			return
		case <-time.After(r.pollInterval):
		}
	}
}

package task

import (
	"sync"
	"time"
)

var (
	defaultOnce   sync.Once
	defaultRunner *Runner
)

// Default returns the process-wide Runner. It is created on first use and is
// never duplicated; its worker lifecycle belongs to whoever drives the UI
// loop (Start at boot, Stop at shutdown).
func Default() *Runner {
	defaultOnce.Do(func() {
		defaultRunner = NewRunner()
	})
	return defaultRunner
}

// Sync enqueues a callback on the default Runner's sync queue.
func Sync(fn Callback) {
	Default().Sync(fn)
}

// Async enqueues a task on the default Runner's async queue.
func Async(fn Callback) {
	Default().Async(fn)
}

// Delay enqueues a delayed callback on the default Runner.
func Delay(delay time.Duration, fn Callback) uint64 {
	return Default().Delay(delay, fn)
}

// CancelDelay cancels a delayed callback on the default Runner.
func CancelDelay(id uint64) {
	Default().CancelDelay(id)
}

// Drain drains the default Runner. Main thread only.
func Drain() {
	Default().Drain()
}

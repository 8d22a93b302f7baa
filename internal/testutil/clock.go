// Package testutil provides deterministic helpers for harness tests.
package testutil

import (
	"sync"
	"time"
)

// SteppingClock is a fake time source that advances by a fixed step on
// every Now() call.
//
// A trial brackets one backend call with exactly two Now() reads, so with
// step s every trial measures a duration of exactly s. Tests use this to
// assert exact duration arithmetic without real-time flakiness.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex, though the harness itself only reads the clock sequentially.
type SteppingClock struct {
	mu    sync.Mutex
	now   time.Time
	step  time.Duration
	reads int
}

// NewSteppingClock creates a fake clock starting at start, advancing by
// step per Now() call. The first Now() returns start itself.
func NewSteppingClock(start time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{now: start, step: step}
}

// Now implements trial.Clock. Each call returns the current instant, then
// advances the clock by the configured step.
func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	c.reads++
	return t
}

// Reads returns how many times Now() has been called. Useful for asserting
// that the runner reads the clock exactly twice per trial.
func (c *SteppingClock) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

package trial

import "time"

// Clock abstracts the time source used to measure trial durations.
//
// Wall-clock sampling around a black-box call is inherently noisy, so the
// clock is injected rather than read from the time package directly. Tests
// substitute a stepping fake (internal/testutil) and assert exact duration
// arithmetic without real-time flakiness.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock. It is the default for production
// runs.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

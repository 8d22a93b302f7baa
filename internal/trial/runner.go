package trial

import (
	"context"
	"time"

	"github.com/roach88/parity/internal/backend"
)

// Record is the outcome of exactly one backend execution.
// Immutable after creation; owned by the sampler that produced it until
// reduced into summary statistics.
type Record struct {
	// Output is the vector the backend returned.
	Output []float64

	// Duration is the wall-clock time the backend call took.
	Duration time.Duration
}

// SampleSet is the ordered sequence of records gathered for one backend
// under one configuration. Its length always equals the configured trial
// count; a partially filled set is never returned.
type SampleSet []Record

// Runner executes single timed trials against a backend.
type Runner struct {
	clock Clock
}

// NewRunner creates a trial runner. A nil clock defaults to the system
// wall clock.
func NewRunner(clock Clock) *Runner {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Runner{clock: clock}
}

// Run invokes the backend's Execute exactly once and returns the record.
//
// The two clock reads bracket ONLY the backend call, never surrounding
// bookkeeping, so duration comparisons between backends stay fair. Errors
// from the backend propagate untouched; retry and classification are the
// caller's concern.
func (r *Runner) Run(ctx context.Context, b backend.Backend, input []float64, cfg backend.CircuitConfig) (Record, error) {
	start := r.clock.Now()
	out, err := b.Execute(ctx, input, cfg)
	elapsed := r.clock.Now().Sub(start)

	if err != nil {
		return Record{}, err
	}
	return Record{Output: out, Duration: elapsed}, nil
}

package trial

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/parity/internal/backend"
	"github.com/roach88/parity/internal/testutil"
)

// stubBackend is a scriptable backend for harness tests.
type stubBackend struct {
	name string
	fn   func(input []float64, cfg backend.CircuitConfig) ([]float64, error)
}

func (b *stubBackend) Name() string { return b.name }

func (b *stubBackend) Execute(_ context.Context, input []float64, cfg backend.CircuitConfig) ([]float64, error) {
	return b.fn(input, cfg)
}

// constantBackend always returns a copy of out with zero simulated latency.
func constantBackend(name string, out []float64) *stubBackend {
	return &stubBackend{name: name, fn: func([]float64, backend.CircuitConfig) ([]float64, error) {
		cp := make([]float64, len(out))
		copy(cp, out)
		return cp, nil
	}}
}

func TestRunner_MeasuresExactDuration(t *testing.T) {
	clock := testutil.NewSteppingClock(time.Unix(0, 0), 5*time.Millisecond)
	r := NewRunner(clock)

	rec, err := r.Run(context.Background(), constantBackend("stub", []float64{1}), nil, backend.CircuitConfig{})
	require.NoError(t, err)

	// Exactly two clock reads bracket the call, so the measured duration
	// is exactly one step.
	assert.Equal(t, 5*time.Millisecond, rec.Duration)
	assert.Equal(t, 2, clock.Reads())
}

func TestRunner_ReturnsBackendOutput(t *testing.T) {
	r := NewRunner(testutil.NewSteppingClock(time.Unix(0, 0), time.Millisecond))

	rec, err := r.Run(context.Background(), constantBackend("stub", []float64{0.25, 0.75}), nil, backend.CircuitConfig{})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.75}, rec.Output)
}

func TestRunner_PropagatesBackendError(t *testing.T) {
	boom := errors.New("device offline")
	failing := &stubBackend{name: "broken", fn: func([]float64, backend.CircuitConfig) ([]float64, error) {
		return nil, boom
	}}
	r := NewRunner(nil)

	_, err := r.Run(context.Background(), failing, nil, backend.CircuitConfig{})
	// The runner neither wraps nor retries; classification is the caller's job.
	assert.ErrorIs(t, err, boom)
}

func TestRunner_NilClockDefaultsToWallClock(t *testing.T) {
	r := NewRunner(nil)

	rec, err := r.Run(context.Background(), constantBackend("stub", []float64{1}), nil, backend.CircuitConfig{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rec.Duration, time.Duration(0))
}

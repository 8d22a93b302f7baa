package trial

import (
	"context"
	"io"
	"log/slog"

	"github.com/roach88/parity/internal/backend"
)

// Config describes one repeated-trial run: how many trials, what each
// trial is fed, and the circuit parameters threaded through to the backend.
type Config struct {
	// Trials is the repetition count N. Must be positive; typical runs
	// use 100, robustness sweeps as few as 30.
	Trials int

	// Policy supplies per-trial inputs. Nil means every trial runs with a
	// nil input vector (equivalent to a fixed all-default input).
	Policy InputPolicy

	// Circuit is passed verbatim to every backend call. The harness never
	// inspects it.
	Circuit backend.CircuitConfig
}

// validate rejects configurations before any trial runs.
func (c Config) validate() error {
	if c.Trials < 1 {
		return NewConfigError("trials must be >= 1, got %d", c.Trials)
	}
	return nil
}

// Sampler collects fixed-size sample sets by running trials strictly
// sequentially. One backend call completes fully before the next begins;
// overlapping calls would corrupt duration measurements relative to
// wall-clock backend cost.
type Sampler struct {
	runner *Runner
	logger *slog.Logger
}

// NewSampler creates a sampler. A nil runner gets a wall-clock default;
// a nil logger discards output (library callers opt in to logging).
func NewSampler(runner *Runner, logger *slog.Logger) *Sampler {
	if runner == nil {
		runner = NewRunner(nil)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Sampler{runner: runner, logger: logger}
}

// Sample runs cfg.Trials trials against b and returns the complete sample
// set.
//
// The configuration is validated up front; a non-positive trial count
// fails with CONFIG_INVALID before any backend call. If any trial fails,
// the in-progress sample set is abandoned and the error surfaces as
// BACKEND_FAILED with the trial index attached. There are no retries.
func (s *Sampler) Sample(ctx context.Context, b backend.Backend, cfg Config) (SampleSet, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	policy := cfg.Policy
	if policy == nil {
		policy = NewFixedInput(nil)
	}

	set := make(SampleSet, 0, cfg.Trials)
	for i := 0; i < cfg.Trials; i++ {
		input := policy.Next()

		rec, err := s.runner.Run(ctx, b, input, cfg.Circuit)
		if err != nil {
			return nil, NewBackendError(b.Name(), i, err)
		}
		set = append(set, rec)

		s.logger.Debug("trial completed",
			"backend", b.Name(),
			"trial", i,
			"duration", rec.Duration,
			"output_len", len(rec.Output),
		)
	}

	s.logger.Info("sample set collected",
		"backend", b.Name(),
		"trials", cfg.Trials,
	)
	return set, nil
}

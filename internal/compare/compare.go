// Package compare runs the sampler/reducer pipeline once per backend and
// assembles the resulting comparison record.
//
// The reporter draws no conclusions: it performs no significance testing
// and never ranks backends. Rendering the record (text, JSON, storage) is
// the job of internal/report and internal/store.
package compare

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roach88/parity/internal/backend"
	"github.com/roach88/parity/internal/stats"
	"github.com/roach88/parity/internal/trial"
)

// Comparison maps backend names to their summary statistics for one run.
type Comparison struct {
	// Name labels the run, usually the experiment name.
	Name string `json:"name"`

	// RunID is a UUIDv7 identifying this run in logs and run history.
	// Time-ordered IDs keep the history table naturally sorted.
	RunID string `json:"run_id"`

	// Trials is the repetition count shared by every backend in the run.
	Trials int `json:"trials"`

	// Results holds one summary per backend, keyed by backend name.
	Results map[string]stats.Summary `json:"results"`

	// Order preserves the backend sequence the run was configured with,
	// since Results is an unordered map.
	Order []string `json:"order"`
}

// Reporter runs comparisons across a set of backends.
type Reporter struct {
	sampler *trial.Sampler
	logger  *slog.Logger
}

// NewReporter creates a reporter. Nil arguments get quiet, wall-clock
// defaults, mirroring trial.NewSampler.
func NewReporter(sampler *trial.Sampler, logger *slog.Logger) *Reporter {
	if sampler == nil {
		sampler = trial.NewSampler(nil, nil)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reporter{sampler: sampler, logger: logger}
}

// Run executes the sampler/reducer pipeline once per backend under the
// shared configuration and returns the assembled comparison record.
//
// All backends see the SAME policy instance from cfg: with a fixed-input
// policy this hands byte-identical input vectors to every backend, which
// is what makes the comparison fair. Any failure aborts the whole run;
// a comparison is never partially reported.
func (r *Reporter) Run(ctx context.Context, name string, backends []backend.Backend, cfg trial.Config) (*Comparison, error) {
	if len(backends) == 0 {
		return nil, trial.NewConfigError("at least one backend is required")
	}
	seen := make(map[string]bool, len(backends))
	for _, b := range backends {
		if seen[b.Name()] {
			return nil, trial.NewConfigError("duplicate backend name %q", b.Name())
		}
		seen[b.Name()] = true
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate run id: %w", err)
	}

	comp := &Comparison{
		Name:    name,
		RunID:   id.String(),
		Trials:  cfg.Trials,
		Results: make(map[string]stats.Summary, len(backends)),
		Order:   make([]string, 0, len(backends)),
	}

	for _, b := range backends {
		r.logger.Info("sampling backend", "run_id", comp.RunID, "backend", b.Name(), "trials", cfg.Trials)

		set, err := r.sampler.Sample(ctx, b, cfg)
		if err != nil {
			return nil, err
		}
		summary, err := stats.Reduce(set)
		if err != nil {
			return nil, err
		}

		comp.Results[b.Name()] = summary
		comp.Order = append(comp.Order, b.Name())

		r.logger.Info("backend summarized",
			"run_id", comp.RunID,
			"backend", b.Name(),
			"mean_duration", summary.MeanDuration,
		)
	}

	return comp, nil
}

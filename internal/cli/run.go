package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/parity/internal/backend"
	"github.com/roach88/parity/internal/compare"
	"github.com/roach88/parity/internal/experiment"
	"github.com/roach88/parity/internal/report"
	"github.com/roach88/parity/internal/store"
	"github.com/roach88/parity/internal/trial"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Database string
	Seed     int64
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <experiment.yaml>",
		Short: "Run a comparison experiment",
		Long: `Run a repeated-trial comparison across the backends named in the
experiment file, then print the comparison record.

Trials execute strictly sequentially so wall-clock timings stay comparable
across backends. Any backend failure aborts the whole run; a comparison is
never partially reported.

Example:
  parity run experiments/stochasticity.yaml
  parity run experiments/robustness.yaml --db ./parity.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComparison(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database for run history (optional)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "override the experiment's random seed")

	return cmd
}

func runComparison(opts *RunOptions, path string, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(handler)

	exp, err := experiment.Load(path)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load experiment", err)
	}

	// One seeded source drives both the uniform input policy and any
	// stochastic backend, so a (file, seed) pair replays exactly.
	seed := exp.Seed
	if opts.Seed != 0 {
		seed = opts.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("run configured", "experiment", exp.Name, "trials", exp.Trials, "seed", seed)
	rng := rand.New(rand.NewSource(seed))

	backends := make([]backend.Backend, 0, len(exp.Backends))
	for _, name := range exp.Backends {
		b, err := backend.New(name, rng)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to construct backend", err)
		}
		backends = append(backends, b)
	}

	policy, err := exp.Policy(rng)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to construct input policy", err)
	}

	cfg := trial.Config{
		Trials:  exp.Trials,
		Policy:  policy,
		Circuit: exp.CircuitConfig(),
	}

	reporter := compare.NewReporter(trial.NewSampler(nil, logger), logger)
	comp, err := reporter.Run(cmd.Context(), exp.Name, backends, cfg)
	if err != nil {
		return WrapExitError(ExitFailure, "comparison run failed", err)
	}

	if opts.Database != "" {
		if err := persistRun(cmd, opts.Database, comp, exp); err != nil {
			return err
		}
		logger.Info("run persisted", "db", opts.Database, "run_id", comp.RunID)
	}

	switch opts.Format {
	case "json":
		return report.RenderJSON(cmd.OutOrStdout(), comp)
	default:
		return report.RenderText(cmd.OutOrStdout(), comp)
	}
}

// persistRun records the finished comparison in the history database.
func persistRun(cmd *cobra.Command, path string, comp *compare.Comparison, exp *experiment.Experiment) error {
	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	configJSON, err := json.Marshal(exp)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to encode experiment config", err)
	}
	if err := st.WriteComparison(cmd.Context(), comp, string(configJSON)); err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("failed to persist run %s", comp.RunID), err)
	}
	return nil
}

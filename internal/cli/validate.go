package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/parity/internal/experiment"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <experiment.yaml>",
		Short: "Validate an experiment file without running it",
		Long: `Check an experiment file against the embedded schema.

Validation covers strict YAML decoding (unknown fields are rejected), the
CUE schema (field types and ranges, input policy shape), and cross-field
rules such as low < high for the uniform policy.

Exit codes: 0 valid, 1 invalid, 2 file not readable.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateExperiment(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func validateExperiment(opts *RootOptions, path string, cmd *cobra.Command) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read experiment file", err)
	}

	exp, err := experiment.Parse(path, data)
	if err != nil {
		return WrapExitError(ExitFailure, "experiment is invalid", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (%d trials, backends: %v)\n",
		exp.Name, exp.Trials, exp.Backends)
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/parity/internal/report"
	"github.com/roach88/parity/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	Show     string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List persisted comparison runs",
		Long: `List runs recorded with 'parity run --db', newest first.

Use --show <run-id> to print one run's full comparison record instead of
the listing.

Example:
  parity history --db ./parity.db
  parity history --db ./parity.db --show 0190a3c2-... --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum runs to list (0 for all)")
	cmd.Flags().StringVar(&opts.Show, "show", "", "print the full record for one run id")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func showHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	if opts.Show != "" {
		comp, err := st.GetComparison(cmd.Context(), opts.Show)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load run", err)
		}
		if opts.Format == "json" {
			return report.RenderJSON(cmd.OutOrStdout(), comp)
		}
		return report.RenderText(cmd.OutOrStdout(), comp)
	}

	runs, err := st.ListRuns(cmd.Context(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-20s  trials=%-6d backends=%v  %s\n",
			r.ID, r.Name, r.Trials, r.Backends, r.CreatedAt)
	}
	return nil
}

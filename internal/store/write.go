package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/roach88/parity/internal/compare"
)

// WriteComparison inserts one run row plus one summary row per backend,
// atomically. configJSON is the experiment definition serialized by the
// caller; it is stored verbatim so a history entry is self-describing.
//
// Run IDs are unique; writing the same comparison twice returns an error
// rather than silently overwriting history.
func (s *Store) WriteComparison(ctx context.Context, c *compare.Comparison, configJSON string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write comparison: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, name, trials, config)
		VALUES (?, ?, ?, ?)
	`, c.RunID, c.Name, c.Trials, configJSON)
	if err != nil {
		return fmt.Errorf("write run %s: %w", c.RunID, err)
	}

	for pos, name := range c.Order {
		summary, ok := c.Results[name]
		if !ok {
			return fmt.Errorf("write run %s: no summary for backend %q", c.RunID, name)
		}

		meanJSON, err := json.Marshal(summary.Mean)
		if err != nil {
			return fmt.Errorf("write run %s: marshal mean: %w", c.RunID, err)
		}
		stdJSON, err := json.Marshal(summary.Std)
		if err != nil {
			return fmt.Errorf("write run %s: marshal std: %w", c.RunID, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO summaries
			(run_id, backend, mean, std, mean_duration_ns, std_duration_ns, trials, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			c.RunID,
			name,
			string(meanJSON),
			string(stdJSON),
			int64(summary.MeanDuration),
			int64(summary.StdDuration),
			summary.Trials,
			pos,
		)
		if err != nil {
			return fmt.Errorf("write summary %s/%s: %w", c.RunID, name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write comparison: %w", err)
	}
	return nil
}

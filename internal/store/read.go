package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/roach88/parity/internal/compare"
	"github.com/roach88/parity/internal/stats"
)

// RunInfo is one row of the run history listing.
type RunInfo struct {
	ID        string
	Name      string
	Trials    int
	Backends  []string
	CreatedAt string
}

// ListRuns returns the most recent runs, newest first, up to limit.
// A non-positive limit returns everything.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunInfo, error) {
	query := `
		SELECT r.id, r.name, r.trials, r.created_at
		FROM runs r
		ORDER BY r.id DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, query+" LIMIT ?", limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var info RunInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Trials, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		backends, err := s.runBackends(ctx, info.ID)
		if err != nil {
			return nil, err
		}
		info.Backends = backends
		runs = append(runs, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// GetComparison reconstructs a full comparison record from history.
func (s *Store) GetComparison(ctx context.Context, runID string) (*compare.Comparison, error) {
	comp := &compare.Comparison{
		RunID:   runID,
		Results: make(map[string]stats.Summary),
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT name, trials FROM runs WHERE id = ?
	`, runID).Scan(&comp.Name, &comp.Trials)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", runID, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT backend, mean, std, mean_duration_ns, std_duration_ns, trials
		FROM summaries
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("get summaries %s: %w", runID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			backendName         string
			meanJSON, stdJSON   string
			meanDurNS, stdDurNS int64
			trials              int
		)
		if err := rows.Scan(&backendName, &meanJSON, &stdJSON, &meanDurNS, &stdDurNS, &trials); err != nil {
			return nil, fmt.Errorf("get summaries %s: %w", runID, err)
		}

		var summary stats.Summary
		if err := json.Unmarshal([]byte(meanJSON), &summary.Mean); err != nil {
			return nil, fmt.Errorf("get summaries %s: unmarshal mean: %w", runID, err)
		}
		if err := json.Unmarshal([]byte(stdJSON), &summary.Std); err != nil {
			return nil, fmt.Errorf("get summaries %s: unmarshal std: %w", runID, err)
		}
		summary.MeanDuration = time.Duration(meanDurNS)
		summary.StdDuration = time.Duration(stdDurNS)
		summary.Trials = trials

		comp.Results[backendName] = summary
		comp.Order = append(comp.Order, backendName)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get summaries %s: %w", runID, err)
	}
	return comp, nil
}

// runBackends returns the backend names of a run in position order.
func (s *Store) runBackends(ctx context.Context, runID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT backend FROM summaries WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("run backends %s: %w", runID, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("run backends %s: %w", runID, err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

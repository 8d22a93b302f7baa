// Package stats reduces sample sets to summary statistics.
//
// The reduction is deliberately fixed to the population convention
// (divide by N, not N-1): the N trials of a run ARE the population under
// test, not a sample from a larger one. Switching to the sample estimator
// would silently change results at small N.
package stats

import (
	"math"
	"time"

	"github.com/roach88/parity/internal/trial"
)

// Summary is the mean/standard-deviation reduction of one sample set.
// It is derived deterministically from the set and has no lifecycle of
// its own.
type Summary struct {
	// Mean is the element-wise arithmetic mean of the output vectors.
	// Scalar-output backends simply produce length-1 vectors here; there
	// is no scalar special case.
	Mean []float64 `json:"mean"`

	// Std is the element-wise population standard deviation of the
	// output vectors.
	Std []float64 `json:"std"`

	// MeanDuration and StdDuration summarize per-trial wall-clock cost.
	MeanDuration time.Duration `json:"mean_duration_ns"`
	StdDuration  time.Duration `json:"std_duration_ns"`

	// Trials is the sample set size the summary was reduced from.
	Trials int `json:"trials"`
}

// Reduce computes summary statistics over a complete sample set.
//
// Every record must have the same output length; a mismatch is a
// data-integrity error (SHAPE_MISMATCH) and is never silently coerced by
// truncation or padding. An empty set is a configuration error: there is
// nothing meaningful to reduce.
func Reduce(set trial.SampleSet) (Summary, error) {
	if len(set) == 0 {
		return Summary{}, trial.NewConfigError("cannot reduce an empty sample set")
	}

	dim := len(set[0].Output)
	for i, rec := range set {
		if len(rec.Output) != dim {
			return Summary{}, trial.NewShapeError(dim, len(rec.Output), i)
		}
	}

	n := float64(len(set))

	mean := make([]float64, dim)
	for _, rec := range set {
		for j, v := range rec.Output {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= n
	}

	std := make([]float64, dim)
	for _, rec := range set {
		for j, v := range rec.Output {
			d := v - mean[j]
			std[j] += d * d
		}
	}
	for j := range std {
		std[j] = math.Sqrt(std[j] / n)
	}

	var durMean float64
	for _, rec := range set {
		durMean += float64(rec.Duration)
	}
	durMean /= n

	var durVar float64
	for _, rec := range set {
		d := float64(rec.Duration) - durMean
		durVar += d * d
	}
	durVar /= n

	return Summary{
		Mean:         mean,
		Std:          std,
		MeanDuration: time.Duration(durMean),
		StdDuration:  time.Duration(math.Sqrt(durVar)),
		Trials:       len(set),
	}, nil
}

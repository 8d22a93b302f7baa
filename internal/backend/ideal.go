package backend

import (
	"context"
	"fmt"
	"math"
)

// Ideal is the noiseless reference simulator.
//
// It computes exact per-qubit expectation values analytically: for each
// qubit the accumulated rotation angle theta yields <Z> = cos(theta),
// attenuated by the depolarizing noise level. Given identical input and
// config it always produces identical output, which makes it the fixed
// point the stochastic backends are measured against.
type Ideal struct{}

// NewIdeal creates the deterministic expectation-value backend.
func NewIdeal() *Ideal {
	return &Ideal{}
}

// Name implements Backend.
func (b *Ideal) Name() string { return "ideal" }

// Execute implements Backend.
//
// The output has one element per qubit. A nil input is treated as all-zero
// angles, producing the all-ones vector at noise zero.
func (b *Ideal) Execute(ctx context.Context, input []float64, cfg CircuitConfig) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ideal: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]float64, cfg.Qubits)
	for q := range out {
		// Depolarizing noise shrinks the Bloch vector uniformly.
		out[q] = (1 - cfg.Noise) * math.Cos(angle(input, q, cfg.Depth))
	}
	return out, nil
}

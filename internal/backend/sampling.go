package backend

import (
	"context"
	"fmt"
	"math"
	"math/rand"
)

// Sampling is the stochastic shot-based simulator.
//
// Instead of returning exact expectation values it draws cfg.Shots
// measurement samples per qubit and estimates <Z> from the observed
// frequencies, so its output carries genuine sampling noise on top of the
// configured depolarizing noise. With the same seeded rand source the full
// sample sequence is reproducible.
//
// Randomness is injected at construction rather than taken from the global
// source, so repeated-trial runs can be replayed deterministically.
type Sampling struct {
	rng *rand.Rand
}

// NewSampling creates a shot-sampling backend driven by rng.
// A nil rng is rejected at Execute time rather than papered over with a
// hidden global source.
func NewSampling(rng *rand.Rand) *Sampling {
	return &Sampling{rng: rng}
}

// Name implements Backend.
func (b *Sampling) Name() string { return "sampling" }

// Execute implements Backend.
func (b *Sampling) Execute(ctx context.Context, input []float64, cfg CircuitConfig) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sampling: %w", err)
	}
	if b.rng == nil {
		return nil, fmt.Errorf("sampling: no random source configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]float64, cfg.Qubits)
	for q := range out {
		// Probability of measuring |1> on this qubit, mixed toward 0.5
		// by depolarizing noise.
		p1 := (1 - math.Cos(angle(input, q, cfg.Depth))) / 2
		p1 = (1-cfg.Noise)*p1 + cfg.Noise*0.5

		ones := 0
		for s := 0; s < cfg.Shots; s++ {
			if b.rng.Float64() < p1 {
				ones++
			}
		}
		// <Z> estimate from shot frequencies: (+1 for |0>, -1 for |1>).
		out[q] = 1 - 2*float64(ones)/float64(cfg.Shots)
	}
	return out, nil
}

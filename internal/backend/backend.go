// Package backend defines the simulator capability consumed by the trial
// harness, plus the two reference implementations that ship with parity.
//
// A Backend exposes exactly one operation: Execute. The harness never
// inspects circuit parameters or output semantics; it only threads inputs
// through and collects output vectors. Everything a backend needs to know
// about the circuit arrives in CircuitConfig, and it is the backend's job
// to reject configurations it cannot run.
package backend

import (
	"context"
	"fmt"
	"math/rand"
)

// CircuitConfig carries the circuit parameters for a single execution.
// The harness treats these as opaque; validation happens inside Execute.
type CircuitConfig struct {
	// Qubits is the circuit width. Output vectors have one element per qubit.
	Qubits int

	// Shots is the number of measurement samples a sampling backend draws.
	// Deterministic backends ignore it but still require it to be positive,
	// so the same config is valid against every backend in a comparison.
	Shots int

	// Depth is the number of rotation layers applied before measurement.
	Depth int

	// Noise is the depolarizing noise level in [0, 1]. Zero means noiseless.
	Noise float64
}

// Validate checks that the configuration is runnable.
func (c CircuitConfig) Validate() error {
	if c.Qubits < 1 {
		return fmt.Errorf("qubits must be >= 1, got %d", c.Qubits)
	}
	if c.Shots < 1 {
		return fmt.Errorf("shots must be >= 1, got %d", c.Shots)
	}
	if c.Depth < 0 {
		return fmt.Errorf("depth must be >= 0, got %d", c.Depth)
	}
	if c.Noise < 0 || c.Noise > 1 {
		return fmt.Errorf("noise must be in [0, 1], got %g", c.Noise)
	}
	return nil
}

// Backend is the single-operation capability the harness compares.
//
// Execute maps an optional input vector (rotation angles; nil means all
// zeros) to an output vector of per-qubit expectation values. The context
// is threaded through so long-running implementations may honor
// cancellation; the harness itself imposes no deadline.
//
// Implementations must be deterministic functions of (input, cfg) plus any
// randomness source they were constructed with. They must not retain or
// mutate the input slice.
type Backend interface {
	// Name identifies the backend in comparison records and run history.
	Name() string

	Execute(ctx context.Context, input []float64, cfg CircuitConfig) ([]float64, error)
}

// New constructs a registered backend by name.
//
// The rng seeds stochastic backends; deterministic backends ignore it.
// Experiment files select backends by these names.
func New(name string, rng *rand.Rand) (Backend, error) {
	switch name {
	case "ideal":
		return NewIdeal(), nil
	case "sampling":
		return NewSampling(rng), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (known: ideal, sampling)", name)
	}
}

// angle returns the accumulated rotation angle for qubit q.
//
// Each depth layer folds in one input element, striding through the input
// so that every qubit sees a different slice of it. Both reference
// backends share this circuit model so their outputs are comparable.
func angle(input []float64, q, depth int) float64 {
	if len(input) == 0 {
		return 0
	}
	var theta float64
	for d := 0; d <= depth; d++ {
		theta += input[(q+d)%len(input)]
	}
	return theta
}

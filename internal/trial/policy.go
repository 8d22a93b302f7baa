package trial

import "math/rand"

// InputPolicy decides what input vector each trial receives.
//
// The sampler does not interpret inputs; it threads the vector returned by
// Next unchanged into the backend call. Policies are stateful (the uniform
// policy advances its random source on every call) and are NOT safe for
// concurrent use, which matches the strictly sequential trial model.
type InputPolicy interface {
	// Next returns the input for the upcoming trial. Callers must not
	// mutate the returned slice.
	Next() []float64
}

// FixedInput feeds the same vector to every trial.
//
// Sharing one FixedInput instance across backends guarantees both see
// byte-identical inputs, which is what makes a fixed-input comparison fair.
// A nil vector is valid and means the backend runs with its default input.
type FixedInput struct {
	vec []float64
}

// NewFixedInput creates a fixed-input policy. The vector is copied so later
// mutation by the caller cannot skew trials.
func NewFixedInput(vec []float64) *FixedInput {
	if vec == nil {
		return &FixedInput{}
	}
	cp := make([]float64, len(vec))
	copy(cp, vec)
	return &FixedInput{vec: cp}
}

// Next implements InputPolicy. Every call returns the same slice.
func (p *FixedInput) Next() []float64 {
	return p.vec
}

// UniformInput draws a fresh vector per trial, each element uniform over
// [Low, High). Used to probe robustness across the input domain rather
// than backend stochasticity at a single point.
//
// The random source is passed in explicitly so runs are reproducible from
// a seed; there is no fallback to the global rand.
type UniformInput struct {
	low, high float64
	dim       int
	rng       *rand.Rand
}

// NewUniformInput creates a fresh-random-input policy of the given
// dimension over [low, high).
func NewUniformInput(low, high float64, dim int, rng *rand.Rand) *UniformInput {
	return &UniformInput{low: low, high: high, dim: dim, rng: rng}
}

// Next implements InputPolicy. Each call draws a new vector.
func (p *UniformInput) Next() []float64 {
	vec := make([]float64, p.dim)
	for i := range vec {
		vec[i] = p.low + p.rng.Float64()*(p.high-p.low)
	}
	return vec
}

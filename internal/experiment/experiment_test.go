package experiment

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/parity/internal/backend"
	"github.com/roach88/parity/internal/trial"
)

const validFixed = `
name: stochasticity
description: "Fixed input, stochastic backend spread"
trials: 100
seed: 42
backends: [ideal, sampling]
input:
  policy: fixed
  vector: [0.1, 0.2, 0.3]
circuit:
  qubits: 3
  shots: 1000
  depth: 2
  noise: 0.05
`

const validUniform = `
name: robustness
trials: 30
backends: [ideal, sampling]
input:
  policy: uniform
  low: 0.0
  high: 3.14
  dim: 4
circuit:
  qubits: 4
  shots: 500
  depth: 1
  noise: 0
`

func TestParse_ValidFixed(t *testing.T) {
	exp, err := Parse("test.yaml", []byte(validFixed))
	require.NoError(t, err)

	assert.Equal(t, "stochasticity", exp.Name)
	assert.Equal(t, 100, exp.Trials)
	assert.Equal(t, int64(42), exp.Seed)
	assert.Equal(t, []string{"ideal", "sampling"}, exp.Backends)
	assert.Equal(t, PolicyFixed, exp.Input.Policy)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, exp.Input.Vector)
	assert.Equal(t, backend.CircuitConfig{Qubits: 3, Shots: 1000, Depth: 2, Noise: 0.05}, exp.CircuitConfig())
}

func TestParse_ValidUniform(t *testing.T) {
	exp, err := Parse("test.yaml", []byte(validUniform))
	require.NoError(t, err)

	assert.Equal(t, PolicyUniform, exp.Input.Policy)
	assert.Equal(t, 4, exp.Input.Dim)
	assert.InDelta(t, 3.14, exp.Input.High, 1e-12)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validUniform), 0644))

	exp, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "robustness", exp.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/exp.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read experiment file")
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	content := `
name: typo
trials: 10
backends: [ideal]
input: {policy: fixed}
circuit: {qubits: 1, shots: 1, depth: 0, noise: 0}
assertion: oops
`
	_, err := Parse("test.yaml", []byte(content))
	require.Error(t, err)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero trials", `
name: bad
trials: 0
backends: [ideal]
input: {policy: fixed}
circuit: {qubits: 1, shots: 1, depth: 0, noise: 0}
`},
		{"missing backends", `
name: bad
trials: 10
backends: []
input: {policy: fixed}
circuit: {qubits: 1, shots: 1, depth: 0, noise: 0}
`},
		{"noise out of range", `
name: bad
trials: 10
backends: [ideal]
input: {policy: fixed}
circuit: {qubits: 1, shots: 1, depth: 0, noise: 1.5}
`},
		{"unknown policy", `
name: bad
trials: 10
backends: [ideal]
input: {policy: gaussian}
circuit: {qubits: 1, shots: 1, depth: 0, noise: 0}
`},
		{"uniform missing dim", `
name: bad
trials: 10
backends: [ideal]
input: {policy: uniform, low: 0, high: 1}
circuit: {qubits: 1, shots: 1, depth: 0, noise: 0}
`},
		{"empty name", `
name: ""
trials: 10
backends: [ideal]
input: {policy: fixed}
circuit: {qubits: 1, shots: 1, depth: 0, noise: 0}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test.yaml", []byte(tt.content))
			require.Error(t, err)
		})
	}
}

func TestParse_CrossFieldRules(t *testing.T) {
	lowHigh := `
name: bad
trials: 10
backends: [ideal]
input: {policy: uniform, low: 2.0, high: 1.0, dim: 2}
circuit: {qubits: 1, shots: 1, depth: 0, noise: 0}
`
	_, err := Parse("test.yaml", []byte(lowHigh))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "less than high")

	dup := `
name: bad
trials: 10
backends: [ideal, ideal]
input: {policy: fixed}
circuit: {qubits: 1, shots: 1, depth: 0, noise: 0}
`
	_, err = Parse("test.yaml", []byte(dup))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestPolicy_Construction(t *testing.T) {
	fixed, err := Parse("test.yaml", []byte(validFixed))
	require.NoError(t, err)
	p, err := fixed.Policy(nil)
	require.NoError(t, err)
	assert.IsType(t, &trial.FixedInput{}, p)

	uniform, err := Parse("test.yaml", []byte(validUniform))
	require.NoError(t, err)
	p, err = uniform.Policy(rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.IsType(t, &trial.UniformInput{}, p)

	// Uniform without a random source is an explicit error, not a hidden
	// fall back to the global generator.
	_, err = uniform.Policy(nil)
	require.Error(t, err)
}

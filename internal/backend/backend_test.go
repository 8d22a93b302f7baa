package backend

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() CircuitConfig {
	return CircuitConfig{Qubits: 2, Shots: 100, Depth: 1, Noise: 0}
}

func TestCircuitConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     CircuitConfig
		wantErr string
	}{
		{"valid", CircuitConfig{Qubits: 1, Shots: 1, Depth: 0, Noise: 0}, ""},
		{"zero qubits", CircuitConfig{Qubits: 0, Shots: 1}, "qubits"},
		{"zero shots", CircuitConfig{Qubits: 1, Shots: 0}, "shots"},
		{"negative depth", CircuitConfig{Qubits: 1, Shots: 1, Depth: -1}, "depth"},
		{"noise above one", CircuitConfig{Qubits: 1, Shots: 1, Noise: 1.5}, "noise"},
		{"negative noise", CircuitConfig{Qubits: 1, Shots: 1, Noise: -0.1}, "noise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNew_KnownBackends(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	ideal, err := New("ideal", rng)
	require.NoError(t, err)
	assert.Equal(t, "ideal", ideal.Name())

	sampling, err := New("sampling", rng)
	require.NoError(t, err)
	assert.Equal(t, "sampling", sampling.Name())
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New("quantum-annealer", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
}

func TestIdeal_Deterministic(t *testing.T) {
	b := NewIdeal()
	ctx := context.Background()
	input := []float64{0.3, 1.1}

	first, err := b.Execute(ctx, input, validConfig())
	require.NoError(t, err)
	second, err := b.Execute(ctx, input, validConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestIdeal_NilInputIsAllOnes(t *testing.T) {
	b := NewIdeal()

	out, err := b.Execute(context.Background(), nil, validConfig())
	require.NoError(t, err)

	// Zero angles everywhere: cos(0) = 1 per qubit at noise zero.
	assert.Equal(t, []float64{1, 1}, out)
}

func TestIdeal_NoiseShrinksOutput(t *testing.T) {
	b := NewIdeal()
	cfg := validConfig()
	cfg.Noise = 0.5

	out, err := b.Execute(context.Background(), nil, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, out[0], 1e-12)
}

func TestIdeal_RejectsInvalidConfig(t *testing.T) {
	b := NewIdeal()
	_, err := b.Execute(context.Background(), nil, CircuitConfig{})
	require.Error(t, err)
}

func TestIdeal_HonorsCancellation(t *testing.T) {
	b := NewIdeal()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Execute(ctx, nil, validConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSampling_ReproducibleWithSeed(t *testing.T) {
	ctx := context.Background()
	input := []float64{0.7, 0.2}

	first, err := NewSampling(rand.New(rand.NewSource(42))).Execute(ctx, input, validConfig())
	require.NoError(t, err)
	second, err := NewSampling(rand.New(rand.NewSource(42))).Execute(ctx, input, validConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSampling_RequiresRandomSource(t *testing.T) {
	b := NewSampling(nil)
	_, err := b.Execute(context.Background(), nil, validConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "random source")
}

func TestSampling_ConvergesToIdeal(t *testing.T) {
	// With many shots the estimator should land close to the analytic value.
	cfg := CircuitConfig{Qubits: 1, Shots: 200000, Depth: 0, Noise: 0}
	input := []float64{1.0}

	ideal, err := NewIdeal().Execute(context.Background(), input, cfg)
	require.NoError(t, err)

	sampled, err := NewSampling(rand.New(rand.NewSource(7))).Execute(context.Background(), input, cfg)
	require.NoError(t, err)

	assert.InDelta(t, ideal[0], sampled[0], 0.01)
	assert.InDelta(t, math.Cos(1.0), sampled[0], 0.01)
}

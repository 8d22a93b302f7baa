package trial

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHarnessError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *HarnessError
		want string
	}{
		{"config", NewConfigError("trials must be >= 1, got %d", 0),
			"CONFIG_INVALID: trials must be >= 1, got 0"},
		{"backend with trial", NewBackendError("ideal", 7, errors.New("x")),
			"BACKEND_FAILED: backend execution failed (backend=ideal, trial=7)"},
		{"shape", NewShapeError(2, 3, 5),
			"SHAPE_MISMATCH: output length 3, want 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorPredicates_HandleWrapping(t *testing.T) {
	wrapped := fmt.Errorf("run failed: %w", NewConfigError("bad"))
	assert.True(t, IsConfigError(wrapped))
	assert.False(t, IsBackendError(wrapped))
	assert.False(t, IsShapeError(wrapped))

	assert.True(t, IsShapeError(fmt.Errorf("reduce: %w", NewShapeError(1, 2, 0))))
	assert.False(t, IsConfigError(errors.New("plain")))
}

func TestBackendError_UnwrapsToCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewBackendError("sampling", 0, cause)
	assert.ErrorIs(t, err, cause)
}

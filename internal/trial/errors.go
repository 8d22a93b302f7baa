package trial

import (
	"errors"
	"fmt"
)

// HarnessError represents an error raised by the comparison harness itself,
// as opposed to an error manufactured by a backend.
//
// Harness errors include:
//   - Invalid configuration: non-positive trial count, no backends, etc.
//   - Backend failure: a backend's Execute returned an error mid-run
//   - Shape mismatch: trial outputs in one sample set differ in length
//
// All harness errors are fatal to the comparison run in progress. They
// carry structured fields for diagnostics; the underlying cause (if any) is
// reachable through errors.Unwrap.
type HarnessError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Backend names the backend involved, when one is.
	Backend string

	// Trial is the zero-based index of the failing trial, or -1 when the
	// error is not tied to a particular trial.
	Trial int

	// Err is the underlying cause, if any.
	Err error
}

// ErrorCode categorizes harness errors.
type ErrorCode string

const (
	// ErrCodeConfigInvalid indicates the run was rejected before any trial
	// executed: non-positive trial count, missing policy, duplicate
	// backend names, and the like.
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	// ErrCodeBackendFailed indicates a backend's Execute call failed.
	// The sample set in progress is discarded, never partially reported.
	ErrCodeBackendFailed ErrorCode = "BACKEND_FAILED"

	// ErrCodeShapeMismatch indicates trial records within one sample set
	// have output vectors of differing length.
	ErrCodeShapeMismatch ErrorCode = "SHAPE_MISMATCH"
)

// Error implements the error interface.
func (e *HarnessError) Error() string {
	switch {
	case e.Backend != "" && e.Trial >= 0:
		return fmt.Sprintf("%s: %s (backend=%s, trial=%d)", e.Code, e.Message, e.Backend, e.Trial)
	case e.Backend != "":
		return fmt.Sprintf("%s: %s (backend=%s)", e.Code, e.Message, e.Backend)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap returns the underlying cause for errors.Is / errors.As chains.
func (e *HarnessError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is a CONFIG_INVALID harness error.
// Uses errors.As to handle wrapped errors.
func IsConfigError(err error) bool {
	var he *HarnessError
	return errors.As(err, &he) && he.Code == ErrCodeConfigInvalid
}

// IsBackendError reports whether err is a BACKEND_FAILED harness error.
func IsBackendError(err error) bool {
	var he *HarnessError
	return errors.As(err, &he) && he.Code == ErrCodeBackendFailed
}

// IsShapeError reports whether err is a SHAPE_MISMATCH harness error.
func IsShapeError(err error) bool {
	var he *HarnessError
	return errors.As(err, &he) && he.Code == ErrCodeShapeMismatch
}

// NewConfigError creates a HarnessError for an invalid run configuration.
func NewConfigError(format string, args ...any) *HarnessError {
	return &HarnessError{
		Code:    ErrCodeConfigInvalid,
		Message: fmt.Sprintf(format, args...),
		Trial:   -1,
	}
}

// NewBackendError creates a HarnessError for a failed backend execution.
func NewBackendError(backend string, trial int, err error) *HarnessError {
	return &HarnessError{
		Code:    ErrCodeBackendFailed,
		Message: "backend execution failed",
		Backend: backend,
		Trial:   trial,
		Err:     err,
	}
}

// NewShapeError creates a HarnessError for mismatched output shapes.
func NewShapeError(want, got, trial int) *HarnessError {
	return &HarnessError{
		Code:    ErrCodeShapeMismatch,
		Message: fmt.Sprintf("output length %d, want %d", got, want),
		Trial:   trial,
	}
}

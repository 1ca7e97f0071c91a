package epi

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrDomain indicates a parameter set outside its valid domain.
	ErrDomain = errors.New("epi: parameter outside valid domain")

	// ErrShape indicates mismatched or too-short series passed to an estimator.
	ErrShape = errors.New("epi: series shape mismatch")

	// ErrDivergence indicates a non-finite state produced during integration.
	ErrDivergence = errors.New("epi: state diverged (NaN or Inf detected)")

	// ErrGrid indicates a time grid that is not strictly increasing.
	ErrGrid = errors.New("epi: time grid not strictly increasing")
)

// StepError wraps an integration error with the step and time it occurred at.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}

package integrators

import (
	"fmt"

	"github.com/epiforge/vectorsim/internal/epi"
)

// New returns a fresh stepper by name. Steppers carry scratch state, so
// callers needing concurrency should construct one per goroutine.
func New(name string) (epi.Stepper, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "rk4":
		return NewRK4(), nil
	case "rk45":
		return NewRK45(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

// Names lists the registered stepper names.
func Names() []string {
	return []string{"euler", "rk4", "rk45"}
}

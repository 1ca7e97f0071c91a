package integrators

import "github.com/epiforge/vectorsim/internal/epi"

// Euler is the explicit first-order method. Kept for step-size comparisons;
// too inaccurate for production sweeps.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys epi.System, x epi.State, t, dt float64) epi.State {
	dx := sys.Derive(x, t)
	result := make(epi.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}

package epi

import "math"

// State is a vector of compartment populations.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Min returns the smallest component, 0 for an empty state.
func (s State) Min() float64 {
	if len(s) == 0 {
		return 0
	}
	min := s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// System is a continuous-time compartmental model dX/dt = f(X, t).
// Derive must be pure: no retained state, safe to call at arbitrary
// intermediate times and states between reported grid points.
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Stepper advances a system state by a single timestep.
type Stepper interface {
	Step(sys System, x State, t, dt float64) State
}

// AdaptiveStepper additionally supports error-controlled stepping.
type AdaptiveStepper interface {
	Stepper
	StepAdaptive(sys System, x State, t, dt, tol float64) (State, float64, error)
}

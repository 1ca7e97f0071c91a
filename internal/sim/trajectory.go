package sim

import "github.com/epiforge/vectorsim/internal/epi"

// Trajectory is the state of a system reported at each grid time point.
// It is built once by Integrate and not mutated afterwards.
type Trajectory struct {
	Times  []float64
	States []epi.State
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

// Last returns the state at the final time point.
func (tr *Trajectory) Last() epi.State {
	return tr.States[len(tr.States)-1]
}

// Series extracts one component across all time points.
func (tr *Trajectory) Series(component int) []float64 {
	out := make([]float64, len(tr.States))
	for i, s := range tr.States {
		out[i] = s[component]
	}
	return out
}

// At returns the state at grid index i.
func (tr *Trajectory) At(i int) epi.State { return tr.States[i] }

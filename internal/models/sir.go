package models

import (
	"fmt"

	"github.com/epiforge/vectorsim/internal/epi"
)

// SIR is a plain host-only compartmental model with direct transmission,
// useful as a sanity baseline next to the full host-vector system.
// State: [S, I, R].
type SIR struct {
	Beta  float64 // transmission rate
	Gamma float64 // recovery rate
	N     float64 // population size
}

func NewSIR(beta, gamma, n float64) (*SIR, error) {
	if beta < 0 || gamma < 0 {
		return nil, fmt.Errorf("%w: rates must be >= 0", epi.ErrDomain)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: population must be > 0, got %g", epi.ErrDomain, n)
	}
	return &SIR{Beta: beta, Gamma: gamma, N: n}, nil
}

func (m *SIR) StateDim() int { return 3 }

func (m *SIR) Derive(x epi.State, _ float64) epi.State {
	s, i := x[0], x[1]
	infect := m.Beta * s * i / m.N

	return epi.State{
		-infect,
		infect - m.Gamma*i,
		m.Gamma * i,
	}
}

func (m *SIR) DefaultState() epi.State {
	return epi.State{m.N - 1, 1, 0}
}

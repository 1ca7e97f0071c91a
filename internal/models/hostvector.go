package models

import (
	"fmt"

	"github.com/epiforge/vectorsim/internal/epi"
)

// Compartment indices of the host-vector state vector.
const (
	SH = iota // susceptible humans
	IH        // infected humans
	RH        // recovered humans
	SV        // susceptible vectors
	IV        // infected vectors

	HostVectorDim
)

// HostVector couples a human SIR compartment chain to a vector SI chain.
// Equations:
//
//	dSH = muH*NH - (betaH*b)/(NH+m)*SH*IV - muH*SH
//	dIH = (betaH*b)/(NH+m)*SH*IV - (muH+gammaH)*IH
//	dRH = gammaH*IH - muH*RH
//	dSV = A - (betaV*b)/(NH+m)*SV*IH - muV*SV
//	dIV = (betaV*b)/(NH+m)*SV*IH - muV*IV
type HostVector struct {
	p Params

	// contact rates precomputed from the validated denominator
	forceH float64
	forceV float64
}

// NewHostVector builds the model, rejecting parameter sets with negative
// rates or a zero contact denominator.
func NewHostVector(p Params) (*HostVector, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	den := p.HumanPopulation + p.Saturation
	return &HostVector{
		p:      p,
		forceH: p.BetaH * p.BitingRate / den,
		forceV: p.BetaV * p.BitingRate / den,
	}, nil
}

func (m *HostVector) StateDim() int { return HostVectorDim }

// Params returns a copy of the coefficient set.
func (m *HostVector) Params() Params { return m.p }

func (m *HostVector) Derive(x epi.State, _ float64) epi.State {
	sh, ih, rh, sv, iv := x[SH], x[IH], x[RH], x[SV], x[IV]
	p := m.p

	infectH := m.forceH * sh * iv
	infectV := m.forceV * sv * ih

	return epi.State{
		p.BirthDeathRate*p.HumanPopulation - infectH - p.BirthDeathRate*sh,
		infectH - (p.BirthDeathRate+p.RecoveryRate)*ih,
		p.RecoveryRate*ih - p.BirthDeathRate*rh,
		p.Recruitment - infectV - p.VectorDeathRate*sv,
		infectV - p.VectorDeathRate*iv,
	}
}

// DefaultState returns the canonical initial populations: a single infected
// human and a single infected vector seeded into otherwise susceptible pools.
func (m *HostVector) DefaultState() epi.State {
	return epi.State{100000, 1, 0, 4500, 1}
}

// GetParams exposes the coefficients by name.
func (m *HostVector) GetParams() map[string]float64 {
	p := m.p
	return map[string]float64{
		"mu_h":        p.BirthDeathRate,
		"beta_h":      p.BetaH,
		"biting_rate": p.BitingRate,
		"saturation":  p.Saturation,
		"mu_v":        p.VectorDeathRate,
		"beta_v":      p.BetaV,
		"n_h":         p.HumanPopulation,
		"gamma_h":     p.RecoveryRate,
		"recruitment": p.Recruitment,
	}
}

// SetParam replaces one named coefficient, revalidating the set.
func (m *HostVector) SetParam(name string, v float64) error {
	p := m.p
	switch name {
	case "mu_h":
		p.BirthDeathRate = v
	case "beta_h":
		p.BetaH = v
	case "biting_rate":
		p.BitingRate = v
	case "saturation":
		p.Saturation = v
	case "mu_v":
		p.VectorDeathRate = v
	case "beta_v":
		p.BetaV = v
	case "n_h":
		p.HumanPopulation = v
	case "gamma_h":
		p.RecoveryRate = v
	case "recruitment":
		p.Recruitment = v
	default:
		return fmt.Errorf("%w: unknown parameter %q", epi.ErrDomain, name)
	}

	next, err := NewHostVector(p)
	if err != nil {
		return err
	}
	*m = *next
	return nil
}

package models

import (
	"fmt"

	"github.com/epiforge/vectorsim/internal/epi"
)

// Params holds the named coefficients of the host-vector model.
// Rates are per day; populations are head counts.
type Params struct {
	// BirthDeathRate is the human natality/mortality rate muH.
	BirthDeathRate float64 `yaml:"mu_h"`
	// BetaH is the human-side transmission coefficient.
	BetaH float64 `yaml:"beta_h"`
	// BitingRate is the baseline vector biting rate b. Scenario sweeps
	// scale this by the unprotected fraction.
	BitingRate float64 `yaml:"biting_rate"`
	// Saturation is the offset m in the contact denominator NH+m.
	Saturation float64 `yaml:"saturation"`
	// VectorDeathRate is the vector mortality rate muV.
	VectorDeathRate float64 `yaml:"mu_v"`
	// BetaV is the vector-side transmission coefficient.
	BetaV float64 `yaml:"beta_v"`
	// HumanPopulation is the population size constant NH.
	HumanPopulation float64 `yaml:"n_h"`
	// RecoveryRate is the human recovery rate gammaH.
	RecoveryRate float64 `yaml:"gamma_h"`
	// Recruitment is the vector recruitment rate A.
	Recruitment float64 `yaml:"recruitment"`
}

// Validate checks the coefficient domain: all rates nonnegative, population
// positive, and a nonzero contact denominator NH+m.
func (p Params) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"mu_h", p.BirthDeathRate},
		{"beta_h", p.BetaH},
		{"biting_rate", p.BitingRate},
		{"saturation", p.Saturation},
		{"mu_v", p.VectorDeathRate},
		{"beta_v", p.BetaV},
		{"gamma_h", p.RecoveryRate},
		{"recruitment", p.Recruitment},
	}
	for _, c := range checks {
		if c.v < 0 {
			return fmt.Errorf("%w: %s = %g, must be >= 0", epi.ErrDomain, c.name, c.v)
		}
	}
	if p.HumanPopulation <= 0 {
		return fmt.Errorf("%w: n_h = %g, must be > 0", epi.ErrDomain, p.HumanPopulation)
	}
	if p.HumanPopulation+p.Saturation == 0 {
		return fmt.Errorf("%w: contact denominator n_h+saturation is zero", epi.ErrDomain)
	}
	return nil
}

// WithBitingRate returns a copy with the biting rate replaced.
func (p Params) WithBitingRate(b float64) Params {
	p.BitingRate = b
	return p
}

// DefaultParams returns the canonical dengue-like coefficient set.
func DefaultParams() Params {
	return Params{
		BirthDeathRate:  0.0000457,
		BetaH:           0.75,
		BitingRate:      0.5,
		Saturation:      0,
		VectorDeathRate: 0.25,
		BetaV:           1.0,
		HumanPopulation: 10000,
		RecoveryRate:    0.1428,
		Recruitment:     1250,
	}
}

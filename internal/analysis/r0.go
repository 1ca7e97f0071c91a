package analysis

import (
	"math"

	"github.com/epiforge/vectorsim/internal/epi"
	"github.com/epiforge/vectorsim/internal/models"
)

// BasicReproduction computes R0 for the host-vector model around the given
// initial populations, via the next-generation matrix of the two infected
// compartments:
//
//	R0 = sqrt( (betaH*b*SH0)/((NH+m)(muH+gammaH)) * (betaV*b*SV0)/((NH+m)*muV) )
//
// R0 > 1 predicts epidemic growth from a small seed.
func BasicReproduction(p models.Params, x0 epi.State) float64 {
	den := p.HumanPopulation + p.Saturation

	hostTerm := p.BetaH * p.BitingRate * x0[models.SH] / (den * (p.BirthDeathRate + p.RecoveryRate))
	vectorTerm := p.BetaV * p.BitingRate * x0[models.SV] / (den * p.VectorDeathRate)

	return math.Sqrt(hostTerm * vectorTerm)
}

// Package analysis derives summary statistics from sweep results. Nothing
// here feeds back into the core: every number is computed from a completed
// sweep.Result alone.
package analysis

import (
	"github.com/montanaflynn/stats"

	"github.com/epiforge/vectorsim/internal/models"
	"github.com/epiforge/vectorsim/internal/sweep"
)

// Summary condenses one scenario trajectory for tabular reporting.
type Summary struct {
	ScenarioValue      float64
	BitingRate         float64
	R0                 float64
	PeakInfectedHumans float64
	PeakDay            float64
	MeanInfectedHumans float64
	AttackRate         float64
	TotalInfected      float64
	InfectedHumanDays  float64
	InfectedVectorDays float64
}

// Summarize computes the per-scenario summary from a sweep result.
func Summarize(r sweep.Result) (Summary, error) {
	ih := r.Trajectory.Series(models.IH)

	peak, err := stats.Max(ih)
	if err != nil {
		return Summary{}, err
	}
	mean, err := stats.Mean(ih)
	if err != nil {
		return Summary{}, err
	}

	peakDay := r.Trajectory.Times[0]
	for i, v := range ih {
		if v == peak {
			peakDay = r.Trajectory.Times[i]
			break
		}
	}

	sh0 := r.Trajectory.States[0][models.SH]
	attack := 0.0
	if sh0 > 0 {
		attack = r.TotalInfected / sh0
	}

	return Summary{
		ScenarioValue:      r.Scenario.Value,
		BitingRate:         r.Scenario.Params.BitingRate,
		R0:                 BasicReproduction(r.Scenario.Params, r.Trajectory.States[0]),
		PeakInfectedHumans: peak,
		PeakDay:            peakDay,
		MeanInfectedHumans: mean,
		AttackRate:         attack,
		TotalInfected:      r.TotalInfected,
		InfectedHumanDays:  r.InfectedHumanDays,
		InfectedVectorDays: r.InfectedVectorDays,
	}, nil
}

// SummarizeAll maps Summarize over a whole sweep, preserving order.
func SummarizeAll(results []sweep.Result) ([]Summary, error) {
	out := make([]Summary, len(results))
	for i, r := range results {
		s, err := Summarize(r)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

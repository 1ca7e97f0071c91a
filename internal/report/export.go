package report

import (
	"encoding/json"
	"io"

	"github.com/epiforge/vectorsim/internal/models"
	"github.com/epiforge/vectorsim/internal/sweep"
)

type scenarioExport struct {
	Value              float64       `json:"value"`
	Params             models.Params `json:"params"`
	Times              []float64     `json:"times"`
	States             [][]float64   `json:"states"`
	InfectedHumanDays  float64       `json:"infected_human_days"`
	InfectedVectorDays float64       `json:"infected_vector_days"`
	TotalInfected      float64       `json:"total_infected"`
}

// ExportData is the JSON export shape for one whole sweep.
type ExportData struct {
	Integrator string           `json:"integrator"`
	BaseParams models.Params    `json:"base_params"`
	Scenarios  []scenarioExport `json:"scenarios"`
}

// ExportJSON writes the full sweep, trajectories included, as indented JSON.
func ExportJSON(w io.Writer, integrator string, base models.Params, results []sweep.Result) error {
	data := ExportData{
		Integrator: integrator,
		BaseParams: base,
		Scenarios:  make([]scenarioExport, 0, len(results)),
	}

	for _, r := range results {
		states := make([][]float64, len(r.Trajectory.States))
		for i, s := range r.Trajectory.States {
			states[i] = s
		}

		data.Scenarios = append(data.Scenarios, scenarioExport{
			Value:              r.Scenario.Value,
			Params:             r.Scenario.Params,
			Times:              r.Trajectory.Times,
			States:             states,
			InfectedHumanDays:  r.InfectedHumanDays,
			InfectedVectorDays: r.InfectedVectorDays,
			TotalInfected:      r.TotalInfected,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

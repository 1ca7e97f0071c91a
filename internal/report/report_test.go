package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/epiforge/vectorsim/internal/analysis"
	"github.com/epiforge/vectorsim/internal/epi"
	"github.com/epiforge/vectorsim/internal/models"
	"github.com/epiforge/vectorsim/internal/sim"
	"github.com/epiforge/vectorsim/internal/sweep"
)

func sampleResults() []sweep.Result {
	base := models.DefaultParams()
	return []sweep.Result{
		{
			Scenario: sweep.Scenario{Value: 0.5, Params: base.WithBitingRate(0.25)},
			Trajectory: &sim.Trajectory{
				Times:  []float64{0, 1, 2},
				States: []epi.State{{100000, 1, 0, 4500, 1}, {99998, 2, 0.1, 4550, 1.5}, {99995, 4, 0.4, 4600, 2.2}},
			},
			InfectedHumanDays:  4.5,
			InfectedVectorDays: 3.1,
			TotalInfected:      5,
		},
	}
}

func TestTable(t *testing.T) {
	summaries, err := analysis.SummarizeAll(sampleResults())
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Table(&buf, summaries); err != nil {
		t.Fatalf("table failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "TOTAL_INF") {
		t.Error("expected header row in table output")
	}
	if !strings.Contains(out, "0.50") {
		t.Error("expected scenario value in table output")
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected header plus one data row, got:\n%s", out)
	}
}

func TestPlot(t *testing.T) {
	out := Plot(sampleResults(), models.IH, 40, 5)

	if !strings.Contains(out, "infected humans, p=0.50") {
		t.Errorf("expected caption in plot output, got:\n%s", out)
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSON(&buf, "rk4", models.DefaultParams(), sampleResults()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if data.Integrator != "rk4" {
		t.Errorf("expected integrator rk4, got %s", data.Integrator)
	}
	if len(data.Scenarios) != 1 {
		t.Fatalf("expected 1 scenario, got %d", len(data.Scenarios))
	}
	if data.Scenarios[0].TotalInfected != 5 {
		t.Errorf("expected total infected 5, got %f", data.Scenarios[0].TotalInfected)
	}
	if len(data.Scenarios[0].States) != 3 {
		t.Errorf("expected 3 states, got %d", len(data.Scenarios[0].States))
	}
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/epiforge/vectorsim/internal/epi"
	"github.com/epiforge/vectorsim/internal/models"
	"github.com/epiforge/vectorsim/internal/sim"
	"github.com/epiforge/vectorsim/internal/sweep"
)

func sampleResults() []sweep.Result {
	base := models.DefaultParams()
	return []sweep.Result{
		{
			Scenario: sweep.Scenario{Value: 0, Params: base.WithBitingRate(0)},
			Trajectory: &sim.Trajectory{
				Times:  []float64{0, 1},
				States: []epi.State{{100000, 1, 0, 4500, 1}, {99996, 0.87, 0.14, 4625, 0.78}},
			},
			InfectedHumanDays:  0.93,
			InfectedVectorDays: 0.89,
			TotalInfected:      4,
		},
		{
			Scenario: sweep.Scenario{Value: 1, Params: base},
			Trajectory: &sim.Trajectory{
				Times:  []float64{0, 1},
				States: []epi.State{{100000, 1, 0, 4500, 1}, {99990, 6.5, 0.14, 4620, 3.1}},
			},
			InfectedHumanDays:  3.75,
			InfectedVectorDays: 2.05,
			TotalInfected:      10,
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("rk4", models.DefaultParams(), sampleResults())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Integrator != "rk4" {
		t.Errorf("expected integrator rk4, got %s", meta.Integrator)
	}
	if len(meta.Scenarios) != 2 {
		t.Fatalf("expected 2 scenario records, got %d", len(meta.Scenarios))
	}
	if meta.Scenarios[1].TotalInfected != 10 {
		t.Errorf("expected total infected 10, got %f", meta.Scenarios[1].TotalInfected)
	}
	if meta.Scenarios[0].BitingRate != 0 {
		t.Errorf("expected derived biting rate 0, got %f", meta.Scenarios[0].BitingRate)
	}
	if meta.Params.BitingRate != 0.5 {
		t.Errorf("expected base biting rate 0.5, got %f", meta.Params.BitingRate)
	}
}

func TestStoreLoadTrajectory(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	results := sampleResults()
	runID, err := st.Save("rk4", models.DefaultParams(), results)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	traj, err := st.LoadTrajectory(runID, 1)
	if err != nil {
		t.Fatalf("load trajectory failed: %v", err)
	}

	if traj.Len() != 2 {
		t.Fatalf("expected 2 points, got %d", traj.Len())
	}
	if len(traj.States[0]) != 5 {
		t.Errorf("expected 5 compartments, got %d", len(traj.States[0]))
	}
	if traj.States[1][1] != 6.5 {
		t.Errorf("expected IH 6.5, got %f", traj.States[1][1])
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save("rk4", models.DefaultParams(), sampleResults()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("rk4", models.DefaultParams(), sampleResults())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "scenario_00.csv", "scenario_01.csv"} {
		if _, err := os.Stat(filepath.Join(dir, runID, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

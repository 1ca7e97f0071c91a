// Package storage persists sweep runs under a data directory, one
// subdirectory per run: metadata.json with the derived scalars plus one
// trajectory CSV per scenario.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/epiforge/vectorsim/internal/epi"
	"github.com/epiforge/vectorsim/internal/models"
	"github.com/epiforge/vectorsim/internal/sim"
	"github.com/epiforge/vectorsim/internal/sweep"
)

var csvHeader = []string{"time", "sh", "ih", "rh", "sv", "iv"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// ScenarioRecord is the per-scenario slice of metadata.json.
type ScenarioRecord struct {
	Value              float64 `json:"value"`
	BitingRate         float64 `json:"biting_rate"`
	InfectedHumanDays  float64 `json:"infected_human_days"`
	InfectedVectorDays float64 `json:"infected_vector_days"`
	TotalInfected      float64 `json:"total_infected"`
}

type RunMetadata struct {
	ID         string           `json:"id"`
	Timestamp  time.Time        `json:"timestamp"`
	Integrator string           `json:"integrator"`
	Params     models.Params    `json:"params"`
	Scenarios  []ScenarioRecord `json:"scenarios"`
}

// Save writes one sweep run and returns its generated ID.
func (s *Store) Save(integrator string, base models.Params, results []sweep.Result) (string, error) {
	runID := fmt.Sprintf("sweep_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Integrator: integrator,
		Params:     base,
		Scenarios:  make([]ScenarioRecord, 0, len(results)),
	}

	for i, r := range results {
		meta.Scenarios = append(meta.Scenarios, ScenarioRecord{
			Value:              r.Scenario.Value,
			BitingRate:         r.Scenario.Params.BitingRate,
			InfectedHumanDays:  r.InfectedHumanDays,
			InfectedVectorDays: r.InfectedVectorDays,
			TotalInfected:      r.TotalInfected,
		})

		if err := s.writeTrajectory(runDir, i, r.Trajectory); err != nil {
			return "", err
		}
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeTrajectory(runDir string, index int, traj *sim.Trajectory) error {
	path := filepath.Join(runDir, scenarioFile(index))
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for i, state := range traj.States {
		row := make([]string, 0, len(csvHeader))
		row = append(row, strconv.FormatFloat(traj.Times[i], 'f', 6, 64))
		for _, val := range state {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func scenarioFile(index int) string {
	return fmt.Sprintf("scenario_%02d.csv", index)
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrajectory reads one scenario's trajectory back from its CSV.
func (s *Store) LoadTrajectory(runID string, index int) (*sim.Trajectory, error) {
	path := filepath.Join(s.baseDir, runID, scenarioFile(index))
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return &sim.Trajectory{}, nil
	}

	traj := &sim.Trajectory{
		Times:  make([]float64, 0, len(records)-1),
		States: make([]epi.State, 0, len(records)-1),
	}

	for _, record := range records[1:] {
		if len(record) != len(csvHeader) {
			return nil, fmt.Errorf("storage: malformed row in %s", scenarioFile(index))
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, err
		}

		state := make(epi.State, 0, len(record)-1)
		for _, field := range record[1:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, err
			}
			state = append(state, val)
		}

		traj.Times = append(traj.Times, t)
		traj.States = append(traj.States, state)
	}

	return traj, nil
}

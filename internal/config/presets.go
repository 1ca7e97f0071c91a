package config

import "github.com/epiforge/vectorsim/internal/models"

var Presets = map[string]*Config{
	// baseline is the canonical dengue-like setup: one infected human and
	// one infected vector seeded into a fully susceptible year-long run.
	"baseline": DefaultConfig(),

	// season sweeps a finer protection range over a single 90-day season.
	"season": {
		Params:    models.DefaultParams(),
		InitState: InitStateConfig{SH: 100000, IH: 1, RH: 0, SV: 4500, IV: 1},
		Grid:      GridConfig{Start: 0, End: 90, Step: 1},
		Scenarios: []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
	},

	// fine trades runtime for a dense output grid, for smooth plots.
	"fine": {
		Params:    models.DefaultParams(),
		InitState: InitStateConfig{SH: 100000, IH: 1, RH: 0, SV: 4500, IV: 1},
		Grid:      GridConfig{Start: 0, End: 365, Step: 0.1},
		Scenarios: []float64{0, 0.25, 0.5, 0.75, 1},
	},
}

// GetPreset returns a copy of the named preset with defaults filled in.
func GetPreset(name string) *Config {
	preset, ok := Presets[name]
	if !ok {
		return nil
	}

	cfg := *preset
	if cfg.Integrator == "" {
		cfg.Integrator = DefaultIntegrator
	}
	if cfg.Substeps == 0 {
		cfg.Substeps = DefaultSubsteps
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

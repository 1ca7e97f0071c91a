package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/epiforge/vectorsim/internal/epi"
	"github.com/epiforge/vectorsim/internal/models"
)

const (
	DefaultStart      = 0.0
	DefaultEnd        = 365.0
	DefaultStep       = 1.0
	DefaultIntegrator = "rk4"
	DefaultSubsteps   = 4
	DefaultWorkers    = 1
)

// Config is the full simulation input: coefficients, initial populations,
// output grid, and the scenario sweep values. Everything the sweep needs is
// carried here explicitly; nothing is read from package-level state.
type Config struct {
	Params     models.Params   `yaml:"params"`
	InitState  InitStateConfig `yaml:"init_state"`
	Grid       GridConfig      `yaml:"grid"`
	Scenarios  []float64       `yaml:"scenarios"`
	Integrator string          `yaml:"integrator"`
	Substeps   int             `yaml:"substeps"`
	Workers    int             `yaml:"workers"`
}

// InitStateConfig names the initial population of each compartment.
type InitStateConfig struct {
	SH float64 `yaml:"sh"`
	IH float64 `yaml:"ih"`
	RH float64 `yaml:"rh"`
	SV float64 `yaml:"sv"`
	IV float64 `yaml:"iv"`
}

// GridConfig describes a uniform output grid.
type GridConfig struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Step  float64 `yaml:"step"`
}

func DefaultConfig() *Config {
	return &Config{
		Params: models.DefaultParams(),
		InitState: InitStateConfig{
			SH: 100000,
			IH: 1,
			RH: 0,
			SV: 4500,
			IV: 1,
		},
		Grid: GridConfig{
			Start: DefaultStart,
			End:   DefaultEnd,
			Step:  DefaultStep,
		},
		Scenarios:  []float64{0, 0.25, 0.5, 0.75, 1},
		Integrator: DefaultIntegrator,
		Substeps:   DefaultSubsteps,
		Workers:    DefaultWorkers,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// InitialState assembles the compartment vector in model order.
func (c *Config) InitialState() epi.State {
	return epi.State{c.InitState.SH, c.InitState.IH, c.InitState.RH, c.InitState.SV, c.InitState.IV}
}

// TimeGrid builds the uniform output grid.
func (c *Config) TimeGrid() (epi.Grid, error) {
	return epi.Uniform(c.Grid.Start, c.Grid.End, c.Grid.Step)
}

// Validate checks the parts a sweep would otherwise only reject mid-run.
func (c *Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if _, err := c.TimeGrid(); err != nil {
		return err
	}
	return nil
}

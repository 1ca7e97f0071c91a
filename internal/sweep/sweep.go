// Package sweep runs a host-vector simulation across a set of scenario
// values and derives cumulative burden statistics per scenario.
//
// A scenario value p is the unprotected fraction of the host population;
// the derived parameter set scales the baseline biting rate by p and leaves
// every other coefficient untouched.
//
// # Failure policy
//
// The sweep aborts on the first scenario error: no result slice is returned
// alongside a non-nil error, and a partially computed scenario is never
// emitted. Callers wanting per-scenario tolerance can run scenarios
// individually through [Controller.RunScenario].
package sweep

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/epiforge/vectorsim/internal/epi"
	"github.com/epiforge/vectorsim/internal/integrators"
	"github.com/epiforge/vectorsim/internal/models"
	"github.com/epiforge/vectorsim/internal/quad"
	"github.com/epiforge/vectorsim/internal/sim"
)

// Scenario is one sweep point: the scenario value and the parameter set
// derived from it.
type Scenario struct {
	Value  float64
	Params models.Params
}

// Result carries everything the reporting side needs for one scenario.
// Read-only after the sweep returns.
type Result struct {
	Scenario   Scenario
	Trajectory *sim.Trajectory

	// InfectedHumanDays is the area under the infected-human curve.
	InfectedHumanDays float64
	// InfectedVectorDays is the area under the infected-vector curve.
	InfectedVectorDays float64
	// TotalInfected is initial minus final susceptible humans: every
	// human that ever left the susceptible pool.
	TotalInfected float64
}

// Controller owns sweep orchestration. The base parameter set and grid are
// shared read-only across scenarios; each scenario gets its own model and
// stepper, so parallel execution has no cross-talk.
type Controller struct {
	base       models.Params
	integrator string
	simOpts    sim.Options
	workers    int
}

// Option configures a Controller.
type Option func(*Controller)

// WithIntegrator selects the stepper by registry name (default "rk4").
func WithIntegrator(name string) Option {
	return func(c *Controller) { c.integrator = name }
}

// WithSimOptions overrides the simulator options for every scenario.
func WithSimOptions(opts sim.Options) Option {
	return func(c *Controller) { c.simOpts = opts }
}

// WithWorkers runs up to n scenarios in parallel. Output order and values
// are unchanged; n <= 1 keeps the reference sequential behavior.
func WithWorkers(n int) Option {
	return func(c *Controller) { c.workers = n }
}

// New builds a controller, validating the base parameter set and the
// integrator name up front.
func New(base models.Params, opts ...Option) (*Controller, error) {
	c := &Controller{
		base:       base,
		integrator: "rk4",
		simOpts:    sim.DefaultOptions(),
		workers:    1,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}
	if _, err := integrators.New(c.integrator); err != nil {
		return nil, err
	}
	return c, nil
}

// Run executes one scenario per value, in the caller-supplied order, and
// returns the results in that same order.
func (c *Controller) Run(ctx context.Context, values []float64, x0 epi.State, grid epi.Grid) ([]Result, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, len(values))

	if c.workers <= 1 {
		for i, p := range values {
			r, err := c.RunScenario(ctx, p, x0, grid)
			if err != nil {
				return nil, err
			}
			results[i] = *r
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, p := range values {
		i, p := i, p
		g.Go(func() error {
			r, err := c.RunScenario(gctx, p, x0, grid)
			if err != nil {
				return err
			}
			results[i] = *r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunScenario derives the parameter set for one scenario value, integrates
// it, and extracts the burden statistics.
func (c *Controller) RunScenario(ctx context.Context, p float64, x0 epi.State, grid epi.Grid) (*Result, error) {
	derived := c.base.WithBitingRate(c.base.BitingRate * p)

	model, err := models.NewHostVector(derived)
	if err != nil {
		return nil, err
	}
	stepper, err := integrators.New(c.integrator)
	if err != nil {
		return nil, err
	}

	traj, err := sim.NewWithOptions(model, stepper, c.simOpts).Integrate(ctx, x0, grid)
	if err != nil {
		return nil, err
	}

	ihDays, err := quad.Trapezoid(traj.Times, traj.Series(models.IH))
	if err != nil {
		return nil, err
	}
	ivDays, err := quad.Trapezoid(traj.Times, traj.Series(models.IV))
	if err != nil {
		return nil, err
	}

	return &Result{
		Scenario:           Scenario{Value: p, Params: derived},
		Trajectory:         traj,
		InfectedHumanDays:  ihDays,
		InfectedVectorDays: ivDays,
		TotalInfected:      x0[models.SH] - traj.Last()[models.SH],
	}, nil
}

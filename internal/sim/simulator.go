package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/epiforge/vectorsim/internal/epi"
)

// Options tune how the simulator advances between grid points.
type Options struct {
	// Substeps is the number of fixed sub-steps per grid interval.
	Substeps int
	// Adaptive enables error-controlled sub-stepping when the stepper
	// implements epi.AdaptiveStepper.
	Adaptive bool
	// Tolerance is the local error tolerance for adaptive stepping.
	Tolerance float64
	// MaxSteps caps total sub-steps for one Integrate call, guaranteeing
	// termination on pathological parameter sets.
	MaxSteps int
}

func DefaultOptions() Options {
	return Options{
		Substeps:  4,
		Tolerance: 1e-6,
		MaxSteps:  1_000_000,
	}
}

// Simulator drives a system across a time grid with a stepper.
// Instances hold no cross-call state; independent simulators may run
// concurrently as long as each owns its stepper.
type Simulator struct {
	sys     epi.System
	stepper epi.Stepper
	opts    Options
}

func New(sys epi.System, stepper epi.Stepper) *Simulator {
	return NewWithOptions(sys, stepper, DefaultOptions())
}

func NewWithOptions(sys epi.System, stepper epi.Stepper, opts Options) *Simulator {
	if opts.Substeps < 1 {
		opts.Substeps = 1
	}
	if opts.MaxSteps < 1 {
		opts.MaxSteps = DefaultOptions().MaxSteps
	}
	return &Simulator{sys: sys, stepper: stepper, opts: opts}
}

// Integrate produces the trajectory of the system from x0 across the grid.
// The initial state is reproduced exactly at the first grid point. A
// non-finite state at any sub-step aborts with an error wrapping
// epi.ErrDivergence; the partial trajectory is discarded.
func (s *Simulator) Integrate(ctx context.Context, x0 epi.State, grid epi.Grid) (*Trajectory, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if len(x0) != s.sys.StateDim() {
		return nil, fmt.Errorf("%w: initial state has %d components, system needs %d",
			epi.ErrShape, len(x0), s.sys.StateDim())
	}
	if !x0.IsValid() {
		return nil, &epi.StepError{Step: 0, Time: grid[0], Wrapped: epi.ErrDivergence}
	}

	traj := &Trajectory{
		Times:  make([]float64, len(grid)),
		States: make([]epi.State, 0, len(grid)),
	}
	copy(traj.Times, grid)
	traj.States = append(traj.States, x0.Clone())

	x := x0.Clone()
	taken := 0

	for i := 1; i < len(grid); i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var err error
		x, taken, err = s.advance(x, grid[i-1], grid[i], taken)
		if err != nil {
			return nil, err
		}

		traj.States = append(traj.States, x.Clone())
	}

	return traj, nil
}

// advance moves the state from t0 to t1, reporting nothing in between.
func (s *Simulator) advance(x epi.State, t0, t1 float64, taken int) (epi.State, int, error) {
	adaptive, ok := s.stepper.(epi.AdaptiveStepper)
	if s.opts.Adaptive && ok {
		return s.advanceAdaptive(adaptive, x, t0, t1, taken)
	}

	dt := (t1 - t0) / float64(s.opts.Substeps)
	for k := 0; k < s.opts.Substeps; k++ {
		if taken >= s.opts.MaxSteps {
			return nil, taken, &epi.StepError{Step: taken, Time: t0, Wrapped: epi.ErrDivergence}
		}
		t := t0 + float64(k)*dt
		x = s.stepper.Step(s.sys, x, t, dt)
		taken++
		if !x.IsValid() {
			return nil, taken, &epi.StepError{Step: taken, Time: t + dt, Wrapped: epi.ErrDivergence}
		}
	}
	return x, taken, nil
}

func (s *Simulator) advanceAdaptive(stepper epi.AdaptiveStepper, x epi.State, t0, t1 float64, taken int) (epi.State, int, error) {
	t := t0
	dt := (t1 - t0) / float64(s.opts.Substeps)

	// Stop once the remaining span is below float resolution so the last
	// clamped step cannot spin on sub-ulp increments.
	eps := 1e-12 * (1 + math.Abs(t1))

	for t1-t > eps {
		if taken >= s.opts.MaxSteps {
			return nil, taken, &epi.StepError{Step: taken, Time: t, Wrapped: epi.ErrDivergence}
		}
		if t+dt > t1 {
			dt = t1 - t
		}

		next, dtNext, err := stepper.StepAdaptive(s.sys, x, t, dt, s.opts.Tolerance)
		if err != nil {
			return nil, taken, &epi.StepError{Step: taken, Time: t, Wrapped: err}
		}
		taken++
		if !next.IsValid() {
			return nil, taken, &epi.StepError{Step: taken, Time: t + dt, Wrapped: epi.ErrDivergence}
		}

		x = next
		t += dt
		dt = dtNext
	}
	return x, taken, nil
}

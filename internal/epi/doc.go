// Package epi provides core simulation primitives for compartmental
// epidemic models.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector of compartment populations
//   - [System]: interface for compartmental models (dX/dt = f(X, t))
//   - [Stepper]: numerical integrator interface
//   - [Grid]: ordered output time points
//
// # Example
//
//	sys, _ := models.NewHostVector(models.DefaultParams())
//	step := integrators.NewRK4()
//	s := sim.New(sys, step)
//	traj, _ := s.Integrate(ctx, x0, grid)
//
// # Thread Safety
//
// States and grids are plain slices and not synchronized. Stepper
// implementations may carry scratch buffers; use one per goroutine.
package epi

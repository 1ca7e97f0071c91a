package epi

import (
	"fmt"
	"math"
)

// Grid is an ordered sequence of output time points. The first element is
// the simulation start time.
type Grid []float64

// Uniform builds a grid from start to end (inclusive) with the given step.
// The final point is clamped to end so accumulated float error cannot
// overshoot it.
func Uniform(start, end, step float64) (Grid, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %g", ErrGrid, step)
	}
	if end <= start {
		return nil, fmt.Errorf("%w: end %g not after start %g", ErrGrid, end, start)
	}

	n := int(math.Ceil((end-start)/step - 1e-9))
	g := make(Grid, 0, n+1)
	for i := 0; i <= n; i++ {
		t := start + float64(i)*step
		if t > end {
			t = end
		}
		g = append(g, t)
	}
	if g[len(g)-1] < end {
		g = append(g, end)
	}
	return g, nil
}

// Validate checks that the grid has at least two points and is strictly
// increasing.
func (g Grid) Validate() error {
	if len(g) < 2 {
		return fmt.Errorf("%w: need at least 2 time points, got %d", ErrGrid, len(g))
	}
	for i := 1; i < len(g); i++ {
		if g[i] <= g[i-1] {
			return fmt.Errorf("%w: g[%d]=%g <= g[%d]=%g", ErrGrid, i, g[i], i-1, g[i-1])
		}
	}
	return nil
}

// Start returns the first time point.
func (g Grid) Start() float64 { return g[0] }

// End returns the last time point.
func (g Grid) End() float64 { return g[len(g)-1] }

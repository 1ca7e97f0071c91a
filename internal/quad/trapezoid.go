// Package quad provides the cumulative-quantity estimator applied to
// trajectory series.
package quad

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"

	"github.com/epiforge/vectorsim/internal/epi"
)

// Trapezoid computes the composite trapezoidal approximation of the
// integral of y over x. Exact for piecewise-linear series; coarse grids
// underestimate convex integrands, which is accepted.
func Trapezoid(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: len(x)=%d, len(y)=%d", epi.ErrShape, len(x), len(y))
	}
	if len(x) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 points, got %d", epi.ErrShape, len(x))
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return 0, fmt.Errorf("%w: x not strictly increasing at index %d", epi.ErrShape, i)
		}
	}
	return integrate.Trapezoidal(x, y), nil
}

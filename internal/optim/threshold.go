// Package optim searches the scenario space for intervention targets.
package optim

import (
	"context"
	"fmt"

	"github.com/epiforge/vectorsim/internal/epi"
	"github.com/epiforge/vectorsim/internal/models"
	"github.com/epiforge/vectorsim/internal/sweep"
)

// DefaultIterations gives the bisection ~1e-6 resolution on [0,1].
const DefaultIterations = 20

// ProtectionThreshold finds the largest unprotected fraction p in [0,1]
// whose attack rate stays at or below target, by bisection over scenario
// runs. It relies on the attack rate being non-decreasing in p.
//
// Returns 0 when even full protection misses the target, and 1 when no
// protection is needed at all.
func ProtectionThreshold(ctx context.Context, ctrl *sweep.Controller, x0 epi.State, grid epi.Grid, target float64, iterations int) (float64, error) {
	if target < 0 {
		return 0, fmt.Errorf("%w: target attack rate %g, must be >= 0", epi.ErrDomain, target)
	}
	if iterations < 1 {
		iterations = DefaultIterations
	}

	attack := func(p float64) (float64, error) {
		r, err := ctrl.RunScenario(ctx, p, x0, grid)
		if err != nil {
			return 0, err
		}
		return r.TotalInfected / x0[models.SH], nil
	}

	a0, err := attack(0)
	if err != nil {
		return 0, err
	}
	if a0 > target {
		return 0, nil
	}

	a1, err := attack(1)
	if err != nil {
		return 0, err
	}
	if a1 <= target {
		return 1, nil
	}

	lo, hi := 0.0, 1.0
	for i := 0; i < iterations; i++ {
		mid := 0.5 * (lo + hi)
		a, err := attack(mid)
		if err != nil {
			return 0, err
		}
		if a <= target {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo, nil
}

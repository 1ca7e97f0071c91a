package models

import (
	"errors"
	"math"
	"testing"

	"github.com/epiforge/vectorsim/internal/epi"
)

func TestSIRConservesPopulation(t *testing.T) {
	m, err := NewSIR(0.3, 0.1, 1000)
	if err != nil {
		t.Fatalf("NewSIR failed: %v", err)
	}

	dx := m.Derive(m.DefaultState(), 0)

	sum := dx[0] + dx[1] + dx[2]
	if math.Abs(sum) > 1e-12 {
		t.Errorf("closed SIR should conserve population, derivative sum = %e", sum)
	}
}

func TestSIRNoInfected(t *testing.T) {
	m, err := NewSIR(0.3, 0.1, 1000)
	if err != nil {
		t.Fatalf("NewSIR failed: %v", err)
	}

	dx := m.Derive(epi.State{1000, 0, 0}, 0)
	for i, v := range dx {
		if v != 0 {
			t.Errorf("component %d = %f, want 0 with no infected", i, v)
		}
	}
}

func TestSIRInvalidParams(t *testing.T) {
	if _, err := NewSIR(-0.3, 0.1, 1000); !errors.Is(err, epi.ErrDomain) {
		t.Errorf("expected ErrDomain for negative beta, got %v", err)
	}
	if _, err := NewSIR(0.3, 0.1, 0); !errors.Is(err, epi.ErrDomain) {
		t.Errorf("expected ErrDomain for zero population, got %v", err)
	}
}

package models

import (
	"errors"
	"math"
	"testing"

	"github.com/epiforge/vectorsim/internal/epi"
)

func TestHostVectorEmptyPopulations(t *testing.T) {
	m, err := NewHostVector(DefaultParams())
	if err != nil {
		t.Fatalf("NewHostVector failed: %v", err)
	}

	// With every compartment empty, only vector recruitment drives change.
	dx := m.Derive(epi.State{0, 0, 0, 0, 0}, 0)

	for i, v := range dx {
		switch i {
		case SV:
			if math.Abs(v-m.Params().Recruitment) > 1e-12 {
				t.Errorf("dSV = %f, want recruitment %f", v, m.Params().Recruitment)
			}
		case SH:
			// Human natality pushes SH toward NH even from zero.
			want := m.Params().BirthDeathRate * m.Params().HumanPopulation
			if math.Abs(v-want) > 1e-12 {
				t.Errorf("dSH = %f, want %f", v, want)
			}
		default:
			if v != 0 {
				t.Errorf("component %d = %f, want 0", i, v)
			}
		}
	}
}

func TestHostVectorDerive(t *testing.T) {
	p := DefaultParams()
	m, err := NewHostVector(p)
	if err != nil {
		t.Fatalf("NewHostVector failed: %v", err)
	}

	x := m.DefaultState()
	dx := m.Derive(x, 0)

	den := p.HumanPopulation + p.Saturation
	infectH := p.BetaH * p.BitingRate / den * x[SH] * x[IV]
	infectV := p.BetaV * p.BitingRate / den * x[SV] * x[IH]

	want := epi.State{
		p.BirthDeathRate*p.HumanPopulation - infectH - p.BirthDeathRate*x[SH],
		infectH - (p.BirthDeathRate+p.RecoveryRate)*x[IH],
		p.RecoveryRate*x[IH] - p.BirthDeathRate*x[RH],
		p.Recruitment - infectV - p.VectorDeathRate*x[SV],
		infectV - p.VectorDeathRate*x[IV],
	}

	for i := range want {
		if math.Abs(dx[i]-want[i]) > 1e-9 {
			t.Errorf("component %d = %f, want %f", i, dx[i], want[i])
		}
	}
}

func TestHostVectorDeriveIsPure(t *testing.T) {
	m, err := NewHostVector(DefaultParams())
	if err != nil {
		t.Fatalf("NewHostVector failed: %v", err)
	}

	x := m.DefaultState()
	first := m.Derive(x, 0)
	for i := 0; i < 100; i++ {
		m.Derive(epi.State{1, 2, 3, 4, 5}, float64(i)*0.37)
	}
	again := m.Derive(x, 0)

	for i := range first {
		if first[i] != again[i] {
			t.Errorf("component %d changed across calls: %f vs %f", i, first[i], again[i])
		}
	}
}

func TestHostVectorInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"negative biting rate", func(p *Params) { p.BitingRate = -0.5 }},
		{"negative recovery", func(p *Params) { p.RecoveryRate = -1 }},
		{"zero population", func(p *Params) { p.HumanPopulation = 0 }},
		{"negative population", func(p *Params) { p.HumanPopulation = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			if _, err := NewHostVector(p); !errors.Is(err, epi.ErrDomain) {
				t.Errorf("expected ErrDomain, got %v", err)
			}
		})
	}
}

func TestHostVectorDimensions(t *testing.T) {
	m, err := NewHostVector(DefaultParams())
	if err != nil {
		t.Fatalf("NewHostVector failed: %v", err)
	}
	if m.StateDim() != 5 {
		t.Errorf("expected state dim 5, got %d", m.StateDim())
	}
}

func TestHostVectorSetParam(t *testing.T) {
	m, err := NewHostVector(DefaultParams())
	if err != nil {
		t.Fatalf("NewHostVector failed: %v", err)
	}

	if err := m.SetParam("biting_rate", 0.25); err != nil {
		t.Fatalf("SetParam failed: %v", err)
	}
	if got := m.GetParams()["biting_rate"]; got != 0.25 {
		t.Errorf("biting_rate = %f, want 0.25", got)
	}

	if err := m.SetParam("biting_rate", -1); !errors.Is(err, epi.ErrDomain) {
		t.Errorf("expected ErrDomain for negative rate, got %v", err)
	}
	if err := m.SetParam("bogus", 1); !errors.Is(err, epi.ErrDomain) {
		t.Errorf("expected ErrDomain for unknown name, got %v", err)
	}
}

func TestParamsZeroDenominator(t *testing.T) {
	p := DefaultParams()
	p.HumanPopulation = 0
	p.Saturation = 0

	if err := p.Validate(); !errors.Is(err, epi.ErrDomain) {
		t.Errorf("expected ErrDomain for zero denominator, got %v", err)
	}
}

func TestWithBitingRate(t *testing.T) {
	base := DefaultParams()
	derived := base.WithBitingRate(base.BitingRate * 0.5)

	if derived.BitingRate != 0.25 {
		t.Errorf("derived biting rate = %f, want 0.25", derived.BitingRate)
	}
	if base.BitingRate != 0.5 {
		t.Error("base params mutated by WithBitingRate")
	}
}

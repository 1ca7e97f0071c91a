package integrators

import (
	"math"
	"testing"

	"github.com/epiforge/vectorsim/internal/epi"
)

type harmonicOscillator struct{}

func (h *harmonicOscillator) StateDim() int { return 2 }

func (h *harmonicOscillator) Derive(x epi.State, t float64) epi.State {
	return epi.State{x[1], -x[0]}
}

func (h *harmonicOscillator) Energy(x epi.State) float64 {
	return 0.5 * (x[0]*x[0] + x[1]*x[1])
}

func TestRK4Accuracy(t *testing.T) {
	dyn := &harmonicOscillator{}
	integ := NewRK4()

	x := epi.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

type exponentialDecay struct{ rate float64 }

func (e *exponentialDecay) StateDim() int { return 1 }

func (e *exponentialDecay) Derive(x epi.State, t float64) epi.State {
	return epi.State{-e.rate * x[0]}
}

func TestRK4Decay(t *testing.T) {
	dyn := &exponentialDecay{rate: 0.25}
	integ := NewRK4()

	x := epi.State{4500.0}
	dt := 1.0
	steps := 10

	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	expected := 4500.0 * math.Exp(-0.25*float64(steps))
	if math.Abs(x[0]-expected)/expected > 1e-4 {
		t.Errorf("decay error too large: got %.6f, expected %.6f", x[0], expected)
	}
}

func TestEulerFirstOrder(t *testing.T) {
	dyn := &exponentialDecay{rate: 1.0}
	euler := NewEuler()
	rk4 := NewRK4()

	xE := epi.State{1.0}
	xR := epi.State{1.0}
	dt := 0.1

	for i := 0; i < 10; i++ {
		xE = euler.Step(dyn, xE, float64(i)*dt, dt)
		xR = rk4.Step(dyn, xR, float64(i)*dt, dt)
	}

	exact := math.Exp(-1.0)
	if math.Abs(xR[0]-exact) >= math.Abs(xE[0]-exact) {
		t.Errorf("RK4 should beat Euler: rk4 err %e, euler err %e",
			math.Abs(xR[0]-exact), math.Abs(xE[0]-exact))
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range Names() {
		if _, err := New(name); err != nil {
			t.Errorf("New(%q) failed: %v", name, err)
		}
	}

	if _, err := New("simpson"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}

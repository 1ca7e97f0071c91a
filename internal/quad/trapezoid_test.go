package quad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epiforge/vectorsim/internal/epi"
)

func TestTrapezoid(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want float64
	}{
		{"constant function", []float64{0, 1, 2}, []float64{1, 1, 1}, 2.0},
		{"line over one panel", []float64{0, 2}, []float64{0, 4}, 4.0},
		{"triangle", []float64{0, 1, 2}, []float64{0, 1, 0}, 1.0},
		{"uneven spacing", []float64{0, 0.5, 2}, []float64{2, 2, 2}, 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Trapezoid(tt.x, tt.y)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestTrapezoid_ShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{"single point", []float64{0}, []float64{5}},
		{"empty", []float64{}, []float64{}},
		{"length mismatch", []float64{0, 1, 2}, []float64{1, 1}},
		{"duplicate x", []float64{0, 1, 1}, []float64{1, 1, 1}},
		{"decreasing x", []float64{0, 2, 1}, []float64{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Trapezoid(tt.x, tt.y)
			assert.ErrorIs(t, err, epi.ErrShape)
		})
	}
}

package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"

	"github.com/zachahn/micrbograd/internal/autodiff"
)

// expression builds a scalar graph over leaves.
type expression func(x []*autodiff.Value) *autodiff.Value

// autodiffGradient evaluates expr at point and returns the backward gradient per leaf.
func autodiffGradient(expr expression, point []float64) []float64 {
	leaves := make([]*autodiff.Value, len(point))
	for i, p := range point {
		leaves[i] = autodiff.New(p)
	}
	expr(leaves).Backward()

	grad := make([]float64, len(leaves))
	for i, l := range leaves {
		grad[i] = l.Grad()
	}
	return grad
}

// numericalGradient computes the gradient of expr with central finite differences.
func numericalGradient(expr expression, point []float64) []float64 {
	f := func(x []float64) float64 {
		leaves := make([]*autodiff.Value, len(x))
		for i, p := range x {
			leaves[i] = autodiff.New(p)
		}
		return expr(leaves).Data()
	}
	return fd.Gradient(nil, f, point, &fd.Settings{Formula: fd.Central})
}

// TestNumericalGradient compares Backward against finite differences.
func TestNumericalGradient(t *testing.T) {
	tests := []struct {
		name  string
		expr  expression
		point []float64
	}{
		{
			name:  "square",
			expr:  func(x []*autodiff.Value) *autodiff.Value { return x[0].Mul(x[0]) },
			point: []float64{3},
		},
		{
			name: "composite",
			expr: func(x []*autodiff.Value) *autodiff.Value {
				return x[0].AddScalar(2).MulScalar(3)
			},
			point: []float64{5},
		},
		{
			name: "polynomial",
			// x³ - 2x² + x
			expr: func(x []*autodiff.Value) *autodiff.Value {
				return x[0].Pow(3).Sub(x[0].Pow(2).MulScalar(2)).Add(x[0])
			},
			point: []float64{2},
		},
		{
			name: "rational",
			expr: func(x []*autodiff.Value) *autodiff.Value {
				return x[0].Mul(x[1]).Div(x[0].Add(x[1].Pow(2)))
			},
			point: []float64{1.5, -0.75},
		},
		{
			name: "neuron",
			expr: func(x []*autodiff.Value) *autodiff.Value {
				return x[0].Mul(x[2]).Add(x[1].Mul(x[3])).Add(x[4]).Tanh()
			},
			point: []float64{2, 0, -3, 1, 6.8813735870195432},
		},
		{
			name: "reused subexpression",
			expr: func(x []*autodiff.Value) *autodiff.Value {
				h := x[0].Mul(x[1]).Tanh()
				return h.Mul(h).Add(h.Div(x[0])).Sub(x[1].Neg())
			},
			point: []float64{0.4, 1.7},
		},
		{
			name: "fractional power",
			expr: func(x []*autodiff.Value) *autodiff.Value {
				return x[0].Pow(0.5).Add(x[0].Pow(-1.5))
			},
			point: []float64{2.3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := autodiffGradient(tt.expr, tt.point)
			want := numericalGradient(tt.expr, tt.point)

			require.Len(t, got, len(want))
			assert.True(t, floats.EqualApprox(got, want, 1e-5),
				"autodiff gradient %v differs from numerical gradient %v", got, want)
		})
	}
}

package autodiff

import (
	"fmt"
	"math"
)

// Add returns v + other.
//
// Backward: d(a+b)/da = 1, d(a+b)/db = 1.
func (v *Value) Add(other *Value) *Value {
	return newResult(v.data+other.data, Op{Kind: OpAdd}, v, other)
}

// Mul returns v * other.
//
// Backward: d(a*b)/da = b, d(a*b)/db = a.
func (v *Value) Mul(other *Value) *Value {
	return newResult(v.data*other.data, Op{Kind: OpMul}, v, other)
}

// Pow returns v ** n for a constant exponent n.
//
// Backward: d(a**n)/da = n * a**(n-1).
//
// Invalid combinations (a negative base with a fractional exponent, zero
// with a negative exponent) follow IEEE 754 and yield NaN or ±Inf.
func (v *Value) Pow(n float64) *Value {
	return newResult(math.Pow(v.data, n), Op{Kind: OpPow, Exponent: n}, v)
}

// PowOf is Pow for exponents whose type is only known at run time.
//
// Any Go integer or float type is accepted. Everything else, including a
// *Value, fails with ErrInvalidOperandKind: exponents are never part of
// the graph.
func (v *Value) PowOf(exponent any) (*Value, error) {
	n, ok := toFloat64(exponent)
	if !ok {
		return nil, fmt.Errorf("pow: %w: exponent must be numeric, got %T", ErrInvalidOperandKind, exponent)
	}
	return v.Pow(n), nil
}

// Tanh returns tanh(v).
//
// Backward: d(tanh(a))/da = 1 - tanh²(a).
func (v *Value) Tanh() *Value {
	return newResult(math.Tanh(v.data), Op{Kind: OpTanh}, v)
}

// Neg returns -v, recorded as v * -1.
func (v *Value) Neg() *Value {
	return v.Mul(New(-1))
}

// Sub returns v - other, recorded as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// Div returns v / other, recorded as v * other**-1.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}

// AddScalar returns v + c with c wrapped in a constant leaf.
func (v *Value) AddScalar(c float64) *Value {
	return v.Add(New(c))
}

// MulScalar returns v * c with c wrapped in a constant leaf.
func (v *Value) MulScalar(c float64) *Value {
	return v.Mul(New(c))
}

// Sum folds Add over values left to right.
//
// Sum of an empty slice is a constant leaf 0. A single value is returned as is.
func Sum(values ...*Value) *Value {
	if len(values) == 0 {
		return New(0)
	}
	total := values[0]
	for _, v := range values[1:] {
		total = total.Add(v)
	}
	return total
}

func toFloat64(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

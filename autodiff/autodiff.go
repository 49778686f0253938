// Copyright 2025 The micrbograd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalar values.
//
// Every arithmetic operation on a Value returns a new Value that remembers
// its operands. Calling Backward on any Value walks that graph once, in
// reverse topological order, and accumulates the gradient of the root
// into every node it depends on.
//
// Example:
//
//	import "github.com/zachahn/micrbograd/autodiff"
//
//	func main() {
//	    x1 := autodiff.New(2.0)
//	    w1 := autodiff.New(-3.0)
//	    b := autodiff.New(6.8813735870195432)
//
//	    o := x1.Mul(w1).Add(b).Tanh()
//	    o.Backward()
//
//	    fmt.Println(w1.Grad()) // 1.0
//	}
//
// Gradients accumulate across passes. Reset them with ZeroGrad on the
// leaves you own (usually through nn.Module.ZeroGrad) or ZeroGradGraph.
//
// Values are not safe for concurrent use.
package autodiff

import (
	"github.com/zachahn/micrbograd/internal/autodiff"
)

// Value is a scalar node in the computation graph.
//
// Methods:
//
//	Add, Mul, Sub, Div, Neg, AddScalar, MulScalar
//	    Build a new node from this one and an operand.
//
//	Pow(n float64), PowOf(n any)
//	    Raise to a constant exponent. PowOf rejects non-numeric exponents
//	    with ErrInvalidOperandKind.
//
//	Tanh()
//	    Hyperbolic tangent.
//
//	Backward()
//	    Seed this node's gradient with 1 and propagate to every ancestor.
//
//	Data(), Grad(), ZeroGrad(), SetData(x)
//	    Read the value and gradient, reset the gradient, update a leaf.
type Value = autodiff.Value

// Op is the tagged operation recorded on a Value.
type Op = autodiff.Op

// OpKind identifies the operation that produced a Value.
type OpKind = autodiff.OpKind

// Operation kinds.
const (
	OpNone = autodiff.OpNone
	OpAdd  = autodiff.OpAdd
	OpMul  = autodiff.OpMul
	OpPow  = autodiff.OpPow
	OpTanh = autodiff.OpTanh
)

// Tape holds a graph's nodes in topological order.
type Tape = autodiff.Tape

// Errors.
var (
	ErrInvalidOperandKind    = autodiff.ErrInvalidOperandKind
	ErrUnrecognizedOperation = autodiff.ErrUnrecognizedOperation
)

// New creates a leaf value.
func New(data float64) *Value {
	return autodiff.New(data)
}

// NewLabeled creates a leaf value carrying a diagnostic label.
func NewLabeled(label string, data float64) *Value {
	return autodiff.NewLabeled(label, data)
}

// Sum folds Add over values left to right.
func Sum(values ...*Value) *Value {
	return autodiff.Sum(values...)
}

// Record builds the tape for root.
//
// Example:
//
//	tape := autodiff.Record(loss)
//	tape.ZeroGrad()
//	tape.Backward()
func Record(root *Value) *Tape {
	return autodiff.Record(root)
}

// ZeroGradGraph resets the gradient of root and every node reachable from it.
func ZeroGradGraph(root *Value) {
	autodiff.ZeroGradGraph(root)
}

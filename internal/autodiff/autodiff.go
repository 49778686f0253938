// Package autodiff implements reverse-mode automatic differentiation over scalar values.
//
// Architecture:
//   - Value: one float64 plus the operation and operands that produced it
//   - Op: tagged description of that operation (none, add, mul, pow, tanh)
//   - Tape: reverse topological order of a graph, built once per backward pass
//   - Backward: seeds the root gradient and walks the tape applying the chain rule
//
// Usage:
//
//	x := autodiff.New(2.0)
//	y := x.Mul(x) // y = x²
//
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4.0
//
// Values are not safe for concurrent use. Backward accumulates into the
// gradient of every reachable node without synchronization.
package autodiff

import (
	"fmt"
)

// Value is a scalar node in the computation graph.
//
// Data, operands and op are fixed at construction. Only the gradient
// changes afterwards, and only through Backward, ZeroGrad and ZeroGradGraph.
type Value struct {
	data     float64
	grad     float64
	operands []*Value // direct inputs, empty for leaves
	op       Op
	label    string
}

// New creates a leaf value (input, constant or parameter).
func New(data float64) *Value {
	return &Value{data: data}
}

// NewLabeled creates a leaf value carrying a diagnostic label.
func NewLabeled(label string, data float64) *Value {
	return &Value{data: data, label: label}
}

// newResult creates a non-leaf value produced by op from operands.
func newResult(data float64, op Op, operands ...*Value) *Value {
	return &Value{
		data:     data,
		operands: operands,
		op:       op,
	}
}

// Data returns the forward-computed value.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the accumulated gradient of the last backward root with respect to v.
func (v *Value) Grad() float64 {
	return v.grad
}

// Op returns the operation that produced v.
func (v *Value) Op() Op {
	return v.op
}

// Operands returns the direct inputs of v in construction order.
//
// The returned slice is a copy; the graph itself cannot be modified through it.
func (v *Value) Operands() []*Value {
	out := make([]*Value, len(v.operands))
	copy(out, v.operands)
	return out
}

// IsLeaf reports whether v has no operands.
func (v *Value) IsLeaf() bool {
	return len(v.operands) == 0
}

// Label returns the diagnostic label, empty if none was set.
func (v *Value) Label() string {
	return v.label
}

// SetLabel attaches a diagnostic label and returns v for chaining.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// SetData overwrites the value of a leaf.
//
// This is how optimizers update parameters between passes. Calling it on
// a non-leaf panics: the node's value is derived from its operands.
func (v *Value) SetData(data float64) {
	if !v.IsLeaf() {
		panic(fmt.Sprintf("SetData: value produced by %s is not a leaf", v.op))
	}
	v.data = data
}

// ZeroGrad resets the gradient accumulator of v to zero.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// String renders v for debugging.
func (v *Value) String() string {
	if v.label != "" {
		return fmt.Sprintf("Value(%s, data=%g, grad=%g, op=%s)", v.label, v.data, v.grad, v.op)
	}
	return fmt.Sprintf("Value(data=%g, grad=%g, op=%s)", v.data, v.grad, v.op)
}

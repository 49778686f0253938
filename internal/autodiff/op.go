package autodiff

import (
	"fmt"
	"math"
)

// OpKind identifies the operation that produced a Value.
type OpKind uint8

// Supported operations.
//
// Negation, subtraction and division are not kinds of their own: they are
// built from OpMul, OpAdd and OpPow (see Neg, Sub, Div).
const (
	OpNone OpKind = iota // leaf
	OpAdd                // a + b
	OpMul                // a * b
	OpPow                // a ** n, n a constant
	OpTanh               // tanh(a)
)

// String returns the operator symbol.
func (k OpKind) String() string {
	switch k {
	case OpNone:
		return "none"
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "**"
	case OpTanh:
		return "tanh"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// Op is the tagged operation recorded on a Value.
//
// Exponent is only meaningful when Kind is OpPow.
type Op struct {
	Kind     OpKind
	Exponent float64
}

// String renders the operation, including the exponent for OpPow.
func (o Op) String() string {
	if o.Kind == OpPow {
		return fmt.Sprintf("**%g", o.Exponent)
	}
	return o.Kind.String()
}

// backward pushes v's gradient into its operands' accumulators.
//
// v.grad must already hold every contribution from v's consumers.
// Operands are accumulated with +=, so an operand listed twice (a + a)
// receives both contributions.
//
// Panics with ErrUnrecognizedOperation for an unknown kind.
func (v *Value) backward() {
	g := v.grad
	switch v.op.Kind {
	case OpNone:
		// Leaf: nothing to propagate.
	case OpAdd:
		a, b := v.operands[0], v.operands[1]
		a.grad += g
		b.grad += g
	case OpMul:
		a, b := v.operands[0], v.operands[1]
		a.grad += b.data * g
		b.grad += a.data * g
	case OpPow:
		a, n := v.operands[0], v.op.Exponent
		a.grad += n * math.Pow(a.data, n-1) * g
	case OpTanh:
		a := v.operands[0]
		t := math.Tanh(a.data)
		a.grad += (1 - t*t) * g
	default:
		panic(fmt.Errorf("backward: %w: %s", ErrUnrecognizedOperation, v.op.Kind))
	}
}

package nn

import (
	"fmt"
	"math/rand"

	"github.com/zachahn/micrbograd/internal/autodiff"
)

// NeuronConfig holds construction options shared by Neuron, Layer and MLP.
type NeuronConfig struct {
	// Linear disables the tanh nonlinearity, leaving Σ wᵢxᵢ + b.
	Linear bool

	// Rand is the source for weight initialization (default: process-wide source).
	Rand *rand.Rand
}

// Neuron computes tanh(Σ wᵢxᵢ + b) over a fixed number of inputs.
//
// Weights and bias are leaves drawn uniformly from [-1, 1].
//
// Example:
//
//	n := nn.NewNeuron(2, nn.NeuronConfig{})
//	out, err := n.Forward([]*autodiff.Value{autodiff.New(1), autodiff.New(-2)})
type Neuron struct {
	weights []*autodiff.Value
	bias    *autodiff.Value
	linear  bool
}

// NewNeuron creates a neuron with nin inputs.
//
// Panics if nin is negative.
func NewNeuron(nin int, cfg NeuronConfig) *Neuron {
	if nin < 0 {
		panic(fmt.Sprintf("NewNeuron: negative input count %d", nin))
	}
	return &Neuron{
		weights: Uniform(nin, cfg.Rand),
		bias:    autodiff.New(uniform(cfg.Rand)),
		linear:  cfg.Linear,
	}
}

// Forward computes the neuron's output for x.
//
// Returns an error wrapping ErrDimensionMismatch if len(x) differs from
// the neuron's input count.
func (n *Neuron) Forward(x []*autodiff.Value) (*autodiff.Value, error) {
	if len(x) != len(n.weights) {
		return nil, fmt.Errorf("neuron: %w: expected %d inputs, got %d",
			ErrDimensionMismatch, len(n.weights), len(x))
	}

	act := n.bias
	if len(x) > 0 {
		terms := make([]*autodiff.Value, len(x))
		for i, w := range n.weights {
			terms[i] = w.Mul(x[i])
		}
		act = autodiff.Sum(terms...).Add(n.bias)
	}

	if n.linear {
		return act, nil
	}
	return act.Tanh(), nil
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, len(n.weights)+1)
	copy(params, n.weights)
	params[len(n.weights)] = n.bias
	return params
}

// ZeroGrad resets the gradient of every weight and the bias.
func (n *Neuron) ZeroGrad() {
	zeroGrad(n.Parameters())
}

// Weights returns the weight leaves in input order.
func (n *Neuron) Weights() []*autodiff.Value {
	out := make([]*autodiff.Value, len(n.weights))
	copy(out, n.weights)
	return out
}

// Bias returns the bias leaf.
func (n *Neuron) Bias() *autodiff.Value {
	return n.bias
}

// InFeatures returns the number of inputs.
func (n *Neuron) InFeatures() int {
	return len(n.weights)
}

// IsLinear reports whether the tanh nonlinearity is disabled.
func (n *Neuron) IsLinear() bool {
	return n.linear
}

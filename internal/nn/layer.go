package nn

import (
	"fmt"

	"github.com/zachahn/micrbograd/internal/autodiff"
)

// Layer is a row of neurons that all read the same inputs.
//
// Performs: yⱼ = neuronⱼ(x) for j in [0, nout)
//
// Example:
//
//	layer := nn.NewLayer(3, 4, nn.NeuronConfig{})
//	out, err := layer.Forward(inputs) // len(out) == 4
type Layer struct {
	inFeatures int
	neurons    []*Neuron
}

// NewLayer creates a layer of nout neurons with nin inputs each.
//
// Panics if nin or nout is negative.
func NewLayer(nin, nout int, cfg NeuronConfig) *Layer {
	if nout < 0 {
		panic(fmt.Sprintf("NewLayer: negative output count %d", nout))
	}
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, cfg)
	}
	return &Layer{
		inFeatures: nin,
		neurons:    neurons,
	}
}

// Forward computes every neuron's output for x.
//
// Returns an error wrapping ErrDimensionMismatch if len(x) differs from
// the layer's input count.
func (l *Layer) Forward(x []*autodiff.Value) ([]*autodiff.Value, error) {
	if len(x) != l.inFeatures {
		return nil, fmt.Errorf("layer: %w: expected %d inputs, got %d",
			ErrDimensionMismatch, l.inFeatures, len(x))
	}

	out := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		y, err := n.Forward(x)
		if err != nil {
			return nil, err
		}
		out[i] = y
	}
	return out, nil
}

// ForwardScalar is Forward for a single-neuron layer, returning its one output unwrapped.
//
// Returns an error wrapping ErrDimensionMismatch if the layer does not
// have exactly one neuron.
func (l *Layer) ForwardScalar(x []*autodiff.Value) (*autodiff.Value, error) {
	return unwrapScalar(l.Forward(x))
}

// Parameters returns the parameters of every neuron in order.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradient of every parameter.
func (l *Layer) ZeroGrad() {
	zeroGrad(l.Parameters())
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// InFeatures returns the number of inputs.
func (l *Layer) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of neurons.
func (l *Layer) OutFeatures() int {
	return len(l.neurons)
}

// unwrapScalar returns the only element of out.
func unwrapScalar(out []*autodiff.Value, err error) (*autodiff.Value, error) {
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("%w: expected a single output, got %d", ErrDimensionMismatch, len(out))
	}
	return out[0], nil
}

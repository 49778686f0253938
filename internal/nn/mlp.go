package nn

import (
	"fmt"

	"github.com/zachahn/micrbograd/internal/autodiff"
)

// MLPConfig holds configuration for MLP construction.
type MLPConfig struct {
	NeuronConfig

	// LinearOutput disables tanh on the final layer only.
	// Ignored when NeuronConfig.Linear is set, which disables it everywhere.
	LinearOutput bool
}

// MLP is a multi-layer perceptron: layers chained nin → sizes[0] → sizes[1] → …
//
// Each layer's output becomes the next layer's input.
//
// Example:
//
//	model, err := nn.NewMLP(3, []int{4, 4, 1}, nn.MLPConfig{})
//	pred, err := model.ForwardScalar(x) // final width is 1
//
// This is equivalent to:
//
//	h1, _ := layer1.Forward(x)
//	h2, _ := layer2.Forward(h1)
//	pred, _ := layer3.ForwardScalar(h2)
type MLP struct {
	inFeatures int
	layers     []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of sizes.
//
// Returns an error wrapping ErrInvalidConfig if nin is negative, sizes is
// empty, or any width is not positive.
func NewMLP(nin int, sizes []int, cfg MLPConfig) (*MLP, error) {
	if nin < 0 {
		return nil, fmt.Errorf("mlp: %w: negative input count %d", ErrInvalidConfig, nin)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("mlp: %w: at least one layer is required", ErrInvalidConfig)
	}
	for i, size := range sizes {
		if size <= 0 {
			return nil, fmt.Errorf("mlp: %w: layer %d has width %d", ErrInvalidConfig, i, size)
		}
	}

	layers := make([]*Layer, len(sizes))
	prev := nin
	for i, size := range sizes {
		layerCfg := cfg.NeuronConfig
		if i == len(sizes)-1 && cfg.LinearOutput {
			layerCfg.Linear = true
		}
		layers[i] = NewLayer(prev, size, layerCfg)
		prev = size
	}

	return &MLP{
		inFeatures: nin,
		layers:     layers,
	}, nil
}

// Forward threads x through every layer and returns the final layer's outputs.
//
// Returns an error wrapping ErrDimensionMismatch if len(x) differs from
// the MLP's input count.
func (m *MLP) Forward(x []*autodiff.Value) ([]*autodiff.Value, error) {
	if len(x) != m.inFeatures {
		return nil, fmt.Errorf("mlp: %w: expected %d inputs, got %d",
			ErrDimensionMismatch, m.inFeatures, len(x))
	}

	out := x
	for i, layer := range m.layers {
		next, err := layer.Forward(out)
		if err != nil {
			return nil, fmt.Errorf("mlp: layer %d: %w", i, err)
		}
		out = next
	}
	return out, nil
}

// ForwardScalar is Forward for an MLP whose final layer has width 1.
func (m *MLP) ForwardScalar(x []*autodiff.Value) (*autodiff.Value, error) {
	return unwrapScalar(m.Forward(x))
}

// Parameters returns the parameters of every layer, first layer first.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradient of every parameter.
func (m *MLP) ZeroGrad() {
	zeroGrad(m.Parameters())
}

// NumParameters returns the total number of scalar parameters.
func (m *MLP) NumParameters() int {
	total := 0
	for _, layer := range m.layers {
		total += layer.OutFeatures() * (layer.InFeatures() + 1)
	}
	return total
}

// Layers returns the MLP's layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// InFeatures returns the number of inputs.
func (m *MLP) InFeatures() int {
	return m.inFeatures
}

// OutFeatures returns the width of the final layer.
func (m *MLP) OutFeatures() int {
	return m.layers[len(m.layers)-1].OutFeatures()
}

// StateDict returns a snapshot of every parameter value in Parameters order.
func (m *MLP) StateDict() []float64 {
	return StateDict(m)
}

// LoadStateDict overwrites every parameter value from a StateDict snapshot.
func (m *MLP) LoadStateDict(state []float64) error {
	return LoadStateDict(m, state)
}

// StateDict returns a snapshot of every parameter value of module in Parameters order.
func StateDict(module Module) []float64 {
	params := module.Parameters()
	state := make([]float64, len(params))
	for i, p := range params {
		state[i] = p.Data()
	}
	return state
}

// LoadStateDict overwrites every parameter value of module from state.
//
// Gradients are left untouched. Returns an error wrapping
// ErrDimensionMismatch if len(state) differs from the parameter count;
// nothing is written in that case.
func LoadStateDict(module Module, state []float64) error {
	params := module.Parameters()
	if len(state) != len(params) {
		return fmt.Errorf("load state dict: %w: expected %d values, got %d",
			ErrDimensionMismatch, len(params), len(state))
	}
	for i, p := range params {
		p.SetData(state[i])
	}
	return nil
}

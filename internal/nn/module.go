// Package nn implements trainable units built from scalar autodiff values.
//
// This package provides building blocks for small feed-forward networks:
//   - Module interface: Parameters and ZeroGrad shared by every unit
//   - Neuron: tanh(Σ wᵢxᵢ + b) over scalar inputs
//   - Layer: a row of neurons sharing the same inputs
//   - MLP: layers chained input to output
//
// Every parameter is an *autodiff.Value leaf. Forward builds a fresh graph
// on each call; the parameters are the only nodes that survive between
// training iterations.
package nn

import (
	"github.com/zachahn/micrbograd/internal/autodiff"
)

// Module is the base interface for all units.
//
// Units can be composed: a Layer owns Neurons, an MLP owns Layers, and
// Parameters on the outer unit returns the parameters of every inner one.
type Module interface {
	// Parameters returns all trainable leaves owned by this unit, in a
	// stable order: the same unit always returns the same nodes in the
	// same positions.
	Parameters() []*autodiff.Value

	// ZeroGrad resets the gradient of every parameter.
	//
	// This should be called before each backward pass to avoid
	// accumulating gradients from previous iterations.
	ZeroGrad()
}

// zeroGrad resets every value in params.
func zeroGrad(params []*autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}

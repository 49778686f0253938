// Copyright 2025 The micrbograd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/zachahn/micrbograd/autodiff"
	"github.com/zachahn/micrbograd/internal/nn"
)

// Module interface defines the common interface for all units.
type Module = nn.Module

// NeuronConfig holds construction options shared by Neuron, Layer and MLP.
type NeuronConfig = nn.NeuronConfig

// MLPConfig holds configuration for MLP construction.
type MLPConfig = nn.MLPConfig

// Errors.
var (
	ErrDimensionMismatch = nn.ErrDimensionMismatch
	ErrInvalidConfig     = nn.ErrInvalidConfig
)

// Units

// Neuron computes tanh(Σ wᵢxᵢ + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs.
//
// Example:
//
//	n := nn.NewNeuron(2, nn.NeuronConfig{})
//	out, err := n.Forward(inputs)
func NewNeuron(nin int, cfg NeuronConfig) *Neuron {
	return nn.NewNeuron(nin, cfg)
}

// Layer is a row of neurons reading the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
//
// Example:
//
//	layer := nn.NewLayer(3, 4, nn.NeuronConfig{})
//	out, err := layer.Forward(inputs) // len(out) == 4
func NewLayer(nin, nout int, cfg NeuronConfig) *Layer {
	return nn.NewLayer(nin, nout, cfg)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP creates an MLP with nin inputs and one layer per entry of sizes.
//
// Example:
//
//	model, err := nn.NewMLP(3, []int{4, 4, 1}, nn.MLPConfig{})
func NewMLP(nin int, sizes []int, cfg MLPConfig) (*MLP, error) {
	return nn.NewMLP(nin, sizes, cfg)
}

// Initialization

// Uniform creates n parameter leaves drawn from U(-1, 1).
func Uniform(n int, rng *rand.Rand) []*autodiff.Value {
	return nn.Uniform(n, rng)
}

// Serialization

// StateDict returns a snapshot of every parameter value of module.
func StateDict(module Module) []float64 {
	return nn.StateDict(module)
}

// LoadStateDict overwrites every parameter value of module from state.
func LoadStateDict(module Module, state []float64) error {
	return nn.LoadStateDict(module, state)
}

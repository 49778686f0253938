// Copyright 2025 The micrbograd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides trainable units built from scalar autodiff values.
//
// # Overview
//
// This package contains:
//   - Neuron: tanh(Σ wᵢxᵢ + b)
//   - Layer: neurons sharing the same inputs
//   - MLP: layers chained input to output
//   - Module interface: Parameters and ZeroGrad
//   - StateDict / LoadStateDict: snapshot and restore parameter values
//
// # Basic Usage
//
//	import (
//	    "github.com/zachahn/micrbograd/autodiff"
//	    "github.com/zachahn/micrbograd/nn"
//	)
//
//	func main() {
//	    model, err := nn.NewMLP(3, []int{4, 4, 1}, nn.MLPConfig{})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    x := []*autodiff.Value{autodiff.New(2), autodiff.New(3), autodiff.New(-1)}
//	    pred, err := model.ForwardScalar(x)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    model.ZeroGrad()
//	    pred.Backward()
//	    for _, p := range model.Parameters() {
//	        fmt.Println(p.Grad())
//	    }
//	}
//
// # Errors
//
// Forward returns an error wrapping ErrDimensionMismatch when the input
// length differs from the unit's input count. NewMLP returns an error
// wrapping ErrInvalidConfig for an empty or non-positive layer list.
//
// # Initialization
//
// Weights and biases are drawn uniformly from [-1, 1]. Pass a seeded
// *rand.Rand in NeuronConfig.Rand for reproducible models.
package nn

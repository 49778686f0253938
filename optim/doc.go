// Copyright 2025 The micrbograd Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training nn units.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - MSE: mean squared error loss
//   - Optimizer interface for custom optimizers
//
// # Training Loop Pattern
//
//	optimizer, err := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//	if err != nil {
//	    return err
//	}
//
//	for step := range steps {
//	    // 1. Zero gradients
//	    optimizer.ZeroGrad()
//
//	    // 2. Forward pass
//	    loss, err := optim.MSE(predict(model, inputs), targets)
//	    if err != nil {
//	        return err
//	    }
//
//	    // 3. Backward pass
//	    loss.Backward()
//
//	    // 4. Update parameters
//	    optimizer.Step()
//	}
package optim

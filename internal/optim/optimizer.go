// Package optim implements optimization algorithms for training units built on autodiff values.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//   - MSE: mean squared error built from autodiff operators
//
// Optimizers read each parameter's accumulated gradient and write the
// updated value back with SetData.
//
// Example usage:
//
//	optimizer, err := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for step := range steps {
//	    optimizer.ZeroGrad()
//	    loss, err := optim.MSE(predictions(model), targets)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import (
	"errors"

	"github.com/zachahn/micrbograd/internal/autodiff"
)

// ErrInvalidConfig is returned for out-of-range hyperparameters.
var ErrInvalidConfig = errors.New("invalid optimizer configuration")

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter using its current gradient.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// This should be called before each backward pass to prevent
	// gradient accumulation from previous iterations.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// zeroGrad resets every parameter's gradient.
func zeroGrad(params []*autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}

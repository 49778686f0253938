package optim

import (
	"fmt"

	"github.com/zachahn/micrbograd/internal/autodiff"
	"github.com/zachahn/micrbograd/internal/nn"
)

// MSE computes the mean squared error between predictions and targets.
//
// Forward:
//
//	loss = Σ (pred_i - target_i)² / n
//
// The result is an ordinary autodiff graph; call Backward on it to
// populate the gradients of everything the predictions depend on.
//
// Returns an error wrapping nn.ErrDimensionMismatch if the slices differ
// in length or are empty.
func MSE(preds, targets []*autodiff.Value) (*autodiff.Value, error) {
	if len(preds) != len(targets) || len(preds) == 0 {
		return nil, fmt.Errorf("mse: %w: %d predictions, %d targets",
			nn.ErrDimensionMismatch, len(preds), len(targets))
	}

	terms := make([]*autodiff.Value, len(preds))
	for i := range preds {
		terms[i] = preds[i].Sub(targets[i]).Pow(2)
	}
	return autodiff.Sum(terms...).MulScalar(1 / float64(len(terms))), nil
}

package nn

import (
	"math/rand"

	"github.com/zachahn/micrbograd/internal/autodiff"
)

// Uniform creates n parameter leaves drawn from U(-1, 1).
//
// Parameters:
//   - n: Number of values
//   - rng: Random source; nil uses the process-wide source
//
// Returns a slice of n fresh leaves.
func Uniform(n int, rng *rand.Rand) []*autodiff.Value {
	values := make([]*autodiff.Value, n)
	for i := range values {
		values[i] = autodiff.New(uniform(rng))
	}
	return values
}

// uniform returns one value in [-1, 1).
func uniform(rng *rand.Rand) float64 {
	if rng == nil {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		return rand.Float64()*2.0 - 1.0
	}
	return rng.Float64()*2.0 - 1.0
}

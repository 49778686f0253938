package optim_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/zachahn/micrbograd/internal/autodiff"
	"github.com/zachahn/micrbograd/internal/nn"
	"github.com/zachahn/micrbograd/internal/optim"
)

// withGrad returns a leaf x whose gradient is g.
func withGrad(x, g float64) *autodiff.Value {
	v := autodiff.New(x)
	v.MulScalar(g).Backward()
	return v
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	x := withGrad(2.0, 1.0)

	optimizer, err := optim.NewSGD([]*autodiff.Value{x}, optim.SGDConfig{LR: 0.1})
	require.NoError(t, err)

	optimizer.Step()

	// x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	assert.InDelta(t, 1.9, x.Data(), 1e-12)
	assert.Equal(t, 1.0, x.Grad(), "Step must not touch gradients")
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	x := withGrad(2.0, 1.0)

	optimizer, err := optim.NewSGD([]*autodiff.Value{x}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})
	require.NoError(t, err)

	// Step 1: velocity = 1.0, x = 2.0 - 0.1 * 1.0 = 1.9
	optimizer.Step()
	assert.InDelta(t, 1.9, x.Data(), 1e-12)

	// Step 2: velocity = 0.9 * 1.0 + 1.0 = 1.9, x = 1.9 - 0.19 = 1.71
	optimizer.Step()
	assert.InDelta(t, 1.71, x.Data(), 1e-12)
}

// TestSGD_Config tests defaults and validation.
func TestSGD_Config(t *testing.T) {
	optimizer, err := optim.NewSGD(nil, optim.SGDConfig{})
	require.NoError(t, err)
	assert.Equal(t, 0.01, optimizer.LR())

	optimizer.SetLR(0.5)
	assert.Equal(t, 0.5, optimizer.LR())

	for _, cfg := range []optim.SGDConfig{{LR: -1}, {Momentum: -0.1}, {Momentum: 1}} {
		_, err := optim.NewSGD(nil, cfg)
		assert.ErrorIs(t, err, optim.ErrInvalidConfig)
	}
}

// TestOptimizer_ZeroGrad tests gradient reset through the optimizer.
func TestOptimizer_ZeroGrad(t *testing.T) {
	params := []*autodiff.Value{withGrad(1, 3), withGrad(-1, 2)}

	sgd, err := optim.NewSGD(params, optim.SGDConfig{})
	require.NoError(t, err)
	adam, err := optim.NewAdam(params, optim.AdamConfig{})
	require.NoError(t, err)

	for _, optimizer := range []optim.Optimizer{sgd, adam} {
		params[0].MulScalar(3).Backward()
		optimizer.ZeroGrad()
		for _, p := range params {
			assert.Equal(t, 0.0, p.Grad())
		}
	}
}

// TestAdam_FirstStep tests that the first update has magnitude lr.
func TestAdam_FirstStep(t *testing.T) {
	x := withGrad(2.0, 0.5)
	y := withGrad(-1.0, -4.0)

	optimizer, err := optim.NewAdam([]*autodiff.Value{x, y}, optim.AdamConfig{LR: 0.1})
	require.NoError(t, err)

	optimizer.Step()

	// m_hat = g and v_hat = g², so the update is lr * sign(g).
	assert.InDelta(t, 1.9, x.Data(), 1e-6)
	assert.InDelta(t, -0.9, y.Data(), 1e-6)
	assert.Equal(t, 1, optimizer.Timestep())
	assert.Equal(t, 0.1, optimizer.LR())
}

// TestAdam_Config tests defaults and validation.
func TestAdam_Config(t *testing.T) {
	optimizer, err := optim.NewAdam(nil, optim.AdamConfig{})
	require.NoError(t, err)
	assert.Equal(t, 0.001, optimizer.LR())

	for _, cfg := range []optim.AdamConfig{
		{LR: -1},
		{Eps: -1},
		{Betas: [2]float64{1, 0.999}},
		{Betas: [2]float64{0.9, -0.5}},
	} {
		_, err := optim.NewAdam(nil, cfg)
		assert.ErrorIs(t, err, optim.ErrInvalidConfig)
	}
}

// TestMSE tests the loss value and its gradient.
func TestMSE(t *testing.T) {
	p := []float64{0.5, -0.25, 1}
	y := []float64{1, -1, 1}

	preds := make([]*autodiff.Value, len(p))
	targets := make([]*autodiff.Value, len(y))
	for i := range p {
		preds[i] = autodiff.New(p[i])
		targets[i] = autodiff.New(y[i])
	}

	loss, err := optim.MSE(preds, targets)
	require.NoError(t, err)

	d := floats.Distance(p, y, 2)
	assert.InDelta(t, d*d/3, loss.Data(), 1e-12)

	loss.Backward()
	for i := range p {
		// d/dp (p - y)² / n = 2 (p - y) / n
		assert.InDelta(t, 2*(p[i]-y[i])/3, preds[i].Grad(), 1e-12)
	}

	_, err = optim.MSE(preds, targets[:2])
	assert.ErrorIs(t, err, nn.ErrDimensionMismatch)

	_, err = optim.MSE(nil, nil)
	assert.ErrorIs(t, err, nn.ErrDimensionMismatch)
}

// TestTraining_ReducesLoss tests that a few descent steps fit the toy dataset.
func TestTraining_ReducesLoss(t *testing.T) {
	xs := [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	ys := []float64{1.0, -1.0, -1.0, 1.0}

	tests := []struct {
		name string
		make func(params []*autodiff.Value) (optim.Optimizer, error)
	}{
		{"SGD", func(params []*autodiff.Value) (optim.Optimizer, error) {
			return optim.NewSGD(params, optim.SGDConfig{LR: 0.05})
		}},
		{"SGD momentum", func(params []*autodiff.Value) (optim.Optimizer, error) {
			return optim.NewSGD(params, optim.SGDConfig{LR: 0.02, Momentum: 0.9})
		}},
		{"Adam", func(params []*autodiff.Value) (optim.Optimizer, error) {
			return optim.NewAdam(params, optim.AdamConfig{LR: 0.02})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := nn.MLPConfig{NeuronConfig: nn.NeuronConfig{Rand: rand.New(rand.NewSource(42))}} //nolint:gosec // deterministic test weights
			model, err := nn.NewMLP(3, []int{4, 4, 1}, cfg)
			require.NoError(t, err)

			optimizer, err := tt.make(model.Parameters())
			require.NoError(t, err)

			lossAt := func() *autodiff.Value {
				preds := make([]*autodiff.Value, len(xs))
				targets := make([]*autodiff.Value, len(ys))
				for i, x := range xs {
					in := []*autodiff.Value{autodiff.New(x[0]), autodiff.New(x[1]), autodiff.New(x[2])}
					pred, err := model.ForwardScalar(in)
					require.NoError(t, err)
					preds[i] = pred
					targets[i] = autodiff.New(ys[i])
				}
				loss, err := optim.MSE(preds, targets)
				require.NoError(t, err)
				return loss
			}

			initial := lossAt().Data()
			for i := 0; i < 100; i++ {
				optimizer.ZeroGrad()
				loss := lossAt()
				loss.Backward()
				optimizer.Step()
			}
			final := lossAt().Data()

			assert.False(t, math.IsNaN(final))
			assert.Less(t, final, initial)
		})
	}
}

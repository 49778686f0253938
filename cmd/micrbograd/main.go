// Package main provides the micrbograd CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/zachahn/micrbograd/autodiff"
	"github.com/zachahn/micrbograd/nn"
	"github.com/zachahn/micrbograd/optim"
)

const version = "v0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "micrbograd:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "micrbograd %s\n", version)
		return nil
	case "train":
		return runTrain(args[1:], out)
	default:
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "micrbograd - scalar autodiff and tiny MLPs")
	fmt.Fprintf(out, "Version: %s\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  train      Fit a 3-4-4-1 MLP to a four-sample toy dataset")
}

// trainConfig holds the flags of the train command.
type trainConfig struct {
	steps int
	lr    float64
	seed  int64
}

func runTrain(args []string, out io.Writer) error {
	var cfg trainConfig

	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&cfg.steps, "steps", 100, "number of gradient descent steps")
	fs.Float64Var(&cfg.lr, "lr", 0.05, "learning rate")
	fs.Int64Var(&cfg.seed, "seed", 1, "weight initialization seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.steps < 0 {
		return fmt.Errorf("train: steps must be non-negative, got %d", cfg.steps)
	}

	return train(cfg, out)
}

var (
	inputs = [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	targets = []float64{1.0, -1.0, -1.0, 1.0}
)

func train(cfg trainConfig, out io.Writer) error {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	rng := rand.New(rand.NewSource(cfg.seed))

	model, err := nn.NewMLP(3, []int{4, 4, 1}, nn.MLPConfig{NeuronConfig: nn.NeuronConfig{Rand: rng}})
	if err != nil {
		return err
	}
	optimizer, err := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: cfg.lr})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "MLP 3-4-4-1, %d parameters, lr=%g\n", model.NumParameters(), optimizer.LR())

	for step := 0; step < cfg.steps; step++ {
		optimizer.ZeroGrad()

		preds, err := predict(model)
		if err != nil {
			return err
		}
		loss, err := optim.MSE(preds, leaves(targets))
		if err != nil {
			return err
		}

		loss.Backward()
		optimizer.Step()

		if step%10 == 0 || step == cfg.steps-1 {
			fmt.Fprintf(out, "step %4d  loss %.6f\n", step, loss.Data())
		}
	}

	preds, err := predict(model)
	if err != nil {
		return err
	}
	for i, p := range preds {
		fmt.Fprintf(out, "x=%v  target=%+.1f  pred=%+.4f\n", inputs[i], targets[i], p.Data())
	}
	return nil
}

// predict runs the model over every input row.
func predict(model *nn.MLP) ([]*autodiff.Value, error) {
	preds := make([]*autodiff.Value, len(inputs))
	for i, x := range inputs {
		pred, err := model.ForwardScalar(leaves(x))
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		preds[i] = pred
	}
	return preds, nil
}

// leaves wraps each float in a constant leaf.
func leaves(xs []float64) []*autodiff.Value {
	out := make([]*autodiff.Value, len(xs))
	for i, x := range xs {
		out[i] = autodiff.New(x)
	}
	return out
}

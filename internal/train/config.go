// Package train drives the forward, loss, backward and update cycle for a
// densenet model over an in-memory dataset.
package train

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/born-ml/densenet/internal/nn"
	"github.com/born-ml/densenet/internal/parallel"
)

// ErrInvalidConfig is the cause of every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid training config")

// Config holds the hyperparameters of a training run and the shape of the
// two-layer model built by BuildModel.
type Config struct {
	Epochs           int     // Number of update steps; the loop runs epochs 0..Epochs inclusive.
	LearningRate     float64 // SGD step size.
	Hidden           int     // Width of the hidden layer.
	HiddenActivation string  // Activation of the hidden layer.
	OutputActivation string  // Activation of the output layer.
	Initializer      string  // Weight initializer: "uniform" or "xavier".
	Seed             uint64  // Seed for weight initialization.
	ReportEvery      int     // Report loss every N epochs; 0 reports only the last epoch.

	// Parallel controls the optimizer's per-parameter fan-out.
	Parallel parallel.Config
}

// DefaultConfig returns the settings for the XOR problem: a 2-3-1
// tanh/sigmoid network trained for 10000 epochs at learning rate 0.1.
func DefaultConfig() Config {
	return Config{
		Epochs:           10000,
		LearningRate:     0.1,
		Hidden:           3,
		HiddenActivation: "tanh",
		OutputActivation: "sigmoid",
		Initializer:      "uniform",
		Seed:             42,
		ReportEvery:      1000,
		Parallel:         parallel.Sequential(),
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Epochs < 0:
		return errors.Wrapf(ErrInvalidConfig, "epochs must not be negative, got %d", c.Epochs)
	case c.LearningRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "learning rate must be positive, got %g", c.LearningRate)
	case c.Hidden <= 0:
		return errors.Wrapf(ErrInvalidConfig, "hidden width must be positive, got %d", c.Hidden)
	case c.ReportEvery < 0:
		return errors.Wrapf(ErrInvalidConfig, "report interval must not be negative, got %d", c.ReportEvery)
	}

	if _, err := nn.ActivationByName(c.HiddenActivation); err != nil {
		return errors.Wrap(ErrInvalidConfig, "hidden activation: "+err.Error())
	}
	if _, err := nn.ActivationByName(c.OutputActivation); err != nil {
		return errors.Wrap(ErrInvalidConfig, "output activation: "+err.Error())
	}
	if _, err := nn.InitializerByName(c.Initializer); err != nil {
		return errors.Wrap(ErrInvalidConfig, "initializer: "+err.Error())
	}

	return nil
}

// BuildModel creates the in -> Hidden -> out network described by cfg.
//
// Weights are drawn from a PCG generator seeded with cfg.Seed, so the same
// config always yields the same starting network.
func BuildModel(cfg Config, in, out int) (*nn.Sequential, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if in <= 0 || out <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "model dimensions must be positive, got %d -> %d", in, out)
	}

	hiddenAct, _ := nn.ActivationByName(cfg.HiddenActivation)
	outputAct, _ := nn.ActivationByName(cfg.OutputActivation)
	initializer, _ := nn.InitializerByName(cfg.Initializer)

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	return nn.NewSequential(
		nn.NewDense(in, cfg.Hidden, hiddenAct, rng, nn.WithInitializer(initializer)),
		nn.NewDense(cfg.Hidden, out, outputAct, rng, nn.WithInitializer(initializer)),
	), nil
}

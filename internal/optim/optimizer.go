// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: plain Stochastic Gradient Descent
//
// Optimizers read the gradients that a backward pass left on each
// nn.Parameter and update the parameter values in place.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	for epoch := range epochs {
//	    output := model.Forward(inputs)
//	    model.Backward(lossFn.Backward(targets, output))
//	    optimizer.Step()
//	}
package optim

import (
	"github.com/born-ml/densenet/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring)
type Optimizer interface {
	// Step applies the gradients currently stored on the parameters.
	//
	// Parameters without a gradient are left unchanged.
	Step()

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// ParameterSet is anything that exposes trainable parameters, such as
// *nn.Sequential or *nn.Dense.
type ParameterSet interface {
	Parameters() []*nn.Parameter
}

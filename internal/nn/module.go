// Package nn implements neural network layers for the densenet framework.
//
// This package provides building blocks for small feed-forward networks:
//   - Layer interface: forward, backward and parameter access
//   - Parameter: trainable matrix with its gradient
//   - Dense: fully connected layer with a built-in activation
//   - Activations: Sigmoid, Tanh, ReLU
//   - Loss functions: MSE
//   - Sequential: container for stacking layers
//
// All numeric data is held in gonum *mat.Dense matrices. Gradients are
// computed by hand with the chain rule, layer by layer; there is no tape.
package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Layer is the interface implemented by every trainable network component.
//
// Layers are stateful across one forward/backward pair: Forward caches what
// Backward needs, and Backward stores parameter gradients on the layer's
// Parameters. Backward is only valid right after Forward on the same batch.
type Layer interface {
	// Forward computes the layer output for a [batch, in] input.
	Forward(input mat.Matrix) *mat.Dense

	// Backward takes dLoss/dOutput and returns dLoss/dInput, refreshing
	// the gradients of Parameters as a side effect.
	Backward(outputGrad mat.Matrix) *mat.Dense

	// Parameters returns all trainable parameters of this layer.
	Parameters() []*Parameter
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/densenet/internal/nn"
)

// Layer is the interface implemented by every trainable network component.
type Layer = nn.Layer

// Parameter represents a trainable parameter in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and value.
func NewParameter(name string, value *mat.Dense) *Parameter {
	return nn.NewParameter(name, value)
}

// Layers

// Dense represents a fully connected layer followed by an activation.
type Dense = nn.Dense

// DenseOption configures NewDense.
type DenseOption = nn.DenseOption

// NewDense creates a new dense layer with random weights and zero biases.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(42, 42))
//	layer := nn.NewDense(2, 3, nn.Tanh{}, rng)
func NewDense(inFeatures, outFeatures int, act Activation, rng *rand.Rand, opts ...DenseOption) *Dense {
	return nn.NewDense(inFeatures, outFeatures, act, rng, opts...)
}

// NewDenseFromWeights creates a dense layer with explicit weights
// [in, out] and biases [1, out].
func NewDenseFromWeights(weights, biases mat.Matrix, act Activation) *Dense {
	return nn.NewDenseFromWeights(weights, biases, act)
}

// WithInitializer sets the weight initializer of NewDense.
func WithInitializer(init Initializer) DenseOption {
	return nn.WithInitializer(init)
}

// Activations

// Activation is an element-wise nonlinearity whose Backward takes the
// forward output.
type Activation = nn.Activation

// Sigmoid is the logistic activation 1 / (1 + exp(-x)).
type Sigmoid = nn.Sigmoid

// Tanh is the hyperbolic tangent activation.
type Tanh = nn.Tanh

// ReLU is the rectified linear unit max(0, x).
type ReLU = nn.ReLU

// ErrUnknownActivation is returned by ActivationByName for unsupported names.
var ErrUnknownActivation = nn.ErrUnknownActivation

// ActivationByName resolves "sigmoid", "tanh" or "relu".
func ActivationByName(name string) (Activation, error) {
	return nn.ActivationByName(name)
}

// Loss functions

// Loss measures how far predictions are from targets.
type Loss = nn.Loss

// MSELoss is the mean squared error loss.
type MSELoss = nn.MSELoss

// Containers

// Sequential chains layers together.
type Sequential = nn.Sequential

// NewSequential creates a new sequential container.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewDense(2, 3, nn.Tanh{}, rng),
//	    nn.NewDense(3, 1, nn.Sigmoid{}, rng),
//	)
func NewSequential(layers ...Layer) *Sequential {
	return nn.NewSequential(layers...)
}

// Initialization

// Initializer fills a fresh [fanIn, fanOut] weight matrix.
type Initializer = nn.Initializer

// ErrUnknownInitializer is returned by InitializerByName for unsupported names.
var ErrUnknownInitializer = nn.ErrUnknownInitializer

// Uniform draws weights from U(low, high).
func Uniform(low, high float64) Initializer {
	return nn.Uniform(low, high)
}

// Xavier draws weights from the Glorot uniform distribution.
func Xavier() Initializer {
	return nn.Xavier()
}

// InitializerByName resolves "uniform" or "xavier".
func InitializerByName(name string) (Initializer, error) {
	return nn.InitializerByName(name)
}

// Zeros creates a zero-filled [rows, cols] matrix.
func Zeros(rows, cols int) *mat.Dense {
	return nn.Zeros(rows, cols)
}

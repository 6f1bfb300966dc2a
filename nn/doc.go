// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers and building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: Dense (fully connected layer with a built-in activation)
//   - Activations: Sigmoid, Tanh, ReLU
//   - Loss functions: MSELoss
//   - Utilities: Sequential, Layer interface, Parameter
//   - Initialization: Uniform, Xavier, Zeros
//
// Matrices are gonum *mat.Dense values of float64.
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/densenet/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewPCG(42, 42))
//
//	    model := nn.NewSequential(
//	        nn.NewDense(2, 3, nn.Tanh{}, rng),
//	        nn.NewDense(3, 1, nn.Sigmoid{}, rng),
//	    )
//
//	    output := model.Forward(inputs)
//	    model.Backward(nn.MSELoss{}.Backward(targets, output))
//	}
//
// # Activations
//
// Backward of every activation takes the forward output, not the input:
//
//	y := nn.Sigmoid{}.Forward(x)
//	dy := nn.Sigmoid{}.Backward(y) // y * (1 - y)
//
// # Forward and Backward
//
// A Dense layer caches its input and output on Forward. Backward must follow
// a Forward on the same batch; calling it first panics. After Backward,
// GradWeights and GradBiases hold the gradients an optimizer consumes.
package nn

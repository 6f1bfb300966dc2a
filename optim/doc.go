// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: plain Stochastic Gradient Descent
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/densenet/nn"
//	    "github.com/born-ml/densenet/optim"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewPCG(42, 42))
//	    model := nn.NewSequential(
//	        nn.NewDense(2, 3, nn.Tanh{}, rng),
//	        nn.NewDense(3, 1, nn.Sigmoid{}, rng),
//	    )
//
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	    for range 10000 {
//	        output := model.Forward(inputs)
//	        model.Backward(nn.MSELoss{}.Backward(targets, output))
//	        optimizer.Step()
//	    }
//	}
//
// # Update Rule
//
// For every parameter p with gradient g:
//
//	p = p - LR * g
//
// Parameters without a gradient are left untouched. Gradients are overwritten
// by each Backward call, so ZeroGrad is only needed to drop stale gradients
// explicitly.
//
// # Parallel Updates
//
// Setting SGDConfig.Parallel fans the per-parameter updates out over a
// bounded worker pool. The result is identical to the sequential update.
package optim

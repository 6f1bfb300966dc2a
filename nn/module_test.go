// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/densenet/nn"
)

// TestLayerInterface verifies that concrete types implement Layer.
func TestLayerInterface(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	tests := []struct {
		name   string
		layer  nn.Layer
		params int
	}{
		{
			name:   "Dense",
			layer:  nn.NewDense(2, 3, nn.ReLU{}, rng),
			params: 2,
		},
		{
			name:   "DenseXavier",
			layer:  nn.NewDense(2, 3, nn.Tanh{}, rng, nn.WithInitializer(nn.Xavier())),
			params: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})
			out := tt.layer.Forward(input)
			if r, c := out.Dims(); r != 4 || c != 3 {
				t.Errorf("Forward dims = (%d, %d), want (4, 3)", r, c)
			}

			grad := tt.layer.Backward(mat.NewDense(4, 3, nil))
			if r, c := grad.Dims(); r != 4 || c != 2 {
				t.Errorf("Backward dims = (%d, %d), want (4, 2)", r, c)
			}

			if got := len(tt.layer.Parameters()); got != tt.params {
				t.Errorf("Parameters() length = %d, want %d", got, tt.params)
			}
		})
	}
}

// TestSequentialRoundTrip runs one forward and backward pass through the
// public API.
func TestSequentialRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	model := nn.NewSequential(
		nn.NewDense(2, 3, nn.Tanh{}, rng),
		nn.NewDense(3, 1, nn.Sigmoid{}, rng),
	)
	x := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})
	y := mat.NewDense(4, 1, []float64{0, 1, 1, 0})

	out := model.Forward(x)
	model.Backward(nn.MSELoss{}.Backward(y, out))

	for _, p := range model.Parameters() {
		if p.Grad() == nil {
			t.Errorf("parameter %s has no gradient after Backward", p.Name())
		}
	}
}

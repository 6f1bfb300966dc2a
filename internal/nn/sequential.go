package nn

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Sequential is a container that chains multiple layers together.
//
// Each layer's output becomes the next layer's input on the forward pass,
// and gradients flow through the layers in reverse on the backward pass.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewDense(2, 3, nn.Tanh{}, rng),
//	    nn.NewDense(3, 1, nn.Sigmoid{}, rng),
//	)
//
//	output := model.Forward(input)
//	model.Backward(lossGrad)
//
// Adjacent layers must agree on width: the output width of layer i is the
// input width of layer i+1. A mismatch panics on the first Forward.
type Sequential struct {
	layers []Layer
}

// NewSequential creates a new Sequential container.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{
		layers: layers,
	}
}

// Forward applies all layers in sequence and returns the last output.
//
// With no layers the result is a copy of the input.
func (s *Sequential) Forward(input mat.Matrix) *mat.Dense {
	output := mat.DenseCopyOf(input)

	for _, layer := range s.layers {
		output = layer.Forward(output)
	}

	return output
}

// Backward propagates the loss gradient through all layers in reverse order.
//
// Every layer's parameter gradients are refreshed. The gradient with respect
// to the model input is discarded since nothing precedes the first layer.
func (s *Sequential) Backward(outputGrad mat.Matrix) {
	grad := outputGrad

	for i := len(s.layers) - 1; i >= 0; i-- {
		grad = s.layers[i].Backward(grad)
	}
}

// Predict runs a forward pass. It is Forward under the name used for
// inference.
func (s *Sequential) Predict(input mat.Matrix) *mat.Dense {
	return s.Forward(input)
}

// Parameters returns all trainable parameters from all layers, in layer
// order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter

	for _, layer := range s.layers {
		params = append(params, layer.Parameters()...)
	}

	return params
}

// Add appends a layer to the sequence.
func (s *Sequential) Add(layer Layer) {
	s.layers = append(s.layers, layer)
}

// Len returns the number of layers in the sequence.
func (s *Sequential) Len() int {
	return len(s.layers)
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Layer(index int) Layer {
	if index < 0 || index >= len(s.layers) {
		panic(fmt.Sprintf("Sequential.Layer: index %d out of bounds [0, %d)", index, len(s.layers)))
	}
	return s.layers[index]
}

func (s *Sequential) String() string {
	parts := make([]string, len(s.layers))
	for i, layer := range s.layers {
		parts[i] = fmt.Sprint(layer)
	}
	return "Sequential[" + strings.Join(parts, ", ") + "]"
}

package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters hold the matrices an optimizer updates, typically the weights
// and biases of a Dense layer, together with the gradient produced by the
// most recent backward pass.
//
// Example:
//
//	// Create a weight parameter
//	weight := nn.NewParameter("weight", mat.NewDense(2, 3, nil))
//
//	// Get gradient after backward pass
//	grad := weight.Grad()
type Parameter struct {
	name  string     // Parameter name (e.g., "weight", "bias")
	value *mat.Dense // The parameter values, updated in place by optimizers
	grad  *mat.Dense // Gradient from the last backward pass, nil until then
}

// NewParameter creates a new trainable parameter.
//
// The value is used as is, not copied. Gradient stays nil until a backward
// pass sets it.
func NewParameter(name string, value *mat.Dense) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter matrix.
func (p *Parameter) Value() *mat.Dense {
	return p.value
}

// Shape returns the (rows, cols) of the parameter matrix.
func (p *Parameter) Shape() (rows, cols int) {
	return p.value.Dims()
}

// Grad returns the gradient matrix.
//
// Returns nil if no gradient has been computed yet (before backward pass).
func (p *Parameter) Grad() *mat.Dense {
	return p.grad
}

// SetGrad sets the gradient matrix.
//
// This is called by layers during the backward pass.
func (p *Parameter) SetGrad(grad *mat.Dense) {
	p.grad = grad
}

// ZeroGrad clears the gradient.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}

package nn

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Dense implements a fully connected layer followed by an activation.
//
// Performs the transformation: y = act(x @ W + b)
// where:
//   - x is the input matrix with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features], broadcast over the batch
//   - y is the output matrix with shape [batch_size, out_features]
//
// Forward caches x and y; Backward uses them to compute the weight and bias
// gradients. Only one forward/backward pair can be in flight per layer.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(42, 42))
//	layer := nn.NewDense(2, 3, nn.Tanh{}, rng)
//
//	output := layer.Forward(input)          // shape: [batch, 3]
//	inputGrad := layer.Backward(outputGrad) // shape: [batch, 2]
type Dense struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [in_features, out_features]
	bias        *Parameter // [1, out_features]
	activation  Activation

	lastInput  *mat.Dense // [batch, in_features]
	lastOutput *mat.Dense // [batch, out_features], post-activation
	ready      bool       // set by Forward
}

// DenseOption configures NewDense.
type DenseOption func(*denseOptions)

type denseOptions struct {
	init Initializer
}

// WithInitializer sets the weight initializer. The default is Uniform(-1, 1).
func WithInitializer(init Initializer) DenseOption {
	return func(o *denseOptions) {
		o.init = init
	}
}

// NewDense creates a new Dense layer with random weights and zero biases.
//
// Parameters:
//   - inFeatures: Number of input features
//   - outFeatures: Number of neurons
//   - act: Activation applied to the linear output
//   - rng: Source of randomness for weight initialization
//
// Panics if a dimension is not positive or act/rng is nil.
func NewDense(inFeatures, outFeatures int, act Activation, rng *rand.Rand, opts ...DenseOption) *Dense {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("NewDense: dimensions must be positive, got [%d, %d]", inFeatures, outFeatures))
	}
	if rng == nil {
		panic("NewDense: rng must not be nil")
	}

	o := denseOptions{init: Uniform(-1, 1)}
	for _, opt := range opts {
		opt(&o)
	}

	return newDense(o.init(inFeatures, outFeatures, rng), Zeros(1, outFeatures), act)
}

// NewDenseFromWeights creates a Dense layer with explicit parameters.
//
// weights must be [in_features, out_features] and biases [1, out_features].
// Both are copied. Panics on any other shape.
func NewDenseFromWeights(weights, biases mat.Matrix, act Activation) *Dense {
	_, wc := weights.Dims()
	br, bc := biases.Dims()
	if br != 1 || bc != wc {
		panic(fmt.Sprintf("NewDenseFromWeights: biases must be [1, %d], got [%d, %d]", wc, br, bc))
	}
	return newDense(mat.DenseCopyOf(weights), mat.DenseCopyOf(biases), act)
}

func newDense(weights, biases *mat.Dense, act Activation) *Dense {
	if act == nil {
		panic("Dense: activation must not be nil")
	}
	in, out := weights.Dims()
	return &Dense{
		inFeatures:  in,
		outFeatures: out,
		weight:      NewParameter("weight", weights),
		bias:        NewParameter("bias", biases),
		activation:  act,
	}
}

// Forward computes act(input @ W + b).
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
//
// The input and output are cached for the next Backward call. The returned
// matrix is owned by the caller.
func (d *Dense) Forward(input mat.Matrix) *mat.Dense {
	rows, cols := input.Dims()
	if cols != d.inFeatures {
		panic(fmt.Sprintf("Dense.Forward: expected input with %d features, got [%d, %d]",
			d.inFeatures, rows, cols))
	}

	d.lastInput = mat.DenseCopyOf(input)

	// [batch, in] @ [in, out] = [batch, out]
	z := mat.NewDense(rows, d.outFeatures, nil)
	z.Mul(d.lastInput, d.weight.Value())

	// Broadcast the bias row over the batch.
	b := d.bias.Value().RawRowView(0)
	for i := 0; i < rows; i++ {
		floats.Add(z.RawRowView(i), b)
	}

	d.lastOutput = d.activation.Forward(z)
	d.ready = true

	return mat.DenseCopyOf(d.lastOutput)
}

// Backward propagates dLoss/dOutput through the layer.
//
// Sets the weight gradient to input.T @ g and the bias gradient to the
// column sums of g, where g = act'(output) * outputGrad. Bias gradients are
// summed over the batch, not averaged. Returns g @ W.T, the gradient for the
// preceding layer.
//
// Panics if Forward has not been called or the gradient shape does not match
// the cached output.
func (d *Dense) Backward(outputGrad mat.Matrix) *mat.Dense {
	if !d.ready {
		panic("Dense.Backward: called before Forward")
	}
	gr, gc := outputGrad.Dims()
	or, oc := d.lastOutput.Dims()
	if gr != or || gc != oc {
		panic(fmt.Sprintf("Dense.Backward: output gradient [%d, %d] does not match output [%d, %d]",
			gr, gc, or, oc))
	}

	// Chain rule through the activation.
	g := d.activation.Backward(d.lastOutput)
	g.MulElem(g, outputGrad)

	// [in, batch] @ [batch, out] = [in, out]
	gradW := mat.NewDense(d.inFeatures, d.outFeatures, nil)
	gradW.Mul(d.lastInput.T(), g)
	d.weight.SetGrad(gradW)

	gradB := mat.NewDense(1, d.outFeatures, nil)
	col := make([]float64, gr)
	for j := 0; j < d.outFeatures; j++ {
		gradB.Set(0, j, floats.Sum(mat.Col(col, j, g)))
	}
	d.bias.SetGrad(gradB)

	// [batch, out] @ [out, in] = [batch, in]
	inputGrad := mat.NewDense(gr, d.inFeatures, nil)
	inputGrad.Mul(g, d.weight.Value().T())

	return inputGrad
}

// Parameters returns [weight, bias].
func (d *Dense) Parameters() []*Parameter {
	return []*Parameter{d.weight, d.bias}
}

// Weights returns the weight matrix [in_features, out_features].
func (d *Dense) Weights() *mat.Dense {
	return d.weight.Value()
}

// Biases returns the bias row [1, out_features].
func (d *Dense) Biases() *mat.Dense {
	return d.bias.Value()
}

// GradWeights returns the weight gradient, or nil before the first Backward.
func (d *Dense) GradWeights() *mat.Dense {
	return d.weight.Grad()
}

// GradBiases returns the bias gradient, or nil before the first Backward.
func (d *Dense) GradBiases() *mat.Dense {
	return d.bias.Grad()
}

// Output returns the cached output of the last Forward, or nil.
func (d *Dense) Output() *mat.Dense {
	return d.lastOutput
}

// InFeatures returns the number of input features.
func (d *Dense) InFeatures() int {
	return d.inFeatures
}

// OutFeatures returns the number of output features.
func (d *Dense) OutFeatures() int {
	return d.outFeatures
}

// Activation returns the layer's activation.
func (d *Dense) Activation() Activation {
	return d.activation
}

func (d *Dense) String() string {
	return fmt.Sprintf("Dense(%d -> %d, %s)", d.inFeatures, d.outFeatures, d.activation.Name())
}

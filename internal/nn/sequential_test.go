package nn_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/densenet/internal/nn"
)

// recordingLayer is an identity layer that logs call order.
type recordingLayer struct {
	name string
	log  *[]string
}

func (r recordingLayer) Forward(input mat.Matrix) *mat.Dense {
	*r.log = append(*r.log, "forward "+r.name)
	return mat.DenseCopyOf(input)
}

func (r recordingLayer) Backward(grad mat.Matrix) *mat.Dense {
	*r.log = append(*r.log, "backward "+r.name)
	return mat.DenseCopyOf(grad)
}

func (r recordingLayer) Parameters() []*nn.Parameter { return nil }

func xorInputs() *mat.Dense {
	return mat.NewDense(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})
}

func TestSequential_Order(t *testing.T) {
	var calls []string
	model := nn.NewSequential(
		recordingLayer{"a", &calls},
		recordingLayer{"b", &calls},
		recordingLayer{"c", &calls},
	)

	model.Forward(mat.NewDense(1, 1, []float64{1}))
	model.Backward(mat.NewDense(1, 1, []float64{1}))

	assert.Equal(t, []string{
		"forward a", "forward b", "forward c",
		"backward c", "backward b", "backward a",
	}, calls)
}

func TestSequential_ForwardMatchesManualChain(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11))
	l1 := nn.NewDense(2, 3, nn.Tanh{}, rng)
	l2 := nn.NewDense(3, 1, nn.Sigmoid{}, rng)
	model := nn.NewSequential(l1, l2)

	got := model.Forward(xorInputs())

	manual1 := nn.NewDenseFromWeights(l1.Weights(), l1.Biases(), nn.Tanh{})
	manual2 := nn.NewDenseFromWeights(l2.Weights(), l2.Biases(), nn.Sigmoid{})
	want := manual2.Forward(manual1.Forward(xorInputs()))

	assert.True(t, mat.Equal(want, got))
	assert.True(t, mat.Equal(model.Predict(xorInputs()), got))
}

func TestSequential_BackwardPopulatesAllGradients(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	model := nn.NewSequential(
		nn.NewDense(2, 3, nn.Tanh{}, rng),
		nn.NewDense(3, 1, nn.Sigmoid{}, rng),
	)

	params := model.Parameters()
	require.Len(t, params, 4)
	for _, p := range params {
		assert.Nil(t, p.Grad(), p.Name())
	}

	out := model.Forward(xorInputs())
	targets := mat.NewDense(4, 1, []float64{0, 1, 1, 0})
	model.Backward(nn.MSELoss{}.Backward(targets, out))

	for _, p := range params {
		require.NotNil(t, p.Grad(), p.Name())
		gr, gc := p.Grad().Dims()
		vr, vc := p.Shape()
		assert.Equal(t, [2]int{vr, vc}, [2]int{gr, gc}, p.Name())
	}
}

func TestSequential_Empty(t *testing.T) {
	model := nn.NewSequential()
	x := mat.NewDense(1, 2, []float64{3, 4})

	out := model.Forward(x)
	model.Backward(x)

	assert.True(t, mat.Equal(x, out))
	assert.Zero(t, model.Len())
	assert.Empty(t, model.Parameters())
}

func TestSequential_AddAndLayer(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	first := nn.NewDense(2, 3, nn.ReLU{}, rng)
	model := nn.NewSequential(first)
	model.Add(nn.NewDense(3, 1, nn.Sigmoid{}, rng))

	assert.Equal(t, 2, model.Len())
	assert.Same(t, first, model.Layer(0))
	assert.Panics(t, func() { model.Layer(2) })
	assert.Panics(t, func() { model.Layer(-1) })
	assert.Equal(t, "Sequential[Dense(2 -> 3, relu), Dense(3 -> 1, sigmoid)]", model.String())
}

func TestSequential_WidthMismatchPanicsOnForward(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	model := nn.NewSequential(
		nn.NewDense(2, 3, nn.Tanh{}, rng),
		nn.NewDense(4, 1, nn.Sigmoid{}, rng),
	)

	assert.Panics(t, func() { model.Forward(xorInputs()) })
}

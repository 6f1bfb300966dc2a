package nn

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const fixtureEps = 1e-8

func activationInput() *mat.Dense {
	return mat.NewDense(2, 2, []float64{0, 1, -1, -2})
}

func assertMatrixNear(t *testing.T, want, got mat.Matrix, eps float64) {
	t.Helper()
	assert.Truef(t, mat.EqualApprox(want, got, eps),
		"want\n%v\ngot\n%v", mat.Formatted(want), mat.Formatted(got))
}

func TestSigmoidForward(t *testing.T) {
	got := Sigmoid{}.Forward(activationInput())
	want := mat.NewDense(2, 2, []float64{0.5, 0.73105858, 0.26894142, 0.11920292})
	assertMatrixNear(t, want, got, fixtureEps)
}

func TestSigmoidBackward(t *testing.T) {
	y := mat.NewDense(2, 2, []float64{0.5, 0.73105858, 0.26894142, 0.11920292})
	got := Sigmoid{}.Backward(y)
	want := mat.NewDense(2, 2, []float64{0.25, 0.19661193, 0.19661193, 0.10499359})
	assertMatrixNear(t, want, got, fixtureEps)
}

func TestTanhForward(t *testing.T) {
	got := Tanh{}.Forward(activationInput())
	want := mat.NewDense(2, 2, []float64{0.0, 0.76159416, -0.76159416, -0.96402758})
	assertMatrixNear(t, want, got, fixtureEps)
}

func TestTanhBackward(t *testing.T) {
	y := mat.NewDense(2, 2, []float64{0.0, 0.76159416, -0.76159416, -0.96402758})
	got := Tanh{}.Backward(y)
	want := mat.NewDense(2, 2, []float64{1.0, 0.41997434, 0.41997434, 0.07065082})
	assertMatrixNear(t, want, got, fixtureEps)
}

func TestReLUForward(t *testing.T) {
	got := ReLU{}.Forward(activationInput())
	want := mat.NewDense(2, 2, []float64{0, 1, 0, 0})
	assertMatrixNear(t, want, got, 0)
}

func TestReLUBackward(t *testing.T) {
	y := mat.NewDense(2, 2, []float64{0, 1, 0, 0})
	got := ReLU{}.Backward(y)
	want := mat.NewDense(2, 2, []float64{0, 1, 0, 0})
	assertMatrixNear(t, want, got, 0)
}

// TestActivationRange checks every forward output lies in the function's range.
func TestActivationRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	data := make([]float64, 200)
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * 5
	}
	data[0], data[1] = 0, -0
	x := mat.NewDense(20, 10, data)

	tests := []struct {
		act     Activation
		inRange func(v float64) bool
	}{
		{Sigmoid{}, func(v float64) bool { return v > 0 && v < 1 }},
		{Tanh{}, func(v float64) bool { return v > -1 && v < 1 }},
		{ReLU{}, func(v float64) bool { return v >= 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.act.Name(), func(t *testing.T) {
			y := tt.act.Forward(x)
			r, c := y.Dims()
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					v := y.At(i, j)
					if !tt.inRange(v) || math.IsNaN(v) {
						t.Errorf("%s(%v) = %v out of range", tt.act.Name(), x.At(i, j), v)
					}
				}
			}
		})
	}
}

func TestActivationDoesNotMutateInput(t *testing.T) {
	for _, act := range []Activation{Sigmoid{}, Tanh{}, ReLU{}} {
		x := activationInput()
		_ = act.Forward(x)
		_ = act.Backward(x)
		assert.True(t, mat.Equal(activationInput(), x), act.Name())
	}
}

func TestActivationByName(t *testing.T) {
	for name, want := range map[string]Activation{
		"sigmoid": Sigmoid{},
		"Tanh":    Tanh{},
		" RELU ":  ReLU{},
	} {
		got, err := ActivationByName(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ActivationByName("softsign")
	require.Error(t, err)
	assert.Equal(t, ErrUnknownActivation, errors.Cause(err))
	assert.Contains(t, err.Error(), "softsign")
}

package nn

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrUnknownActivation is returned by ActivationByName for unsupported names.
var ErrUnknownActivation = errors.New("unknown activation")

// Activation is an element-wise nonlinearity used by Dense layers.
//
// Backward receives the output of Forward, not the pre-activation input, and
// returns the derivative expressed in terms of that output. Sigmoid, Tanh and
// ReLU all have such a form. An activation whose derivative cannot be written
// using only its own output needs Dense to cache the pre-activation as well.
//
// Implementations are stateless and never modify their argument.
type Activation interface {
	// Forward applies the nonlinearity to every element of x.
	Forward(x mat.Matrix) *mat.Dense

	// Backward returns the element-wise derivative evaluated at y = Forward(x).
	Backward(y mat.Matrix) *mat.Dense

	// Name returns the lowercase activation name (e.g. "tanh").
	Name() string
}

// Sigmoid is the logistic activation.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// Sigmoid squashes values to the range (0, 1), making it useful for
// binary outputs such as the XOR target.
type Sigmoid struct{}

// Forward applies σ(x) = 1 / (1 + exp(-x)).
func (Sigmoid) Forward(x mat.Matrix) *mat.Dense {
	return apply(x, func(v float64) float64 {
		return 1.0 / (1.0 + math.Exp(-v))
	})
}

// Backward returns σ'(y) = y * (1 - y).
func (Sigmoid) Backward(y mat.Matrix) *mat.Dense {
	return apply(y, func(v float64) float64 {
		return v * (1.0 - v)
	})
}

// Name returns "sigmoid".
func (Sigmoid) Name() string { return "sigmoid" }

// Tanh is the hyperbolic tangent activation.
//
// Tanh squashes values to the range (-1, 1). Being zero-centered it is the
// usual choice for hidden layers of small networks.
type Tanh struct{}

// Forward applies tanh(x).
func (Tanh) Forward(x mat.Matrix) *mat.Dense {
	return apply(x, math.Tanh)
}

// Backward returns 1 - y².
func (Tanh) Backward(y mat.Matrix) *mat.Dense {
	return apply(y, func(v float64) float64 {
		return 1.0 - v*v
	})
}

// Name returns "tanh".
func (Tanh) Name() string { return "tanh" }

// ReLU is the rectified linear unit: f(x) = max(0, x).
type ReLU struct{}

// Forward applies max(0, x).
func (ReLU) Forward(x mat.Matrix) *mat.Dense {
	return apply(x, func(v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	})
}

// Backward returns 1 where y > 0 and 0 elsewhere.
//
// Since ReLU preserves sign, testing the output is equivalent to testing the
// input.
func (ReLU) Backward(y mat.Matrix) *mat.Dense {
	return apply(y, func(v float64) float64 {
		if v > 0 {
			return 1
		}
		return 0
	})
}

// Name returns "relu".
func (ReLU) Name() string { return "relu" }

// ActivationByName resolves an activation from its name.
// Matching is case-insensitive; accepted names are sigmoid, tanh and relu.
func ActivationByName(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sigmoid":
		return Sigmoid{}, nil
	case "tanh":
		return Tanh{}, nil
	case "relu":
		return ReLU{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownActivation, "%q", name)
	}
}

// apply returns a new matrix holding fn applied to every element of m.
func apply(m mat.Matrix, fn func(float64) float64) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return fn(v) }, m)
	return &out
}

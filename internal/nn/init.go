package nn

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrUnknownInitializer is returned by InitializerByName for unsupported names.
var ErrUnknownInitializer = errors.New("unknown initializer")

// Initializer fills a fresh weight matrix of shape [fanIn, fanOut].
//
// The generator is always passed in explicitly so that a fixed seed gives a
// reproducible network.
type Initializer func(fanIn, fanOut int, rng *rand.Rand) *mat.Dense

// Uniform returns an initializer drawing every weight from U(low, high).
func Uniform(low, high float64) Initializer {
	return func(fanIn, fanOut int, rng *rand.Rand) *mat.Dense {
		data := make([]float64, fanIn*fanOut)
		for i := range data {
			data[i] = low + rng.Float64()*(high-low)
		}
		return mat.NewDense(fanIn, fanOut, data)
	}
}

// Xavier (Glorot) initialization for weights.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// This initialization helps maintain variance of activations across layers,
// which suits sigmoid and tanh networks.
func Xavier() Initializer {
	return func(fanIn, fanOut int, rng *rand.Rand) *mat.Dense {
		bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
		return Uniform(-bound, bound)(fanIn, fanOut, rng)
	}
}

// InitializerByName resolves "uniform" (U(-1, 1)) or "xavier".
func InitializerByName(name string) (Initializer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uniform", "":
		return Uniform(-1, 1), nil
	case "xavier", "glorot":
		return Xavier(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownInitializer, "%q", name)
	}
}

// Zeros creates a [rows, cols] matrix filled with zeros.
//
// This is used for bias initialization.
func Zeros(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}

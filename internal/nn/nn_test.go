package nn_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/densenet/internal/nn"
)

// TestParameter tests Parameter creation and methods.
func TestParameter(t *testing.T) {
	data := mat.NewDense(1, 3, []float64{1, 2, 3})
	param := nn.NewParameter("test_param", data)

	if param.Name() != "test_param" {
		t.Errorf("Name() = %s, want test_param", param.Name())
	}

	if param.Value() != data {
		t.Error("Value() should return the original matrix")
	}

	if r, c := param.Shape(); r != 1 || c != 3 {
		t.Errorf("Shape() = (%d, %d), want (1, 3)", r, c)
	}

	if param.Grad() != nil {
		t.Error("Grad() should initially be nil")
	}

	grad := mat.NewDense(1, 3, []float64{0.1, 0.2, 0.3})
	param.SetGrad(grad)
	if param.Grad() != grad {
		t.Error("SetGrad() should set the gradient")
	}

	param.ZeroGrad()
	if param.Grad() != nil {
		t.Error("ZeroGrad() should clear the gradient")
	}
}

// TestUniform tests that Uniform respects its bounds and shape.
func TestUniform(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	w := nn.Uniform(-0.5, 0.25)(8, 16, rng)

	if r, c := w.Dims(); r != 8 || c != 16 {
		t.Fatalf("Dims() = (%d, %d), want (8, 16)", r, c)
	}
	for _, v := range w.RawMatrix().Data {
		if v < -0.5 || v >= 0.25 {
			t.Errorf("value %f outside [-0.5, 0.25)", v)
		}
	}
}

// TestXavier tests the Glorot bound for a wide layer.
func TestXavier(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	w := nn.Xavier()(100, 50, rng)

	bound := math.Sqrt(6.0 / 150.0)
	maxAbs := 0.0
	for _, v := range w.RawMatrix().Data {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	if maxAbs > bound {
		t.Errorf("max |w| = %f exceeds bound %f", maxAbs, bound)
	}
	if maxAbs < bound/2 {
		t.Errorf("max |w| = %f suspiciously small for bound %f", maxAbs, bound)
	}
}

func TestInitializerByName(t *testing.T) {
	for _, name := range []string{"uniform", "", "Xavier", "glorot"} {
		if _, err := nn.InitializerByName(name); err != nil {
			t.Errorf("InitializerByName(%q) error: %v", name, err)
		}
	}

	_, err := nn.InitializerByName("he")
	if errors.Cause(err) != nn.ErrUnknownInitializer {
		t.Errorf("InitializerByName(he) error = %v, want ErrUnknownInitializer", err)
	}
}

func TestZeros(t *testing.T) {
	z := nn.Zeros(2, 5)
	if r, c := z.Dims(); r != 2 || c != 5 {
		t.Fatalf("Dims() = (%d, %d), want (2, 5)", r, c)
	}
	if mat.Sum(z) != 0 {
		t.Error("Zeros() should be all zeros")
	}
}

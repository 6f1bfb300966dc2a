package optim

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/densenet/internal/nn"
	"github.com/born-ml/densenet/internal/parallel"
)

// SGD implements Stochastic Gradient Descent without momentum.
//
// Update rule:
//
//	param = param - lr * gradient
//
// Each parameter is updated independently, so the updates may be spread over
// goroutines with SGDConfig.Parallel. By default they run sequentially.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR: 0.1,
//	})
//
//	for epoch := range epochs {
//	    model.Backward(lossGrad)
//	    optimizer.Step()
//	}
type SGD struct {
	params []*nn.Parameter
	lr     float64
	par    parallel.Config
}

var _ Optimizer = (*SGD)(nil)

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64         // Learning rate (default: 0.01)
	Parallel parallel.Config // Per-parameter fan-out (default: sequential)
}

// NewSGD creates a new SGD optimizer over params.
//
// Panics if config.LR is negative.
//
// Example:
//
//	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR < 0 {
		panic(fmt.Sprintf("NewSGD: learning rate must not be negative, got %g", config.LR))
	}
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params: params,
		lr:     config.LR,
		par:    config.Parallel,
	}
}

// Step performs a single optimization step.
//
// Applies param -= lr * grad to every parameter that has a gradient.
// Parameters with no gradient (no backward pass yet) are skipped, so calling
// Step before Backward is a no-op.
//
// Panics if a gradient's shape differs from its parameter.
func (s *SGD) Step() {
	if err := s.step(s.params); err != nil {
		panic(err.Error())
	}
}

// Update applies one SGD step to the current parameters of model.
//
// This is Step for a model that was not bound at construction.
func (s *SGD) Update(model ParameterSet) {
	if err := s.step(model.Parameters()); err != nil {
		panic(err.Error())
	}
}

func (s *SGD) step(params []*nn.Parameter) error {
	return parallel.ForErr(len(params), func(i int) error {
		return s.updateParameter(params[i])
	}, s.par)
}

// updateParameter performs param -= lr * grad in place.
func (s *SGD) updateParameter(param *nn.Parameter) error {
	grad := param.Grad()
	if grad == nil {
		// Parameter has not been through a backward pass, skip
		return nil
	}

	value := param.Value()
	vr, vc := value.Dims()
	gr, gc := grad.Dims()
	if vr != gr || vc != gc {
		return errors.Errorf("SGD.Step: gradient [%d, %d] does not match parameter %q [%d, %d]",
			gr, gc, param.Name(), vr, vc)
	}

	var scaled mat.Dense
	scaled.Scale(s.lr, grad)
	value.Sub(value, &scaled)

	return nil
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Loss measures how far predictions are from targets.
//
// Forward reduces the pair to a scalar for reporting. Backward returns the
// gradient of that scalar with respect to yPred, shaped like yPred.
type Loss interface {
	Forward(yTrue, yPred mat.Matrix) float64
	Backward(yTrue, yPred mat.Matrix) *mat.Dense
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((yPred - yTrue)²) over every element of the matrices.
//
// Example:
//
//	mse := nn.MSELoss{}
//	predictions := model.Forward(inputs)
//	loss := mse.Forward(targets, predictions)
//	grad := mse.Backward(targets, predictions)
type MSELoss struct{}

// Forward computes mean((yPred - yTrue)²).
//
// Panics if the shapes differ.
func (MSELoss) Forward(yTrue, yPred mat.Matrix) float64 {
	diff := residual("MSELoss.Forward", yTrue, yPred)
	data := diff.RawMatrix().Data
	return floats.Dot(data, data) / float64(len(data))
}

// Backward computes 2 * (yPred - yTrue) / N, where N is the total number of
// elements (rows * cols). This is exactly the derivative of Forward.
//
// Panics if the shapes differ.
func (MSELoss) Backward(yTrue, yPred mat.Matrix) *mat.Dense {
	diff := residual("MSELoss.Backward", yTrue, yPred)
	data := diff.RawMatrix().Data
	floats.Scale(2.0/float64(len(data)), data)
	return diff
}

// residual returns a freshly allocated yPred - yTrue.
func residual(op string, yTrue, yPred mat.Matrix) *mat.Dense {
	tr, tc := yTrue.Dims()
	pr, pc := yPred.Dims()
	if tr != pr || tc != pc {
		panic(fmt.Sprintf("%s: predictions [%d, %d] and targets [%d, %d] must have the same shape",
			op, pr, pc, tr, tc))
	}
	diff := mat.NewDense(pr, pc, nil)
	diff.Sub(yPred, yTrue)
	return diff
}

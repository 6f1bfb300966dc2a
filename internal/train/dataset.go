package train

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrDatasetShape is the cause of every Dataset.Validate failure.
var ErrDatasetShape = errors.New("dataset shape mismatch")

// Dataset is a full batch of inputs and the matching targets.
// Row i of Targets is the expected output for row i of Inputs.
type Dataset struct {
	Inputs  *mat.Dense // [samples, features]
	Targets *mat.Dense // [samples, outputs]
}

// XOR returns the four-row truth table of logical XOR.
func XOR() Dataset {
	return Dataset{
		Inputs: mat.NewDense(4, 2, []float64{
			0, 0,
			0, 1,
			1, 0,
			1, 1,
		}),
		Targets: mat.NewDense(4, 1, []float64{
			0,
			1,
			1,
			0,
		}),
	}
}

// Validate checks that both matrices are present and have the same number
// of rows.
func (d Dataset) Validate() error {
	if d.Inputs == nil || d.Targets == nil || d.Inputs.IsEmpty() || d.Targets.IsEmpty() {
		return errors.Wrap(ErrDatasetShape, "inputs and targets must be non-empty")
	}
	ir, _ := d.Inputs.Dims()
	tr, _ := d.Targets.Dims()
	if ir != tr {
		return errors.Wrapf(ErrDatasetShape, "%d input rows but %d target rows", ir, tr)
	}
	return nil
}

// Features returns the number of input columns.
func (d Dataset) Features() int {
	_, c := d.Inputs.Dims()
	return c
}

// Outputs returns the number of target columns.
func (d Dataset) Outputs() int {
	_, c := d.Targets.Dims()
	return c
}

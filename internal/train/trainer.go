package train

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/densenet/internal/nn"
	"github.com/born-ml/densenet/internal/optim"
)

// Model is the network interface the trainer needs. *nn.Sequential
// implements it.
type Model interface {
	Forward(input mat.Matrix) *mat.Dense
	Backward(outputGrad mat.Matrix)
	Parameters() []*nn.Parameter
}

var _ Model = (*nn.Sequential)(nil)

// Point is one reported (epoch, loss) pair.
type Point struct {
	Epoch int
	Loss  float64
}

// Result summarizes a training run.
type Result struct {
	FinalLoss float64 // Loss of the last epoch, measured before its update.
	History   []Point // Every reported point, in epoch order.
}

// Trainer runs full-batch gradient descent on a model.
//
// Every epoch performs forward, loss, loss gradient, backward and optimizer
// step, in that order, over the whole dataset. There is no early stopping
// and no shuffling.
type Trainer struct {
	model       Model
	optimizer   optim.Optimizer
	loss        nn.Loss
	epochs      int
	reportEvery int
	reporter    Reporter
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithEpochs sets the last epoch index. The default is 10000.
func WithEpochs(n int) Option {
	return func(t *Trainer) { t.epochs = n }
}

// WithReportEvery reports the loss every n epochs; 0 reports only the final
// epoch. The default is 1000.
func WithReportEvery(n int) Option {
	return func(t *Trainer) { t.reportEvery = n }
}

// WithReporter sets the sink for loss reports. The default is Discard.
func WithReporter(r Reporter) Option {
	return func(t *Trainer) { t.reporter = r }
}

// NewTrainer creates a trainer for model. The optimizer must already hold
// model's parameters.
func NewTrainer(model Model, optimizer optim.Optimizer, loss nn.Loss, opts ...Option) *Trainer {
	t := &Trainer{
		model:       model,
		optimizer:   optimizer,
		loss:        loss,
		epochs:      10000,
		reportEvery: 1000,
		reporter:    Discard,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Fit trains on data for epochs 0 through the configured epoch count.
//
// The returned error only reports an invalid dataset. Shape mismatches
// between the dataset and the model panic from the layers.
func (t *Trainer) Fit(data Dataset) (Result, error) {
	if err := data.Validate(); err != nil {
		return Result{}, err
	}

	var res Result
	for epoch := 0; epoch <= t.epochs; epoch++ {
		loss := t.Step(data)

		if t.shouldReport(epoch) {
			t.reporter.Report(epoch, loss)
			res.History = append(res.History, Point{Epoch: epoch, Loss: loss})
		}
		res.FinalLoss = loss
	}

	return res, nil
}

// Step runs one forward/backward/update cycle and returns the loss measured
// before the update.
func (t *Trainer) Step(data Dataset) float64 {
	pred := t.model.Forward(data.Inputs)
	loss := t.loss.Forward(data.Targets, pred)

	t.model.Backward(t.loss.Backward(data.Targets, pred))
	t.optimizer.Step()

	return loss
}

// Evaluate returns the loss of the current model on data without training.
func (t *Trainer) Evaluate(data Dataset) float64 {
	return t.loss.Forward(data.Targets, t.model.Forward(data.Inputs))
}

// Predict runs the model forward on inputs.
func (t *Trainer) Predict(inputs mat.Matrix) *mat.Dense {
	return t.model.Forward(inputs)
}

func (t *Trainer) shouldReport(epoch int) bool {
	if epoch == t.epochs {
		return true
	}
	return t.reportEvery > 0 && epoch%t.reportEvery == 0
}

// Run builds the model described by cfg, trains it on data with SGD and MSE
// loss, and returns the trained model.
func Run(cfg Config, data Dataset, reporter Reporter) (*nn.Sequential, Result, error) {
	if err := data.Validate(); err != nil {
		return nil, Result{}, err
	}

	model, err := BuildModel(cfg, data.Features(), data.Outputs())
	if err != nil {
		return nil, Result{}, err
	}

	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
		LR:       cfg.LearningRate,
		Parallel: cfg.Parallel,
	})

	if reporter == nil {
		reporter = Discard
	}
	trainer := NewTrainer(model, optimizer, nn.MSELoss{},
		WithEpochs(cfg.Epochs),
		WithReportEvery(cfg.ReportEvery),
		WithReporter(reporter),
	)

	res, err := trainer.Fit(data)
	if err != nil {
		return nil, Result{}, err
	}

	return model, res, nil
}

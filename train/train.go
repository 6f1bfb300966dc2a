// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs full-batch training of densenet models.
//
// # Basic Usage
//
//	model, result, err := train.Run(train.DefaultConfig(), train.XOR(), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.FinalLoss)
//	fmt.Println(model.Predict(train.XOR().Inputs))
package train

import (
	"log"

	"github.com/born-ml/densenet/internal/nn"
	"github.com/born-ml/densenet/internal/optim"
	"github.com/born-ml/densenet/internal/train"
)

// Config holds the hyperparameters of a training run.
type Config = train.Config

// Dataset is a full batch of inputs and targets.
type Dataset = train.Dataset

// Result summarizes a training run.
type Result = train.Result

// Point is one reported (epoch, loss) pair.
type Point = train.Point

// Trainer runs full-batch gradient descent on a model.
type Trainer = train.Trainer

// Model is the network interface the trainer needs.
type Model = train.Model

// Option configures a Trainer.
type Option = train.Option

// Reporter receives the loss of selected epochs during training.
type Reporter = train.Reporter

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc = train.ReporterFunc

// Errors returned by Config.Validate and Dataset.Validate.
var (
	ErrInvalidConfig = train.ErrInvalidConfig
	ErrDatasetShape  = train.ErrDatasetShape
)

// Discard is a Reporter that ignores every report.
var Discard = train.Discard

// DefaultConfig returns the settings for the XOR problem.
func DefaultConfig() Config {
	return train.DefaultConfig()
}

// XOR returns the four-row truth table of logical XOR.
func XOR() Dataset {
	return train.XOR()
}

// BuildModel creates the in -> Hidden -> out network described by cfg.
func BuildModel(cfg Config, in, out int) (*nn.Sequential, error) {
	return train.BuildModel(cfg, in, out)
}

// NewTrainer creates a trainer for model.
func NewTrainer(model Model, optimizer optim.Optimizer, loss nn.Loss, opts ...Option) *Trainer {
	return train.NewTrainer(model, optimizer, loss, opts...)
}

// WithEpochs sets the last epoch index.
func WithEpochs(n int) Option {
	return train.WithEpochs(n)
}

// WithReportEvery reports the loss every n epochs.
func WithReportEvery(n int) Option {
	return train.WithReportEvery(n)
}

// WithReporter sets the sink for loss reports.
func WithReporter(r Reporter) Option {
	return train.WithReporter(r)
}

// NewLogReporter returns a reporter that prints "epoch N/epochs, loss: L".
func NewLogReporter(logger *log.Logger, epochs int) Reporter {
	return train.NewLogReporter(logger, epochs)
}

// Run builds the model described by cfg and trains it on data.
func Run(cfg Config, data Dataset, reporter Reporter) (*nn.Sequential, Result, error) {
	return train.Run(cfg, data, reporter)
}

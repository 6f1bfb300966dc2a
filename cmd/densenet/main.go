// Package main provides the densenet CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/born-ml/densenet/internal/parallel"
	"github.com/born-ml/densenet/internal/train"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("densenet %s\n", version)
	case "train":
		if err := runTrain(os.Args[2:]); err != nil {
			log.Fatalf("Training failed: %v", err)
		}
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("densenet - feed-forward networks trained with plain SGD")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  train      Train a two-layer network on XOR")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("Run 'densenet train -h' for training flags.")
}

func runTrain(args []string) error {
	defaults := train.DefaultConfig()

	fs := flag.NewFlagSet("train", flag.ExitOnError)
	epochs := fs.Int("epochs", defaults.Epochs, "Number of training epochs")
	lr := fs.Float64("lr", defaults.LearningRate, "Learning rate for SGD")
	hidden := fs.Int("hidden", defaults.Hidden, "Width of the hidden layer")
	hiddenAct := fs.String("hidden-act", defaults.HiddenActivation, "Hidden activation (sigmoid, tanh, relu)")
	outAct := fs.String("out-act", defaults.OutputActivation, "Output activation (sigmoid, tanh, relu)")
	initName := fs.String("init", defaults.Initializer, "Weight initializer (uniform, xavier)")
	seed := fs.Uint64("seed", defaults.Seed, "Seed for weight initialization")
	reportEvery := fs.Int("report-every", defaults.ReportEvery, "Print loss every N epochs (0 = final only)")
	useParallel := fs.Bool("parallel", false, "Update parameters concurrently")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := train.Config{
		Epochs:           *epochs,
		LearningRate:     *lr,
		Hidden:           *hidden,
		HiddenActivation: *hiddenAct,
		OutputActivation: *outAct,
		Initializer:      *initName,
		Seed:             *seed,
		ReportEvery:      *reportEvery,
		Parallel:         parallel.Sequential(),
	}
	if *useParallel {
		cfg.Parallel = parallel.DefaultConfig()
	}

	fmt.Println("=== densenet XOR ===")
	fmt.Printf("Network: 2 -> %d (%s) -> 1 (%s)\n", cfg.Hidden, cfg.HiddenActivation, cfg.OutputActivation)
	fmt.Printf("Epochs: %d, LR: %g, Seed: %d, Workers: %d\n\n",
		cfg.Epochs, cfg.LearningRate, cfg.Seed, workers(cfg.Parallel))

	data := train.XOR()
	reporter := train.NewLogReporter(log.New(os.Stdout, "", 0), cfg.Epochs)

	model, res, err := train.Run(cfg, data, reporter)
	if err != nil {
		return err
	}

	fmt.Printf("\nFinal loss: %.6f\n", res.FinalLoss)
	fmt.Println("Predictions:")
	pred := model.Predict(data.Inputs)
	rows, _ := data.Inputs.Dims()
	for i := range rows {
		fmt.Printf("input: %v, prediction: %.4f\n", data.Inputs.RawRowView(i), pred.At(i, 0))
	}

	return nil
}

func workers(cfg parallel.Config) int {
	if !cfg.Enabled {
		return 1
	}
	if cfg.NumWorkers > 0 {
		return cfg.NumWorkers
	}
	return runtime.NumCPU()
}

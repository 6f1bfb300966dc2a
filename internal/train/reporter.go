package train

import (
	"log"
)

// Reporter receives the loss of selected epochs during training.
type Reporter interface {
	Report(epoch int, loss float64)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(epoch int, loss float64)

// Report calls f(epoch, loss).
func (f ReporterFunc) Report(epoch int, loss float64) {
	f(epoch, loss)
}

// Discard is a Reporter that ignores every report.
var Discard Reporter = ReporterFunc(func(int, float64) {})

// LogReporter writes one line per report to a *log.Logger.
type LogReporter struct {
	logger *log.Logger
	epochs int
}

// NewLogReporter returns a reporter that prints "epoch N/epochs, loss: L".
// A nil logger uses the standard logger.
func NewLogReporter(logger *log.Logger, epochs int) *LogReporter {
	if logger == nil {
		logger = log.Default()
	}
	return &LogReporter{logger: logger, epochs: epochs}
}

// Report logs the epoch and loss.
func (r *LogReporter) Report(epoch int, loss float64) {
	r.logger.Printf("epoch %d/%d, loss: %.6f", epoch, r.epochs, loss)
}

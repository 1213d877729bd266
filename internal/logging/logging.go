// Package logging sets up the diagnostics logger. The terminal owns
// stdout, so everything goes to a file under the cache directory.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup opens the log file and returns a logger writing to it. Parse
// and measurement failures are logged here; they never interrupt
// rendering.
func Setup(path string) (*logrus.Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(f)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger, nil
}

// Discard returns a logger that drops everything, for tests and for
// callers that run before Setup succeeds.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

package app

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

func init() {
	logger = logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.WarnLevel)
	logger.SetOutput(os.Stderr)
}

// Logger returns the process-wide logger. Diagnostics go to stderr so they
// never mix with command output.
func Logger() *logrus.Logger {
	return logger
}

func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
}

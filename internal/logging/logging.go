// Package logging configures the logrus logger of the command line tool.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// EnvLogLevel is read when no level is given
const EnvLogLevel = "LOG_LEVEL"

// Setup creates a logger writing to w. An empty level falls back to the
// LOG_LEVEL environment variable and then to info; an unknown level is info.
func Setup(level string, w io.Writer) *logrus.Logger {
	logger := logrus.New()

	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	if level == "" {
		level = "info"
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}

	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(w)
	return logger
}

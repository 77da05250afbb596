package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a logrus logger from the logging section. Unknown levels
// fall back to info; any format other than "json" renders as text.
func NewLogger(lc LoggingConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if lc.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

package logger

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// New returns a logrus logger for CLI diagnostics. Diagnostics go to w (normally stderr)
// so stdout carries only the report.
func New(level logrus.Level, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	return log
}

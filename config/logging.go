// Public domain.

package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// ParseLevel converts a settings level name to a logrus level.
//
// Names are case insensitive.  CRITICAL, which logrus lacks, maps to the
// fatal level so that only fatal messages pass.
func ParseLevel(s string) (logrus.Level, error) {
	switch l := strings.ToUpper(strings.TrimSpace(s)); l {
	case "CRITICAL":
		return logrus.FatalLevel, nil
	case "DEBUG", "INFO", "WARNING", "WARN", "ERROR":
		return logrus.ParseLevel(strings.ToLower(l))
	}
	return 0, fmt.Errorf("%w %q", ErrLevel, s)
}

// NewLogger returns a logger writing to stderr configured by l.
func NewLogger(l Logging) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if err := Apply(log, l); err != nil {
		return nil, err
	}
	return log, nil
}

// Apply configures an existing logger.  A logger with logging off
// discards output, otherwise output goes to stderr.
func Apply(log *logrus.Logger, l Logging) error {
	if err := SetLevel(log, l.Level); err != nil {
		return err
	}
	if l.On {
		Activate(log)
	} else {
		Silence(log)
	}
	return nil
}

// SetLevel sets the level of log from a settings level name.
func SetLevel(log *logrus.Logger, level string) error {
	lv, err := ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lv)
	return nil
}

// Silence discards all output of log.
func Silence(log *logrus.Logger) {
	log.SetOutput(io.Discard)
}

// Activate sends output of log to stderr.
func Activate(log *logrus.Logger) {
	log.SetOutput(os.Stderr)
}

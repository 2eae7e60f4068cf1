// Package log configures logrus from viper and proxies the levels the CLI uses.
package log

import (
	"io"

	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/moltenlabs/brand/internal/config"
)

// Setup points logrus at w and applies the configured level and formatter.
// An unknown level falls back to warn.
func Setup(w io.Writer) {
	logrus.SetOutput(w)

	if viper.GetBool(config.KeyLogJSON) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(config.KeyLogLevel))
	if err != nil {
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)
}

// WithField returns an entry carrying one structured field.
func WithField(key string, value any) *logrus.Entry {
	return logrus.WithField(key, value)
}

// Debugf logs at debug level.
func Debugf(format string, args ...any) {
	logrus.Debugf(format, args...)
}

// Infof logs at info level.
func Infof(format string, args ...any) {
	logrus.Infof(format, args...)
}

// Warnf logs at warn level.
func Warnf(format string, args ...any) {
	logrus.Warnf(format, args...)
}

// Errorf logs at error level.
func Errorf(format string, args ...any) {
	logrus.Errorf(format, args...)
}

// Package logger wraps zap construction so main and tests build loggers the
// same way.
package logger

import (
	"go.uber.org/zap"
)

// Logger carries the application zap logger.
type Logger struct {
	Log *zap.Logger
}

// New returns a no-op logger; call Init to make it real.
func New() *Logger {
	return &Logger{
		Log: zap.NewNop(),
	}
}

// Init builds a production zap logger at the given level ("debug", "info",
// "warn", "error").
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = zl
	return nil
}

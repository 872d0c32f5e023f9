package logging

import (
	"io"

	"github.com/pion/logging"
)

type (
	// LoggerFactory builds scoped loggers.
	LoggerFactory = logging.LoggerFactory
	// LeveledLogger is the logger handed to every package.
	LeveledLogger = logging.LeveledLogger
	// LogLevel is the verbosity of a factory.
	LogLevel = logging.LogLevel
)

const (
	LogLevelError = logging.LogLevelError
	LogLevelInfo  = logging.LogLevelInfo
	LogLevelDebug = logging.LogLevelDebug
	LogLevelTrace = logging.LogLevelTrace
)

var loggerFactory = logging.NewDefaultLoggerFactory()

func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scope)
}

// NewLoggerFrom builds a logger from factory, falling back to the default
// factory when factory is nil.
func NewLoggerFrom(factory LoggerFactory, scope string) logging.LeveledLogger {
	if factory == nil {
		return NewLogger(scope)
	}
	return factory.NewLogger(scope)
}

// NewLoggerFactory returns a factory that writes every scope at level to w.
// A nil w keeps the pion default of stderr.
func NewLoggerFactory(w io.Writer, level LogLevel) LoggerFactory {
	f := logging.NewDefaultLoggerFactory()
	f.DefaultLogLevel = level
	if w != nil {
		f.Writer = w
	}
	return f
}

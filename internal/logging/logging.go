package logging

import (
	"io"
	"sync"

	"github.com/pion/logging"
)

var (
	loggerFactory = logging.NewDefaultLoggerFactory()

	mu      sync.Mutex
	loggers []*logging.DefaultLeveledLogger
)

// NewLogger returns a logger from the shared factory. Levels follow the
// PION_LOG_* environment variables until Configure is called.
func NewLogger(scope string) logging.LeveledLogger {
	mu.Lock()
	defer mu.Unlock()

	l := loggerFactory.NewLogger(scope)
	if d, ok := l.(*logging.DefaultLeveledLogger); ok {
		loggers = append(loggers, d)
	}
	return l
}

// Factory returns the shared factory.
func Factory() logging.LoggerFactory {
	return loggerFactory
}

// Configure sets level and, when w is not nil, the output of every logger
// handed out by NewLogger, including the ones created at package init.
// Loggers created afterwards inherit both.
func Configure(level logging.LogLevel, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	loggerFactory.DefaultLogLevel = level
	loggerFactory.ScopeLevels = nil
	if w != nil {
		loggerFactory.Writer = w
	}
	for _, l := range loggers {
		l.SetLevel(level)
		if w != nil {
			l.WithOutput(w)
		}
	}
}

// NewFactory builds a factory writing to w with level as the default for
// every scope. Scope overrides from the environment still apply.
func NewFactory(level logging.LogLevel, w io.Writer) *logging.DefaultLoggerFactory {
	f := logging.NewDefaultLoggerFactory()
	f.DefaultLogLevel = level
	if w != nil {
		f.Writer = w
	}
	return f
}

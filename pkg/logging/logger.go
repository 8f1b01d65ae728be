// Package logging wraps zerolog for the genreforge pipeline. It keeps one
// package-level default logger that the CLI reconfigures at startup, plus
// constructors for console and JSON loggers and context helpers for carrying
// a logger through pipeline stages.
//
//	log := logging.Default()
//	log.Info().Str("strategy", "regional_fusion").Msg("Generating candidates")
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is the package-wide logger. Replaced via SetDefault.
var defaultLogger = newDefault()

// newDefault builds the logger used before any explicit configuration:
// console output on a terminal, JSON otherwise, level from LOG_LEVEL.
func newDefault() zerolog.Logger {
	level := envLevel()
	zerolog.SetGlobalLevel(level)

	var w io.Writer = os.Stderr
	if stderrIsTerminal() && os.Getenv("LOG_FORMAT") != "json" {
		w = consoleWriter(os.Stderr, os.Getenv("NO_COLOR") != "", time.Kitchen)
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// Default returns the package default logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the package default logger. zerolog's own global
// logger follows along so libraries using it stay in sync.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// New creates a JSON logger writing to w at the current global level.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.GlobalLevel()).With().Timestamp().Logger()
}

// NewConsole creates a human-readable logger on stderr.
func NewConsole() zerolog.Logger {
	return New(consoleWriter(os.Stderr, os.Getenv("NO_COLOR") != "", time.Kitchen))
}

// NewJSON creates a JSON logger writing to w, or stderr when w is nil.
func NewJSON(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return New(w)
}

// With opens a child context on the default logger.
func With() zerolog.Context {
	return defaultLogger.With()
}

// Level returns a copy of the default logger at the given level.
func Level(level zerolog.Level) zerolog.Logger {
	return defaultLogger.Level(level)
}

// Debug starts a debug event on the default logger.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts an info event on the default logger.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a warning event on the default logger.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error starts an error event on the default logger.
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// WithLevel starts an event at a dynamically chosen level.
func WithLevel(level zerolog.Level) *zerolog.Event {
	return defaultLogger.WithLevel(level)
}

// Err starts an error event carrying err.
func Err(err error) *zerolog.Event {
	return defaultLogger.Err(err)
}

func consoleWriter(out *os.File, noColor bool, timeFormat string) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeFormat,
		NoColor:    noColor,
	}
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// envLevel reads LOG_LEVEL, with DEBUG as a verbose shortcut.
func envLevel() zerolog.Level {
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if level, err := zerolog.ParseLevel(s); err == nil {
			return level
		}
		return zerolog.InfoLevel
	}
	if os.Getenv("DEBUG") != "" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

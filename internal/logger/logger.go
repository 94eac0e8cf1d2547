// Package logger provides leveled, structured logging for the decoration
// library and its CLI, backed by zerolog.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog to provide a simplified printf-style API.
type Logger struct {
	base zerolog.Logger
}

var defaultLogger = newConsole(os.Stderr, zerolog.WarnLevel)

func newConsole(w io.Writer, level zerolog.Level) *Logger {
	console := zerolog.NewConsoleWriter()
	console.Out = w
	console.TimeFormat = time.RFC3339
	base := zerolog.New(console).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}
}

// New creates a logger writing to w at the given level name. An empty or
// unknown level falls back to info.
func New(w io.Writer, level string) *Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	return newConsole(w, parsed)
}

// SetLevel adjusts the default logger's minimum level.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return
	}
	defaultLogger.base = defaultLogger.base.Level(parsed)
}

// SetOutput redirects the default logger.
func SetOutput(w io.Writer) {
	defaultLogger = newConsole(w, defaultLogger.base.GetLevel())
}

// With returns a derived logger that always writes the supplied field.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{base: l.base.With().Str(key, value).Logger()}
}

// Debugf writes a debug-level entry.
func (l *Logger) Debugf(format string, args ...any) {
	l.base.Debug().Msgf(format, args...)
}

// Infof writes an info-level entry.
func (l *Logger) Infof(format string, args ...any) {
	l.base.Info().Msgf(format, args...)
}

// Warnf writes a warning-level entry.
func (l *Logger) Warnf(format string, args ...any) {
	l.base.Warn().Msgf(format, args...)
}

// Errorf writes an error-level entry.
func (l *Logger) Errorf(format string, args ...any) {
	l.base.Error().Msgf(format, args...)
}

// Package-level functions using the default logger.

func Debugf(format string, args ...any) { defaultLogger.Debugf(format, args...) }
func Infof(format string, args ...any)  { defaultLogger.Infof(format, args...) }
func Warnf(format string, args ...any)  { defaultLogger.Warnf(format, args...) }
func Errorf(format string, args ...any) { defaultLogger.Errorf(format, args...) }

// With returns a derived default logger carrying the supplied field.
func With(key, value string) *Logger { return defaultLogger.With(key, value) }

// Package logger provides structured logging and metrics tracking for the holiday API.
//
// Log lines are written by zerolog as JSON (or a human-friendly console format)
// and always carry a timestamp, a level and a message. Callers attach arbitrary
// structured fields through the Fields map.
//
// Metrics tracking includes counters (incrementing values), gauges (point-in-time values),
// and timings (duration measurements) with statistical aggregation on snapshot.
//
// Example usage:
//
//	logger.Info("Holidays extracted", logger.Fields{
//	    "url":   "https://www.gob.pe/feriados",
//	    "count": 16,
//	})
//
//	logger.Error("Upstream fetch failed", logger.Fields{
//	    "url": url,
//	}, err)
//
//	logger.IncrCounter("scraper.failures")
//	logger.RecordTiming("scraper.fetch", duration)
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Format selects how log lines are rendered.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// Logger provides structured logging on top of zerolog.
type Logger struct {
	zl zerolog.Logger
}

// Fields represents structured log fields
type Fields map[string]interface{}

var defaultLogger = New(LevelInfo, os.Stdout)

// New creates a JSON logger with the specified minimum log level and output destination.
// Messages below the minimum level are discarded.
func New(level Level, output io.Writer) *Logger {
	return newLogger(level, output)
}

// NewWithFormat is like New but lets the caller pick console output for local development.
func NewWithFormat(level Level, format Format, output io.Writer) *Logger {
	if format == FormatConsole {
		output = zerolog.ConsoleWriter{Out: output}
	}
	return newLogger(level, output)
}

func newLogger(level Level, output io.Writer) *Logger {
	zl := zerolog.New(output).
		Level(level.zerolog()).
		With().
		Timestamp().
		Logger()
	return &Logger{zl: zl}
}

// ParseLevel converts a case-insensitive level name ("debug", "info", ...) to a Level.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case LevelDebug:
		return LevelDebug, nil
	case LevelInfo:
		return LevelInfo, nil
	case LevelWarn:
		return LevelWarn, nil
	case LevelError:
		return LevelError, nil
	}
	return "", fmt.Errorf("unknown log level: %q", s)
}

func (lv Level) zerolog() zerolog.Level {
	switch lv {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetDefault sets the default package-level logger used by the convenience functions
// (Debug, Info, Warn, Error).
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// Default returns the package-level logger.
func Default() *Logger {
	return defaultLogger
}

// Zerolog exposes the underlying zerolog logger for integrations such as
// HTTP request logging middleware.
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zl
}

// log writes a structured log entry
func (l *Logger) log(level Level, message string, fields Fields, err error) {
	var e *zerolog.Event
	switch level {
	case LevelDebug:
		e = l.zl.Debug()
	case LevelInfo:
		e = l.zl.Info()
	case LevelWarn:
		e = l.zl.Warn()
	case LevelError:
		e = l.zl.Error()
	}
	// Disabled levels yield a nil event.
	if e == nil {
		return
	}

	if err != nil {
		e = e.Err(err)
	}
	if len(fields) > 0 {
		e = e.Fields(map[string]interface{}(fields))
	}
	e.Msg(message)
}

// Debug logs a debug message with optional structured fields.
func (l *Logger) Debug(message string, fields Fields) {
	l.log(LevelDebug, message, fields, nil)
}

// Info logs an informational message with optional structured fields.
func (l *Logger) Info(message string, fields Fields) {
	l.log(LevelInfo, message, fields, nil)
}

// Warn logs a warning message with optional structured fields.
// Warnings mark degraded results that did not stop the request.
func (l *Logger) Warn(message string, fields Fields) {
	l.log(LevelWarn, message, fields, nil)
}

// Error logs an error message with optional structured fields and an error object.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// Package-level convenience functions using default logger

// Debug logs a debug message with the default logger
func Debug(message string, fields Fields) {
	defaultLogger.Debug(message, fields)
}

// Info logs an info message with the default logger
func Info(message string, fields Fields) {
	defaultLogger.Info(message, fields)
}

// Warn logs a warning message with the default logger
func Warn(message string, fields Fields) {
	defaultLogger.Warn(message, fields)
}

// Error logs an error message with the default logger
func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}

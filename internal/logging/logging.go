// Package logging provides leveled, structured logging to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents a logging level
type Level int

const (
	// LevelDebug is for detailed debugging information
	LevelDebug Level = iota
	// LevelInfo is for general informational messages
	LevelInfo
	// LevelWarn is for warning messages
	LevelWarn
	// LevelError is for error messages
	LevelError
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Fields is a map of structured log fields
type Fields map[string]interface{}

// Logger writes leveled log lines to a single output
type Logger struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
}

// DefaultLogger is a package-level logger for convenience
var DefaultLogger = New(LevelInfo, os.Stderr)

// New creates a new Logger
func New(level Level, output io.Writer) *Logger {
	if output == nil {
		output = os.Stderr
	}
	return &Logger{level: level, output: output}
}

// SetLevel changes the log level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput changes the output writer
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...Fields) {
	l.log(LevelDebug, msg, nil, fields...)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...Fields) {
	l.log(LevelInfo, msg, nil, fields...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...Fields) {
	l.log(LevelWarn, msg, nil, fields...)
}

// Error logs an error message
func (l *Logger) Error(msg string, err error, fields ...Fields) {
	l.log(LevelError, msg, err, fields...)
}

func (l *Logger) log(level Level, msg string, err error, fields ...Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s: %s",
		time.Now().Format("2006-01-02 15:04:05.000"), level, msg))

	if err != nil {
		sb.WriteString(fmt.Sprintf(" error=%q", err.Error()))
	}
	for _, f := range fields {
		for k, v := range f {
			sb.WriteString(fmt.Sprintf(" %s=%v", k, v))
		}
	}

	fmt.Fprintln(l.output, sb.String())
}

// Package-level convenience functions using DefaultLogger

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...Fields) {
	DefaultLogger.Debug(msg, fields...)
}

// Info logs an info message using the default logger
func Info(msg string, fields ...Fields) {
	DefaultLogger.Info(msg, fields...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...Fields) {
	DefaultLogger.Warn(msg, fields...)
}

// Error logs an error message using the default logger
func Error(msg string, err error, fields ...Fields) {
	DefaultLogger.Error(msg, err, fields...)
}

// SetLevel sets the level of the default logger
func SetLevel(level Level) {
	DefaultLogger.SetLevel(level)
}

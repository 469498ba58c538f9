package logging

import (
	"io"
	"log"
	"os"
	"strings"
)

// Level represents different logging verbosity levels
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// ParseLevel maps ERROR/WARN/INFO/DEBUG (any case) to a Level, falling back to def
func ParseLevel(s string, def Level) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError
	case "WARN", "WARNING":
		return LevelWarn
	case "INFO":
		return LevelInfo
	case "DEBUG":
		return LevelDebug
	}
	return def
}

// Logger provides leveled logging on top of the standard log package
type Logger struct {
	level Level
	out   *log.Logger
}

// New creates a logger writing to w with the specified level
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// NewDefault creates a stderr logger based on the HYPOTEST_LOG_LEVEL environment variable
func NewDefault() *Logger {
	return New(os.Stderr, ParseLevel(os.Getenv("HYPOTEST_LOG_LEVEL"), LevelWarn))
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return New(io.Discard, LevelError)
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LevelError, "[ERROR] ", format, args...)
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LevelWarn, "[WARN] ", format, args...)
}

// Info logs info messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, "[INFO] ", format, args...)
}

// Debug logs debug messages
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LevelDebug, "[DEBUG] ", format, args...)
}

func (l *Logger) logf(level Level, prefix, format string, args ...interface{}) {
	if l == nil || l.level < level {
		return
	}
	l.out.Printf(prefix+format, args...)
}

// Package logging wraps charmbracelet/log for the jamo command and server.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	defaultLogger *log.Logger
	defaultOnce   sync.Once
	defaultMu     sync.RWMutex
)

// New returns a stderr logger at level ("debug", "info", "warn" or "error").
func New(level string) *log.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter is New for an arbitrary sink. Debug loggers report the caller.
func NewWriter(w io.Writer, level string) *log.Logger {
	lvl := ParseLevel(level)
	logger := log.NewWithOptions(w, log.Options{
		ReportCaller: lvl == log.DebugLevel,
		Prefix:       "jamo",
	})
	logger.SetLevel(lvl)
	return logger
}

// ParseLevel maps a level name to a log.Level. Unknown names mean info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func Default() *log.Logger {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		if defaultLogger == nil {
			defaultLogger = New("info")
		}
		defaultMu.Unlock()
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package logger.
func SetDefault(logger *log.Logger) {
	defaultOnce.Do(func() {})
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// SetLevel changes the level of the package logger. Like NewWriter, only
// debug reports the caller.
func SetLevel(level string) {
	lvl := ParseLevel(level)
	logger := Default()
	logger.SetLevel(lvl)
	logger.SetReportCaller(lvl == log.DebugLevel)
}

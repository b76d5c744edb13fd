package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/footprint-tools/cmdr/internal/domain"
)

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

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

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger appends leveled lines to a file. It is safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	minLevel Level
	enabled  bool
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
)

// Init opens the global logger. Calling it again replaces the previous one.
func Init(logPath string, minLevel Level) error {
	l, err := New(logPath, minLevel)
	if err != nil {
		return err
	}

	defaultLoggerMu.Lock()
	prev := defaultLogger
	defaultLogger = l
	defaultLoggerMu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

// New creates a logger that appends to the file at logPath.
func New(logPath string, minLevel Level) (*Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	// Fix permissions of an existing file before opening it
	if info, err := os.Stat(logPath); err == nil {
		if info.Mode().Perm() != 0600 {
			if err := os.Chmod(logPath, 0600); err != nil {
				return nil, fmt.Errorf("chmod existing log file: %w", err)
			}
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{
		file:     file,
		minLevel: minLevel,
		enabled:  true,
	}, nil
}

// Close closes the underlying file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.file.Close()
	l.file = nil
	return err
}

// SetEnabled turns logging on or off.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || l.file == nil {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	logLine := fmt.Sprintf("[%s] %s: %s\n", timestamp, level.String(), message)

	if _, err := l.file.Write([]byte(logLine)); err != nil {
		// Can't log to file, output to stderr for critical messages
		if level >= LevelError {
			fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
		}
	}
}

func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Convenience functions for the global logger

func current() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Debug writes a debug message to the global logger.
func Debug(format string, args ...any) {
	current().Debug(format, args...)
}

// Info writes an informational message to the global logger.
func Info(format string, args ...any) {
	current().Info(format, args...)
}

// Warn writes a warning to the global logger.
func Warn(format string, args ...any) {
	current().Warn(format, args...)
}

// Error writes an error to the global logger.
func Error(format string, args ...any) {
	current().Error(format, args...)
}

// Close closes the global logger.
func Close() error {
	return current().Close()
}

// GetLogger returns the global logger, or nil if Init was never called.
func GetLogger() *Logger {
	return current()
}

// Default returns the global logger as a domain.Logger, falling back to
// NopLogger when none is initialized.
func Default() domain.Logger {
	if l := current(); l != nil {
		return l
	}
	return NopLogger{}
}

// NopLogger is a logger that discards all messages.
// Useful for testing or when logging is disabled.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

// Verify Logger implements domain.Logger
var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = NopLogger{}

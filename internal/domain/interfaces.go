package domain

import "time"

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// HistoryEntry is one journaled command status.
type HistoryEntry struct {
	ID        int64
	RunID     string
	Seq       int
	Command   string
	OK        bool
	Message   string
	Timestamp time.Time
}

// HistoryFilter narrows a history listing.
type HistoryFilter struct {
	RunID      string // prefix of the run id
	Command    string
	FailedOnly bool
	Limit      int
}

// RunSummary aggregates the entries of one run.
type RunSummary struct {
	RunID    string
	Started  time.Time
	Commands int
	Failed   int
}

// HistoryStore defines operations for journaling command statuses.
type HistoryStore interface {
	// Insert adds an entry and returns its id.
	Insert(entry HistoryEntry) (int64, error)

	// List returns entries matching the filter, newest first.
	List(filter HistoryFilter) ([]HistoryEntry, error)

	// Runs returns the most recent runs, newest first.
	Runs(limit int) ([]RunSummary, error)

	// Close closes the store connection.
	Close() error
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// OutputWriter defines output operations.
type OutputWriter interface {
	// Write implements io.Writer.
	Write(p []byte) (n int, err error)

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)
}

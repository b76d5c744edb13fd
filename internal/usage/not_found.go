package usage

import "fmt"

// NotFound is returned when a lookup by name fails.
func NotFound(key string) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("key %q not found", key),
	}
}

// NotACommand is the message carried by UnknownCommand errors.
const NotACommand = "not a command"

// UnknownCommand is reported for tokens that do not name a registered command.
func UnknownCommand(command string) *Error {
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: NotACommand,
		Command: command,
	}
}

// OutOfRange is returned when a positional lookup falls outside [0, size).
func OutOfRange(index, size int) *Error {
	return &Error{
		Kind:    ErrOutOfRange,
		Message: fmt.Sprintf("index %d out of range [0, %d)", index, size),
	}
}

// InvalidConfigKey is returned for configuration keys the application does not know.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("unknown config key %q", key),
	}
}

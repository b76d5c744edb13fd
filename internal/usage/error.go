package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrNotFound
	ErrArity
	ErrParse
	ErrOutOfRange
	ErrUnknownCommand
	ErrInvalidFlag
)

// Exit codes:
//
//	Exit 1: Lookup and environment errors
//	  - Unknown errors
//	  - Key not found
//	  - Index out of range
//	  - Unknown command
//
//	Exit 2: User input errors
//	  - Arity mismatch
//	  - Malformed value
//	  - Invalid flag
var exitCodes = map[ErrorKind]int{
	ErrUnknown:        1,
	ErrNotFound:       1,
	ErrArity:          2,
	ErrParse:          2,
	ErrOutOfRange:     1,
	ErrUnknownCommand: 1,
	ErrInvalidFlag:    2,
}

func (k ErrorKind) String() string {
	switch k {
	case ErrNotFound:
		return "not found"
	case ErrArity:
		return "arity"
	case ErrParse:
		return "parse"
	case ErrOutOfRange:
		return "out of range"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrInvalidFlag:
		return "invalid flag"
	default:
		return "unknown"
	}
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
	// Command is the command that was active when the error was raised, if any.
	Command  string
	ExitCode int // overrides the code derived from Kind when non-zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// WithCommand returns a copy of e tagged with the given command name.
func (e *Error) WithCommand(command string) *Error {
	c := *e
	c.Command = command
	return &c
}

// Is reports whether err, or any error it wraps, is a usage error of the given kind.
func Is(err error, kind ErrorKind) bool {
	var ue *Error
	if !errors.As(err, &ue) {
		return false
	}
	return ue.Kind == kind
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)

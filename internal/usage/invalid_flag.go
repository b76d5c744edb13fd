package usage

import "fmt"

// InvalidFlag is returned for a command-line flag the program does not accept.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("unknown flag %q", flag),
	}
}

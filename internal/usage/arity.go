package usage

import "fmt"

// NotEnoughArguments is returned when an option received fewer values than
// it declares, or than its minimum when variadic.
func NotEnoughArguments(option string) *Error {
	return &Error{
		Kind:    ErrArity,
		Message: fmt.Sprintf("not enough arguments %q", option),
	}
}

// UnexpectedValue is returned by the strict tokenizer for a value that no
// option can absorb.
func UnexpectedValue(token string) *Error {
	return &Error{
		Kind:    ErrArity,
		Message: fmt.Sprintf("unexpected value %q", token),
	}
}

// InvalidUInt is returned when a stored value is not a valid unsigned integer.
func InvalidUInt(key, raw string) *Error {
	return &Error{
		Kind:    ErrParse,
		Message: fmt.Sprintf("value %q of %q is not an unsigned integer", raw, key),
	}
}

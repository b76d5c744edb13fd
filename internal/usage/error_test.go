package usage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructors_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind ErrorKind
		msg  string
	}{
		{"not found", NotFound("name"), ErrNotFound, `key "name" not found`},
		{"not enough", NotEnoughArguments("name"), ErrArity, `not enough arguments "name"`},
		{"unexpected", UnexpectedValue("x"), ErrArity, `unexpected value "x"`},
		{"invalid uint", InvalidUInt("n", "abc"), ErrParse, `value "abc" of "n" is not an unsigned integer`},
		{"out of range", OutOfRange(3, 2), ErrOutOfRange, "index 3 out of range [0, 2)"},
		{"unknown command", UnknownCommand("frobnicate"), ErrUnknownCommand, "not a command"},
		{"invalid flag", InvalidFlag("--bogus"), ErrInvalidFlag, `unknown flag "--bogus"`},
		{"invalid config key", InvalidConfigKey("nope"), ErrNotFound, `unknown config key "nope"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.err.Kind)
			require.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestError_GetExitCode(t *testing.T) {
	require.Equal(t, 2, NotEnoughArguments("x").GetExitCode())
	require.Equal(t, 2, InvalidUInt("x", "y").GetExitCode())
	require.Equal(t, 1, NotFound("x").GetExitCode())
	require.Equal(t, 1, (&Error{Kind: ErrorKind(99)}).GetExitCode())
	require.Equal(t, 7, (&Error{Kind: ErrArity, ExitCode: 7}).GetExitCode())
}

func TestIs_MatchesWrappedErrors(t *testing.T) {
	err := fmt.Errorf("parse greet: %w", NotEnoughArguments("name"))

	require.True(t, Is(err, ErrArity))
	require.False(t, Is(err, ErrNotFound))
	require.False(t, Is(fmt.Errorf("plain"), ErrArity))
	require.False(t, Is(nil, ErrArity))
}

func TestWithCommand_DoesNotMutateOriginal(t *testing.T) {
	base := NotEnoughArguments("name")
	tagged := base.WithCommand("greet")

	require.Equal(t, "greet", tagged.Command)
	require.Empty(t, base.Command)
	require.Equal(t, base.Message, tagged.Message)
}

func TestErrorKind_String(t *testing.T) {
	require.Equal(t, "arity", ErrArity.String())
	require.Equal(t, "unknown", ErrorKind(42).String())
}

package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdr/internal/usage"
)

type greeter struct {
	seen []string
}

func (g *greeter) Execute(args CommandArgs) CommandStatus {
	name, err := args.String("name")
	if err != nil {
		return FromError(args.Command(), err)
	}
	g.seen = append(g.seen, name)
	return OK(args.Command())
}

func TestCaller_FunctionHandler(t *testing.T) {
	var got CommandArgs
	caller := NewCaller(greetConfig(), func(args CommandArgs) CommandStatus {
		got = args
		return OK(args.Command())
	})

	require.Equal(t, "greet", caller.Name())

	status, err := caller.Invoke([]string{"name", "Ada"})
	require.NoError(t, err)
	require.Equal(t, OK("greet"), status)
	require.Equal(t, "Ada", got.StringOr("name", ""))
}

func TestCaller_MethodHandler(t *testing.T) {
	g := &greeter{}
	caller := NewHandlerCaller(greetConfig(), g)

	status, err := caller.Invoke([]string{"greet", "name", "Ada"})
	require.NoError(t, err)
	require.True(t, status.IsOK())
	require.Equal(t, []string{"Ada"}, g.seen)

	args := NewCommandArgs("greet")
	args.Insert("name", "Bob")
	require.True(t, caller.Call(args).IsOK())
	require.Equal(t, []string{"Ada", "Bob"}, g.seen)
}

func TestCaller_InvokePropagatesArityError(t *testing.T) {
	called := false
	caller := NewCaller(greetConfig(), func(args CommandArgs) CommandStatus {
		called = true
		return OK(args.Command())
	})

	_, err := caller.Invoke([]string{"name"})
	require.True(t, usage.Is(err, usage.ErrArity))
	require.False(t, called)
}

func TestCaller_InvokeWithStrictPolicy(t *testing.T) {
	caller := NewCaller(greetConfig(), func(args CommandArgs) CommandStatus {
		return OK(args.Command())
	})

	_, err := caller.Invoke([]string{"name", "Ada", "Bob"}, WithArityPolicy(Strict))
	require.Error(t, err)
	require.Equal(t, `unexpected value "Bob"`, err.Error())
}

func TestCaller_CallPanicsPropagate(t *testing.T) {
	caller := NewCaller(greetConfig(), func(CommandArgs) CommandStatus {
		panic("boom")
	})

	require.Panics(t, func() {
		caller.Call(NewCommandArgs("greet"))
	})
}

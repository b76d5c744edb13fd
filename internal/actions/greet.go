package actions

import (
	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/domain"
)

// Command and option names of the demo commands.
const (
	CmdGreet = "greet"
	OptName  = "name"

	CmdSum    = "sum"
	OptValues = "values"

	// echo collects its leading values under an option named like itself.
	CmdEcho = "echo"
)

// Greet returns the handler of `greet name <who>`.
func Greet(out domain.OutputWriter) dispatchers.HandlerFunc {
	deps := depsFor(out)
	return func(args dispatchers.CommandArgs) dispatchers.CommandStatus {
		return greet(args, deps)
	}
}

func greet(args dispatchers.CommandArgs, deps actionDependencies) dispatchers.CommandStatus {
	who, err := args.String(OptName)
	if err != nil {
		return dispatchers.FromError(CmdGreet, err)
	}

	_, _ = deps.Printf("hello, %s\n", who)
	return dispatchers.OK(CmdGreet)
}

package actions

import (
	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/domain"
)

// CmdVersion names the version command.
const CmdVersion = "version"

// ShowVersion returns the handler of the version command.
func ShowVersion(out domain.OutputWriter) dispatchers.HandlerFunc {
	deps := depsFor(out)
	return func(args dispatchers.CommandArgs) dispatchers.CommandStatus {
		return showVersion(args, deps)
	}
}

func showVersion(_ dispatchers.CommandArgs, deps actionDependencies) dispatchers.CommandStatus {
	_, _ = deps.Printf("cmdr version %v\n", deps.Version())
	return dispatchers.OK(CmdVersion)
}

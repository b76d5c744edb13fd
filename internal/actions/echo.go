package actions

import (
	"strings"

	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/domain"
)

// Echo returns the handler of `echo <words...>`. Values the schema could not
// place are echoed after the words.
func Echo(out domain.OutputWriter) dispatchers.HandlerFunc {
	deps := depsFor(out)
	return func(args dispatchers.CommandArgs) dispatchers.CommandStatus {
		return echo(args, deps)
	}
}

func echo(args dispatchers.CommandArgs, deps actionDependencies) dispatchers.CommandStatus {
	words, _ := args.StrVec(CmdEcho, false)
	extra, _ := args.StrVec(dispatchers.Unknown, false)

	_, _ = deps.Println(strings.Join(append(words, extra...), " "))
	return dispatchers.OK(CmdEcho)
}

package actions

import (
	"github.com/footprint-tools/cmdr/internal/dispatchers"
	"github.com/footprint-tools/cmdr/internal/domain"
	"github.com/footprint-tools/cmdr/internal/usage"
)

// Sum returns the handler of `sum values <n...>`.
func Sum(out domain.OutputWriter) dispatchers.HandlerFunc {
	deps := depsFor(out)
	return func(args dispatchers.CommandArgs) dispatchers.CommandStatus {
		return sum(args, deps)
	}
}

func sum(args dispatchers.CommandArgs, deps actionDependencies) dispatchers.CommandStatus {
	values, err := args.UIntVec(OptValues, true)
	if err != nil {
		return dispatchers.FromError(CmdSum, err)
	}
	if len(values) == 0 {
		return dispatchers.FromError(CmdSum, usage.NotEnoughArguments(OptValues))
	}

	var total uint64
	for _, n := range values {
		total += uint64(n)
	}

	_, _ = deps.Println(total)
	return dispatchers.OK(CmdSum)
}

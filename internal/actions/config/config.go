// Package config implements the `config` command: one command whose options
// select the operation.
//
//	cmdr config get <key>
//	cmdr config set <key> <value>
//	cmdr config unset <key>
//	cmdr config list
package config

import (
	"github.com/footprint-tools/cmdr/internal/dispatchers"
)

const (
	Command = "config"

	OptGet   = "get"
	OptSet   = "set"
	OptUnset = "unset"
	OptList  = "list"
)

// Options returns the option schema of the config command.
func Options() []dispatchers.Option {
	return []dispatchers.Option{
		dispatchers.NewOption(OptGet).WithArgSize(1),
		dispatchers.NewOption(OptSet).WithArgSize(2),
		dispatchers.NewOption(OptUnset).WithArgSize(1),
		dispatchers.NewOption(OptList),
	}
}

// Handler returns the handler of the config command.
func Handler(deps Deps) dispatchers.HandlerFunc {
	return func(args dispatchers.CommandArgs) dispatchers.CommandStatus {
		return run(args, deps)
	}
}

// run performs the first operation present, in get, set, unset, list order.
// Without any, it lists.
func run(args dispatchers.CommandArgs, deps Deps) dispatchers.CommandStatus {
	var err error
	switch {
	case args.Has(OptGet):
		err = get(args, deps)
	case args.Has(OptSet):
		err = set(args, deps)
	case args.Has(OptUnset):
		err = unset(args, deps)
	default:
		err = list(deps)
	}
	return dispatchers.FromError(Command, err)
}
